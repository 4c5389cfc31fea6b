// Package hashing implements the canonical JSON serialization and
// content-addressed hashing that give every FrontendIntegration spec and
// every rendered Manifest a stable identity.
package hashing

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Canonicalize serializes x as canonical JSON: object keys are emitted in
// ascending Unicode code-point order, numbers use the shortest round-trip
// form with no trailing zeros, strings use minimal escaping, arrays keep
// source order, and no insignificant whitespace is produced.
//
// x may be any value encoding/json can marshal (structs included): it is
// first round-tripped through encoding/json, so the writer only ever sees
// nil, bool, json.Number, string, []interface{} and
// map[string]interface{}. A value encoding/json cannot marshal, or a
// non-finite number, is an error.
//
// There is no third-party canonical-JSON library anywhere in the example
// corpus (no RFC 8785 canonicalizer appears in any retrieved go.mod), so
// this is a from-scratch implementation over encoding/json and strconv.
func Canonicalize(x interface{}) ([]byte, error) {
	normalized, err := normalize(x)
	if err != nil {
		return nil, errors.Wrap(err, "canonicalize")
	}
	var buf strings.Builder
	if err := writeCanonical(&buf, normalized); err != nil {
		return nil, errors.Wrap(err, "canonicalize")
	}
	return []byte(buf.String()), nil
}

// normalize round-trips x through encoding/json so that structs, maps with
// non-string-interface value types, and typed slices all land on the
// limited value set writeCanonical understands.
func normalize(x interface{}) (interface{}, error) {
	raw, err := json.Marshal(x)
	if err != nil {
		return nil, err
	}
	var v interface{}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func writeCanonical(buf *strings.Builder, v interface{}) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case json.Number:
		return writeCanonicalNumber(buf, t)
	case string:
		writeCanonicalString(buf, t)
		return nil
	case []interface{}:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonicalString(buf, k)
			buf.WriteByte(':')
			if err := writeCanonical(buf, t[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return errors.Errorf("canonical json: unsupported value of type %T", v)
	}
}

func writeCanonicalNumber(buf *strings.Builder, n json.Number) error {
	f, err := n.Float64()
	if err != nil {
		return errors.Wrapf(err, "canonical json: invalid number %q", n.String())
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.Errorf("canonical json: number %q is not finite", n.String())
	}
	if i, err := n.Int64(); err == nil {
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}
	buf.WriteString(shortestFloat(f))
	return nil
}

// shortestFloat renders f using the shortest decimal representation that
// round-trips exactly back to f, matching the "no trailing zeros" rule.
func shortestFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeCanonicalString(buf *strings.Builder, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
