package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// HashPrefix is prepended to every serializable hash written into a spec,
// status, env var, or annotation.
const HashPrefix = "sha256:"

// SerializableHash computes "sha256:" + lowercase_hex(sha256(canonical_json(x))).
func SerializableHash(x interface{}) (string, error) {
	canonical, err := Canonicalize(x)
	if err != nil {
		return "", errors.Wrap(err, "serializable hash")
	}
	sum := sha256.Sum256(canonical)
	return HashPrefix + hex.EncodeToString(sum[:]), nil
}

// SpecHash computes spec_hash = serializable_hash(FI.spec).
func SpecHash(spec interface{}) (string, error) {
	h, err := SerializableHash(spec)
	if err != nil {
		return "", errors.Wrap(err, "spec hash")
	}
	return h, nil
}

// ManifestHash computes manifest_hash = serializable_hash(rendered_manifest).
func ManifestHash(manifest interface{}) (string, error) {
	h, err := SerializableHash(manifest)
	if err != nil {
		return "", errors.Wrap(err, "manifest hash")
	}
	return h, nil
}

// LabelValue strips the "sha256:" prefix so a hash can be stored in a
// Kubernetes label value, which may not contain ':'. Readers that
// reconstitute the full hash from a label must call FromLabelValue.
func LabelValue(hash string) string {
	return strings.TrimPrefix(hash, HashPrefix)
}

// FromLabelValue restores the "sha256:" prefix stripped by LabelValue.
func FromLabelValue(labelValue string) string {
	if labelValue == "" {
		return ""
	}
	return HashPrefix + labelValue
}
