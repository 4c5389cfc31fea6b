package hashing

import (
	"fmt"
	"strings"
)

// jobHashChars is the number of leading hex characters of a stripped spec
// hash carried in a Job name.
const jobHashChars = 10

// JobName derives the Builder Job name: fi-<fi-name>-<first-10-hex-chars-of-hash>.
// Stable per spec version; the FI-name component prevents collisions
// across distinct FrontendIntegrations.
func JobName(fiName, specHash string) string {
	h := LabelValue(specHash)
	if len(h) > jobHashChars {
		h = h[:jobHashChars]
	}
	return fmt.Sprintf("fi-%s-%s", fiName, h)
}

// BundleName derives the fixed JSBundle name for an FI: a new spec
// replaces content, not name.
func BundleName(fiName string) string {
	return fmt.Sprintf("fi-%s", fiName)
}

// FINameFromBundleName recovers the FI name component of a Bundle name, or
// "" if name does not follow the fi-<name> convention.
func FINameFromBundleName(name string) string {
	const prefix = "fi-"
	if !strings.HasPrefix(name, prefix) {
		return ""
	}
	return strings.TrimPrefix(name, prefix)
}
