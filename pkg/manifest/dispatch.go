package manifest

import (
	"strings"

	"github.com/frontend-forge/controller/api/v1alpha1"
	ferrors "github.com/frontend-forge/controller/pkg/errors"
)

// Render normalizes fi.Spec.Builder.EngineVersion (case-insensitive,
// trimmed) and dispatches to the matching renderer. v1, v1alpha1, 1 and
// 1.0 all select the v1 renderer; anything else is a fatal,
// non-retryable UnsupportedEngineVersion error.
func Render(fi *v1alpha1.FrontendIntegration) (*Manifest, error) {
	version := normalizeVersion(fi.Spec.Builder.EngineVersion)

	switch version {
	case "v1", "v1alpha1", "1", "1.0":
		return renderV1(fi)
	default:
		return nil, ferrors.NewKindError(ferrors.UnsupportedEngineVersion, "unsupported builder.engineVersion: "+fi.Spec.Builder.EngineVersion)
	}
}

func normalizeVersion(v string) string {
	if v == "" {
		return "v1"
	}
	return strings.ToLower(strings.TrimSpace(v))
}
