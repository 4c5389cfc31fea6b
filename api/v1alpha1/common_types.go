package v1alpha1

const (
	// ManagedByLabel identifies the controller that dispatched a Job or
	// wrote a JSBundle.
	ManagedByLabel = "frontend-forge.io/managed-by"

	// FINameLabel carries the owning FrontendIntegration's name onto its
	// Job and JSBundle.
	FINameLabel = "frontend-forge.io/fi-name"

	// SpecHashLabel carries the label-safe (prefix-stripped) spec_hash.
	SpecHashLabel = "frontend-forge.io/spec-hash"

	// ManifestHashLabel carries the label-safe (prefix-stripped)
	// manifest_hash, set on a JSBundle once the runner has rendered it.
	ManifestHashLabel = "frontend-forge.io/manifest-hash"

	// BuildJobAnnotation records the runner's host name on the JSBundle it
	// wrote, for traceability back to the Job pod that produced it.
	BuildJobAnnotation = "frontend-forge.io/build-job"

	// WatchLabel allows a controller-manager instance to be scoped to a
	// subset of FrontendIntegration objects for selective reconciliation.
	WatchLabel = "frontend-forge.io/watch-filter"

	// ManagedByValue is the ManagedByLabel value this controller writes.
	ManagedByValue = "frontend-forge-controller"
)

// Column describes one column of a CRD-integration table.
type Column struct {
	Name   string        `json:"name"`
	Title  string        `json:"title,omitempty"`
	Render *ColumnRender `json:"render,omitempty"`
}

// ColumnRender describes how a column's value is presented.
// +kubebuilder:pruning:PreserveUnknownFields
type ColumnRender struct {
	Format  string                 `json:"format,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// CrdIntegration describes the CRD a "crd"-type FrontendIntegration
// surfaces as a table.
type CrdIntegration struct {
	Group   string   `json:"group"`
	Version string   `json:"version"`
	Names   CrdNames `json:"names"`
	Scope   string   `json:"scope,omitempty"`
}

// CrdNames carries the Kind/plural pair needed to address the CRD.
type CrdNames struct {
	Kind   string `json:"kind"`
	Plural string `json:"plural"`
}

// IframeIntegration describes an "iframe"-type FrontendIntegration.
// Both `url` and `src` are accepted since integrators use either name;
// URL takes precedence when both are set.
type IframeIntegration struct {
	URL string `json:"url,omitempty"`
	Src string `json:"src,omitempty"`
}
