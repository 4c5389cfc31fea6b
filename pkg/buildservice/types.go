// Package buildservice is the HTTP client for the external build service:
// POST /v1/builds, GET /v1/builds/{id}, GET /v1/builds/{id}/files.
package buildservice

// Status is the lifecycle state the build service reports for a build.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusRunning   Status = "RUNNING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// Terminal reports whether s is a terminal status the poll loop should
// stop on.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// CreateBuildRequest is the POST /v1/builds body.
type CreateBuildRequest struct {
	RequestID    string         `json:"requestId"`
	ManifestHash string         `json:"manifestHash"`
	Manifest     string         `json:"manifest"`
	Context      RequestContext `json:"context"`
}

// RequestContext identifies the FI that requested the build.
type RequestContext struct {
	Namespace            string `json:"namespace"`
	FrontendIntegration string `json:"frontendIntegration"`
}

// BuildResponse is the common shape of POST /v1/builds and
// GET /v1/builds/{id}.
type BuildResponse struct {
	BuildID string `json:"buildId"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// FilesResponse is the GET /v1/builds/{id}/files body.
type FilesResponse struct {
	BuildID string `json:"buildId"`
	Files   []File `json:"files"`
}

// File is one produced artifact file.
type File struct {
	Path        string `json:"path"`
	Encoding    string `json:"encoding"`
	Content     string `json:"content"`
	Sha256      string `json:"sha256"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
}
