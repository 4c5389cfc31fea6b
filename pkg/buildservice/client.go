package buildservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/util/wait"

	ferrors "github.com/frontend-forge/controller/pkg/errors"
)

// retryBackoff bounds the exponential backoff applied to transient
// (408/429/5xx) responses. There is no HTTP-retry library (no
// retryablehttp, no go-resty) anywhere in the example corpus, so this
// reuses k8s.io/apimachinery/pkg/util/wait, already a transitive
// dependency of every controller-runtime-based repo in the pack and the
// idiom this ecosystem reaches for over a bespoke loop.
var retryBackoff = wait.Backoff{
	Duration: 250 * time.Millisecond,
	Factor:   2.0,
	Jitter:   0.1,
	Steps:    8,
	Cap:      5 * time.Second,
}

// Client talks to the external build service described in the HTTP
// contract: POST /v1/builds, GET /v1/builds/{id}, GET /v1/builds/{id}/files.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        logr.Logger
}

// NewClient builds a Client with an overall per-request timeout derived
// from BUILD_SERVICE_TIMEOUT_SECONDS.
func NewClient(baseURL string, timeout time.Duration, log logr.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        log,
	}
}

// CreateBuild issues POST /v1/builds. A fresh request id is stamped onto
// the body and carried as the X-Request-Id header so every retry of the
// same logical call correlates in the build service's own logs.
func (c *Client) CreateBuild(ctx context.Context, req CreateBuildRequest) (*BuildResponse, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, ferrors.Wrap(err, "marshal create-build request")
	}

	var out BuildResponse
	if err := c.doJSONWithHeaders(ctx, http.MethodPost, "/v1/builds", body, map[string]string{"X-Request-Id": req.RequestID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBuild issues GET /v1/builds/{id}.
func (c *Client) GetBuild(ctx context.Context, buildID string) (*BuildResponse, error) {
	var out BuildResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/builds/"+buildID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFiles issues GET /v1/builds/{id}/files.
func (c *Client) GetFiles(ctx context.Context, buildID string) (*FilesResponse, error) {
	var out FilesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/builds/"+buildID+"/files", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WaitForTerminal polls GET /v1/builds/{id} until a terminal status is
// observed or ctx is done. Callers bound ctx by
// BUILD_SERVICE_TIMEOUT_SECONDS end-to-end, poll loop included.
func (c *Client) WaitForTerminal(ctx context.Context, buildID string, pollInterval time.Duration) (*BuildResponse, error) {
	var last *BuildResponse
	err := wait.PollUntilContextCancel(ctx, pollInterval, true, func(ctx context.Context) (bool, error) {
		resp, err := c.GetBuild(ctx, buildID)
		if err != nil {
			if ferrors.IsTransient(err) {
				return false, nil
			}
			return false, err
		}
		last = resp
		return resp.Status.Terminal(), nil
	})
	if err != nil {
		if wait.Interrupted(err) {
			return last, ferrors.NewKindError(ferrors.BuildTimeout, "timed out waiting for build "+buildID+" to reach a terminal status")
		}
		return last, err
	}
	return last, nil
}

// doJSON executes one logical HTTP call with bounded exponential backoff
// on 408/429/5xx, decoding the JSON response body into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body []byte, out interface{}) error {
	return c.doJSONWithHeaders(ctx, method, path, body, nil, out)
}

// doJSONWithHeaders is doJSON with extra request headers, used to carry a
// request-correlation id on calls that need one.
func (c *Client) doJSONWithHeaders(ctx context.Context, method, path string, body []byte, headers map[string]string, out interface{}) error {
	url := c.BaseURL + path

	backoff := retryBackoff
	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		var reqBody io.Reader
		if body != nil {
			reqBody = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return false, ferrors.Wrap(err, "build new request")
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			// Network flap: retry within the backoff/timeout budget.
			c.Log.V(1).Info("build service request failed, retrying", "error", err.Error(), "url", url)
			return false, nil
		}
		defer resp.Body.Close()

		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return false, ferrors.Wrap(readErr, "read build service response")
		}

		if isTransientStatus(resp.StatusCode) {
			c.Log.V(1).Info("build service returned transient status, retrying", "status", resp.StatusCode, "url", url)
			return false, nil
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return false, ferrors.NewKindError(ferrors.BuildFailed, fmt.Sprintf("build service %s %s: status %d: %s", method, path, resp.StatusCode, string(respBody)))
		}

		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return false, ferrors.Wrap(err, "decode build service response")
			}
		}
		return true, nil
	})
	if err != nil {
		if _, ok := ferrors.KindOf(err); ok {
			return err
		}
		return ferrors.NewKindError(ferrors.Transient, fmt.Sprintf("build service %s %s: %s", method, path, err.Error()))
	}
	return nil
}

func isTransientStatus(code int) bool {
	return code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500
}
