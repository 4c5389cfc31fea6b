package buildservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	ferrors "github.com/frontend-forge/controller/pkg/errors"
	"github.com/frontend-forge/controller/pkg/buildservice"
)

var _ = Describe("Client", func() {
	It("creates a build and polls through to a terminal status", func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/v1/builds":
				_ = json.NewEncoder(w).Encode(buildservice.BuildResponse{BuildID: "b1", Status: buildservice.StatusPending})
			case r.Method == http.MethodGet && r.URL.Path == "/v1/builds/b1":
				n := atomic.AddInt32(&calls, 1)
				status := buildservice.StatusRunning
				if n >= 2 {
					status = buildservice.StatusSucceeded
				}
				_ = json.NewEncoder(w).Encode(buildservice.BuildResponse{BuildID: "b1", Status: status})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		c := buildservice.NewClient(srv.URL, 5*time.Second, logr.Discard())
		ctx := context.Background()

		created, err := c.CreateBuild(ctx, buildservice.CreateBuildRequest{ManifestHash: "sha256:abc"})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.BuildID).To(Equal("b1"))

		final, err := c.WaitForTerminal(ctx, "b1", 5*time.Millisecond)
		Expect(err).NotTo(HaveOccurred())
		Expect(final.Status).To(Equal(buildservice.StatusSucceeded))
	})

	It("retries on a transient 503 and eventually succeeds", func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&calls, 1)
			if n < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_ = json.NewEncoder(w).Encode(buildservice.BuildResponse{BuildID: "b2", Status: buildservice.StatusSucceeded})
		}))
		defer srv.Close()

		c := buildservice.NewClient(srv.URL, 5*time.Second, logr.Discard())
		resp, err := c.GetBuild(context.Background(), "b2")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Status).To(Equal(buildservice.StatusSucceeded))
		Expect(atomic.LoadInt32(&calls)).To(BeNumerically(">=", 3))
	})

	It("surfaces a non-transient error status as BuildFailed", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("bad manifest"))
		}))
		defer srv.Close()

		c := buildservice.NewClient(srv.URL, 5*time.Second, logr.Discard())
		_, err := c.CreateBuild(context.Background(), buildservice.CreateBuildRequest{})
		Expect(err).To(HaveOccurred())
		kind, ok := ferrors.KindOf(err)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(ferrors.BuildFailed))
	})
})
