package runner_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/frontend-forge/controller/api/v1alpha1"
	"github.com/frontend-forge/controller/internal/runner"
	"github.com/frontend-forge/controller/pkg/buildservice"
	ferrors "github.com/frontend-forge/controller/pkg/errors"
	"github.com/frontend-forge/controller/pkg/hashing"
)

func runnerScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = corev1.AddToScheme(scheme)
	_ = batchv1.AddToScheme(scheme)
	_ = v1alpha1.AddToScheme(scheme)
	return scheme
}

func buildServiceServer(finalStatus buildservice.Status, message string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/builds":
			_ = json.NewEncoder(w).Encode(buildservice.BuildResponse{BuildID: "b1", Status: buildservice.StatusRunning})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/builds/b1":
			_ = json.NewEncoder(w).Encode(buildservice.BuildResponse{BuildID: "b1", Status: finalStatus, Message: message})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/builds/b1/files":
			_ = json.NewEncoder(w).Encode(buildservice.FilesResponse{BuildID: "b1", Files: []buildservice.File{
				{Path: "main.js", Encoding: "utf-8", Content: "console.log(1)", Sha256: "abc", Size: 15, ContentType: "application/javascript"},
			}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

var _ = Describe("Run", func() {
	var fi *v1alpha1.FrontendIntegration
	var specHash string
	var scheme *runtime.Scheme

	BeforeEach(func() {
		scheme = runnerScheme()
		fi = &v1alpha1.FrontendIntegration{
			ObjectMeta: metav1.ObjectMeta{Name: "widget", Namespace: "default"},
			Spec: v1alpha1.FrontendIntegrationSpec{
				Enabled: true,
				Integration: v1alpha1.IntegrationSpec{
					Type:   "iframe",
					Iframe: &v1alpha1.IframeIntegration{URL: "https://example.com"},
				},
				Routing: v1alpha1.RoutingSpec{Path: "widget"},
				Menu:    v1alpha1.MenuSpec{Name: "Widget", Placements: []string{"global"}},
			},
		}
		var err error
		specHash, err = hashing.SpecHash(fi.Spec)
		Expect(err).NotTo(HaveOccurred())
		fi.Status.ObservedSpecHash = specHash
	})

	It("renders, builds, and upserts a matching bundle on the golden path", func() {
		srv := buildServiceServer(buildservice.StatusSucceeded, "")
		defer srv.Close()

		c := fake.NewClientBuilder().WithScheme(scheme).WithStatusSubresource(&v1alpha1.FrontendIntegration{}).WithObjects(fi).Build()
		bs := buildservice.NewClient(srv.URL, 5*time.Second, logr.Discard())

		cfg := &runner.Config{
			Namespace:           "default",
			FIName:              "widget",
			SpecHash:            specHash,
			BundleName:          hashing.BundleName("widget"),
			BuildServiceBaseURL: srv.URL,
			BuildServiceTimeout: 5 * time.Second,
			StaleCheckGrace:     5 * time.Second,
			PodName:             "widget-job-abcde",
		}

		err := runner.Run(context.Background(), c, scheme, cfg, bs, logr.Discard())
		Expect(err).NotTo(HaveOccurred())

		bundle := &v1alpha1.JSBundle{}
		Expect(c.Get(context.Background(), client.ObjectKey{Namespace: "default", Name: cfg.BundleName}, bundle)).To(Succeed())
		Expect(bundle.Spec.Files).To(HaveLen(1))
		Expect(bundle.Labels[v1alpha1.FINameLabel]).To(Equal("widget"))
		Expect(bundle.Annotations[v1alpha1.BuildJobAnnotation]).To(Equal("widget-job-abcde"))
	})

	It("exits with StaleSpec when the live spec no longer matches", func() {
		srv := buildServiceServer(buildservice.StatusSucceeded, "")
		defer srv.Close()

		fi.Spec.DisplayName = "Changed after dispatch"
		c := fake.NewClientBuilder().WithScheme(scheme).WithStatusSubresource(&v1alpha1.FrontendIntegration{}).WithObjects(fi).Build()
		bs := buildservice.NewClient(srv.URL, 5*time.Second, logr.Discard())

		cfg := &runner.Config{
			Namespace:           "default",
			FIName:              "widget",
			SpecHash:            specHash,
			BundleName:          hashing.BundleName("widget"),
			BuildServiceBaseURL: srv.URL,
			BuildServiceTimeout: 5 * time.Second,
			StaleCheckGrace:     time.Second,
		}

		err := runner.Run(context.Background(), c, scheme, cfg, bs, logr.Discard())
		Expect(err).To(HaveOccurred())
		kind, ok := ferrors.KindOf(err)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(ferrors.StaleSpec))
		Expect(ferrors.IsStale(err)).To(BeTrue())
	})

	It("surfaces BuildFailed when the build service reports FAILED", func() {
		srv := buildServiceServer(buildservice.StatusFailed, "compile error")
		defer srv.Close()

		c := fake.NewClientBuilder().WithScheme(scheme).WithStatusSubresource(&v1alpha1.FrontendIntegration{}).WithObjects(fi).Build()
		bs := buildservice.NewClient(srv.URL, 5*time.Second, logr.Discard())

		cfg := &runner.Config{
			Namespace:           "default",
			FIName:              "widget",
			SpecHash:            specHash,
			BundleName:          hashing.BundleName("widget"),
			BuildServiceBaseURL: srv.URL,
			BuildServiceTimeout: 5 * time.Second,
			StaleCheckGrace:     time.Second,
		}

		err := runner.Run(context.Background(), c, scheme, cfg, bs, logr.Discard())
		Expect(err).To(HaveOccurred())
		kind, ok := ferrors.KindOf(err)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(ferrors.BuildFailed))
	})

	It("exits with StaleStatus when a newer job has already been observed", func() {
		srv := buildServiceServer(buildservice.StatusSucceeded, "")
		defer srv.Close()

		fi.Status.ObservedSpecHash = "sha256:" + "0000000000000000000000000000000000000000000000000000000000000000"[:64]
		c := fake.NewClientBuilder().WithScheme(scheme).WithStatusSubresource(&v1alpha1.FrontendIntegration{}).WithObjects(fi).Build()
		bs := buildservice.NewClient(srv.URL, 5*time.Second, logr.Discard())

		cfg := &runner.Config{
			Namespace:           "default",
			FIName:              "widget",
			SpecHash:            specHash,
			BundleName:          hashing.BundleName("widget"),
			BuildServiceBaseURL: srv.URL,
			BuildServiceTimeout: 5 * time.Second,
			StaleCheckGrace:     2 * time.Second,
		}

		err := runner.Run(context.Background(), c, scheme, cfg, bs, logr.Discard())
		Expect(err).To(HaveOccurred())
		kind, ok := ferrors.KindOf(err)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(ferrors.StaleStatus))
	})
})
