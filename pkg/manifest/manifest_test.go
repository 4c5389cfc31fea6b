package manifest_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/frontend-forge/controller/api/v1alpha1"
	ferrors "github.com/frontend-forge/controller/pkg/errors"
	"github.com/frontend-forge/controller/pkg/hashing"
	"github.com/frontend-forge/controller/pkg/manifest"
)

var _ = Describe("Render", func() {
	// E2E scenario 1: iframe happy path.
	It("renders an iframe integration across all three placements", func() {
		fi := &v1alpha1.FrontendIntegration{
			ObjectMeta: metav1.ObjectMeta{Name: "sss"},
			Spec: v1alpha1.FrontendIntegrationSpec{
				Enabled: true,
				Integration: v1alpha1.IntegrationSpec{
					Type:   "iframe",
					Iframe: &v1alpha1.IframeIntegration{URL: "http://example.com/asdfas"},
				},
				Routing: v1alpha1.RoutingSpec{Path: "wewew"},
				Menu:    v1alpha1.MenuSpec{Placements: []string{"cluster", "workspace", "global"}},
			},
		}

		m, err := manifest.Render(fi)
		Expect(err).NotTo(HaveOccurred())

		Expect(m.Routes).To(HaveLen(3))
		Expect(m.Routes[0]).To(Equal(manifest.Route{
			Path:   "/clusters/:cluster/frontendintegrations/sss/wewew",
			PageID: "sss-cluster",
		}))
		Expect(m.Routes[2]).To(Equal(manifest.Route{
			Path:   "/frontendintegrations/sss/wewew",
			PageID: "sss-global",
		}))

		Expect(m.Pages).To(HaveLen(3))
		Expect(m.Pages[0].Root.Type).To(Equal("Iframe"))
		Expect(m.Pages[0].Root.Props["FRAME_URL"]).To(Equal("http://example.com/asdfas"))
		Expect(m.Pages[0].DataSources).To(BeEmpty())

		Expect(m.Build).To(Equal(manifest.Build{Target: "kubesphere-extension", ModuleName: "sss", Systemjs: true}))
	})

	// E2E scenario 2: CRD happy path.
	It("renders a crd integration with columns and page-state data sources", func() {
		fi := &v1alpha1.FrontendIntegration{
			ObjectMeta: metav1.ObjectMeta{Name: "qweqwcccc"},
			Spec: v1alpha1.FrontendIntegrationSpec{
				Enabled: true,
				Integration: v1alpha1.IntegrationSpec{
					Type: "crd",
					Crd: &v1alpha1.CrdIntegration{
						Group:   "kubeeye.kubesphere.io",
						Version: "v1alpha2",
						Names:   v1alpha1.CrdNames{Kind: "InspectRule", Plural: "inspectrules"},
						Scope:   "Cluster",
					},
				},
				Routing: v1alpha1.RoutingSpec{Path: "rules"},
				Columns: []v1alpha1.Column{{Name: "name"}, {Name: "updateTime"}},
				Menu:    v1alpha1.MenuSpec{Placements: []string{"cluster"}},
			},
		}

		m, err := manifest.Render(fi)
		Expect(err).NotTo(HaveOccurred())

		Expect(m.Pages).To(HaveLen(1))
		page := m.Pages[0]
		Expect(page.Root.Type).To(Equal("CrdTable"))
		Expect(page.DataSources).To(HaveLen(2))
		Expect(page.DataSources[0].ID).To(Equal("columns"))
		Expect(page.DataSources[1].ID).To(Equal("pageState"))

		crdConfig := page.DataSources[1].Config["CRD_CONFIG"].(map[string]interface{})
		Expect(crdConfig["kind"]).To(Equal("InspectRule"))
		Expect(crdConfig["group"]).To(Equal("kubeeye.kubesphere.io"))

		createInitial := page.Root.Props["CREATE_INITIAL_VALUE"].(map[string]interface{})
		Expect(createInitial["apiVersion"]).To(Equal("kubeeye.kubesphere.io/v1alpha2"))
		Expect(createInitial["kind"]).To(Equal("InspectRule"))
	})

	It("rejects an unsupported engine version", func() {
		fi := &v1alpha1.FrontendIntegration{
			ObjectMeta: metav1.ObjectMeta{Name: "sss"},
			Spec: v1alpha1.FrontendIntegrationSpec{
				Builder: v1alpha1.BuilderSpec{EngineVersion: "v99"},
				Integration: v1alpha1.IntegrationSpec{
					Type: "iframe",
				},
			},
		}

		_, err := manifest.Render(fi)
		Expect(err).To(HaveOccurred())
		kind, ok := ferrors.KindOf(err)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(ferrors.UnsupportedEngineVersion))
	})

	It("rejects an unknown menu placement", func() {
		fi := &v1alpha1.FrontendIntegration{
			ObjectMeta: metav1.ObjectMeta{Name: "sss"},
			Spec: v1alpha1.FrontendIntegrationSpec{
				Integration: v1alpha1.IntegrationSpec{Type: "iframe", Iframe: &v1alpha1.IframeIntegration{URL: "x"}},
				Menu:        v1alpha1.MenuSpec{Placements: []string{"tenant"}},
			},
		}

		_, err := manifest.Render(fi)
		Expect(err).To(HaveOccurred())
		kind, ok := ferrors.KindOf(err)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(ferrors.UnsupportedPlacement))
	})

	// renderer determinism.
	It("renders bit-for-bit identically across repeated calls after canonicalization", func() {
		fi := &v1alpha1.FrontendIntegration{
			ObjectMeta: metav1.ObjectMeta{Name: "sss"},
			Spec: v1alpha1.FrontendIntegrationSpec{
				Integration: v1alpha1.IntegrationSpec{Type: "iframe", Iframe: &v1alpha1.IframeIntegration{URL: "x"}},
				Routing:     v1alpha1.RoutingSpec{Path: "p"},
				Menu:        v1alpha1.MenuSpec{Placements: []string{"global"}},
			},
		}

		m1, err := manifest.Render(fi)
		Expect(err).NotTo(HaveOccurred())
		m2, err := manifest.Render(fi)
		Expect(err).NotTo(HaveOccurred())

		c1, err := hashing.Canonicalize(m1)
		Expect(err).NotTo(HaveOccurred())
		c2, err := hashing.Canonicalize(m2)
		Expect(err).NotTo(HaveOccurred())
		Expect(c1).To(Equal(c2))
	})
})
