package hashing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frontend-forge/controller/pkg/hashing"
)

var _ = Describe("Canonicalize", func() {
	It("orders object keys ascending regardless of insertion order", func() {
		a := map[string]interface{}{"b": 1, "a": 2, "c": 3}
		b := map[string]interface{}{"c": 3, "a": 2, "b": 1}

		outA, err := hashing.Canonicalize(a)
		Expect(err).NotTo(HaveOccurred())
		outB, err := hashing.Canonicalize(b)
		Expect(err).NotTo(HaveOccurred())

		Expect(outA).To(Equal(outB))
		Expect(string(outA)).To(Equal(`{"a":2,"b":1,"c":3}`))
	})

	It("produces no insignificant whitespace", func() {
		out, err := hashing.Canonicalize(map[string]interface{}{"x": []interface{}{1, 2, 3}})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{"x":[1,2,3]}`))
	})

	It("renders integral floats without a trailing .0", func() {
		out, err := hashing.Canonicalize(map[string]interface{}{"n": 999.0})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{"n":999}`))
	})
})

var _ = Describe("SpecHash", func() {
	// canonical hash is invariant under map-key reordering and
	// insignificant whitespace.
	It("is invariant under key reordering", func() {
		spec1 := map[string]interface{}{
			"enabled": true,
			"routing": map[string]interface{}{"path": "wewew"},
			"menu":    map[string]interface{}{"placements": []interface{}{"cluster", "global"}},
		}
		spec2 := map[string]interface{}{
			"menu":    map[string]interface{}{"placements": []interface{}{"cluster", "global"}},
			"enabled": true,
			"routing": map[string]interface{}{"path": "wewew"},
		}

		h1, err := hashing.SpecHash(spec1)
		Expect(err).NotTo(HaveOccurred())
		h2, err := hashing.SpecHash(spec2)
		Expect(err).NotTo(HaveOccurred())

		Expect(h1).To(Equal(h2))
		Expect(h1).To(HavePrefix("sha256:"))
	})

	It("changes when the spec content changes", func() {
		h1, err := hashing.SpecHash(map[string]interface{}{"enabled": true})
		Expect(err).NotTo(HaveOccurred())
		h2, err := hashing.SpecHash(map[string]interface{}{"enabled": false})
		Expect(err).NotTo(HaveOccurred())
		Expect(h1).NotTo(Equal(h2))
	})
})

var _ = Describe("LabelValue", func() {
	// label round-trip.
	It("round-trips through FromLabelValue", func() {
		h, err := hashing.SpecHash(map[string]interface{}{"a": 1})
		Expect(err).NotTo(HaveOccurred())

		stripped := hashing.LabelValue(h)
		Expect(stripped).NotTo(ContainSubstring(":"))
		Expect(hashing.FromLabelValue(stripped)).To(Equal(h))
	})
})

var _ = Describe("Naming", func() {
	It("derives a stable job name from the fi name and spec hash", func() {
		h, err := hashing.SpecHash(map[string]interface{}{"a": 1})
		Expect(err).NotTo(HaveOccurred())

		name := hashing.JobName("sss", h)
		Expect(name).To(HavePrefix("fi-sss-"))
		Expect(name).To(Equal(hashing.JobName("sss", h)))
	})

	It("derives a fixed bundle name independent of spec hash", func() {
		Expect(hashing.BundleName("sss")).To(Equal("fi-sss"))
	})
})
