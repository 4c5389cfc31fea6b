package kubernetes

import (
	"context"
	"fmt"
	"strings"

	"github.com/gobuffalo/flect"
	"github.com/pkg/errors"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/frontend-forge/controller/api/v1alpha1"
)

// HasWatchLabel returns true if the object has a label with the WatchLabel key matching the given value.
func HasWatchLabel(o metav1.Object, labelValue string) bool {
	val, ok := o.GetLabels()[v1alpha1.WatchLabel]
	if !ok {
		return false
	}
	return val == labelValue
}

// GetGVKMetadata retrieves a CustomResourceDefinition's metadata from the
// API server using a partial-object-metadata Get, which is cheaper than
// fetching the whole CRD when only existence/labels are needed.
func GetGVKMetadata(ctx context.Context, c client.Client, gvk schema.GroupVersionKind) (*metav1.PartialObjectMetadata, error) {
	meta := &metav1.PartialObjectMetadata{}
	meta.SetName(CalculateCRDName(gvk.Group, gvk.Kind))
	meta.SetGroupVersionKind(apiextensionsv1.SchemeGroupVersion.WithKind("CustomResourceDefinition"))
	if err := c.Get(ctx, client.ObjectKeyFromObject(meta), meta); err != nil {
		return meta, errors.Wrap(err, "failed to retrieve metadata from GVK resource")
	}
	return meta, nil
}

// CalculateCRDName generates a CRD name based on group and kind, following
// the standard Kubernetes apiextensions convention (<plural>.<group>).
func CalculateCRDName(group, kind string) string {
	return fmt.Sprintf("%s.%s", flect.Pluralize(strings.ToLower(kind)), group)
}

// ValidateCrdReference confirms the CRD a "crd"-type FrontendIntegration
// references (spec.integration.crd.group/names.kind) actually exists on
// the cluster, so the Reconciler can fail fast with a clear message
// instead of dispatching a build whose rendered CrdTable page would point
// at a nonexistent resource.
func ValidateCrdReference(ctx context.Context, c client.Client, crd *v1alpha1.CrdIntegration) error {
	if crd == nil {
		return errors.New("crd-type integration is missing its crd block")
	}
	gvk := schema.GroupVersionKind{Group: crd.Group, Kind: crd.Names.Kind}
	if _, err := GetGVKMetadata(ctx, c, gvk); err != nil {
		return errors.Wrapf(err, "custom resource definition %q not found on the cluster", CalculateCRDName(crd.Group, crd.Names.Kind))
	}
	return nil
}
