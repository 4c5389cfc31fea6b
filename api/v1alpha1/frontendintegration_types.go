/*
Copyright 2024 Forge.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// IntegrationSpec carries the discriminated integration payload: exactly
// one of Crd or Iframe is set, matching Type.
type IntegrationSpec struct {
	// Type selects which of Crd or Iframe is populated.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Enum=crd;iframe
	Type string `json:"type"`

	// +optional
	Crd *CrdIntegration `json:"crd,omitempty"`

	// +optional
	Iframe *IframeIntegration `json:"iframe,omitempty"`
}

// RoutingSpec configures the relative path the integration mounts under.
type RoutingSpec struct {
	// Path is relative; it must not start with "/".
	Path string `json:"path"`
}

// MenuSpec configures the menu entries a FrontendIntegration contributes.
type MenuSpec struct {
	// +optional
	Name string `json:"name,omitempty"`

	// Placements is drawn from {global, cluster, workspace}.
	// +optional
	Placements []string `json:"placements,omitempty"`
}

// BuilderSpec selects the manifest renderer engine version.
type BuilderSpec struct {
	// EngineVersion selects the renderer. Defaults to "v1".
	// +optional
	EngineVersion string `json:"engineVersion,omitempty"`
}

// FrontendIntegrationSpec defines the desired state of FrontendIntegration.
type FrontendIntegrationSpec struct {
	// Enabled, when false, holds reconciliation state without producing
	// any builds.
	// +optional
	// +kubebuilder:default=true
	Enabled bool `json:"enabled"`

	// +optional
	DisplayName string `json:"displayName,omitempty"`

	// +kubebuilder:validation:Required
	Integration IntegrationSpec `json:"integration"`

	// +kubebuilder:validation:Required
	Routing RoutingSpec `json:"routing"`

	// Columns is required for CRD mode (table schema). Tolerated
	// empty/absent for iframe mode.
	// +optional
	Columns []Column `json:"columns,omitempty"`

	// +optional
	Menu MenuSpec `json:"menu,omitempty"`

	// +optional
	Builder BuilderSpec `json:"builder,omitempty"`
}

// FIPhase enumerates the authoritative status.phase values. Only phase and
// message are authoritative; this API deliberately does not carry a rich
// Condition array.
type FIPhase string

const (
	FIPhasePending   FIPhase = "Pending"
	FIPhaseBuilding  FIPhase = "Building"
	FIPhaseSucceeded FIPhase = "Succeeded"
	FIPhaseFailed    FIPhase = "Failed"
)

// ActiveBuildStatus references the Job currently dispatched for the latest
// observed spec hash.
type ActiveBuildStatus struct {
	JobRef *corev1.ObjectReference `json:"jobRef,omitempty"`
}

// FrontendIntegrationStatus defines the observed state of
// FrontendIntegration.
type FrontendIntegrationStatus struct {
	// +optional
	Phase FIPhase `json:"phase,omitempty"`

	// ObservedSpecHash is the last spec hash the system has acted upon.
	// +optional
	ObservedSpecHash string `json:"observedSpecHash,omitempty"`

	// ObservedManifestHash is reflected back from the bundle for
	// traceability. Retained for upgrades from controllers that only wrote
	// this field.
	// +optional
	ObservedManifestHash string `json:"observedManifestHash,omitempty"`

	// +optional
	ActiveBuild ActiveBuildStatus `json:"activeBuild,omitempty"`

	// +optional
	BundleRef *corev1.ObjectReference `json:"bundleRef,omitempty"`

	// +optional
	Message string `json:"message,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:path=frontendintegrations,scope=Namespaced,categories=frontend-forge,shortName=fi
//+kubebuilder:printcolumn:name="Enabled",type="boolean",JSONPath=".spec.enabled"
//+kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase"
//+kubebuilder:printcolumn:name="SpecHash",type="string",JSONPath=".status.observedSpecHash"

// FrontendIntegration is the Schema for the frontendintegrations API.
type FrontendIntegration struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   FrontendIntegrationSpec   `json:"spec,omitempty"`
	Status FrontendIntegrationStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// FrontendIntegrationList contains a list of FrontendIntegration.
type FrontendIntegrationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []FrontendIntegration `json:"items"`
}

func init() {
	SchemeBuilder.Register(&FrontendIntegration{}, &FrontendIntegrationList{})
}
