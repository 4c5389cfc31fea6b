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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BundleFile is one produced build artifact file.
type BundleFile struct {
	Path        string `json:"path"`
	Encoding    string `json:"encoding"`
	Content     string `json:"content"`
	Sha256      string `json:"sha256"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
}

// JSBundleSpec defines the desired state of JSBundle. It is written only by
// the Runner; the Controller reads it.
type JSBundleSpec struct {
	// ManifestHash includes the "sha256:" prefix.
	// +kubebuilder:validation:Required
	ManifestHash string `json:"manifestHash"`

	// +optional
	Files []BundleFile `json:"files,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:path=jsbundles,scope=Namespaced,categories=frontend-forge,singular=jsbundle
//+kubebuilder:printcolumn:name="ManifestHash",type="string",JSONPath=".spec.manifestHash"

// JSBundle is the Schema for the jsbundles API. Exactly one exists per
// FrontendIntegration, named "fi-<fi-name>".
type JSBundle struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec JSBundleSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// JSBundleList contains a list of JSBundle.
type JSBundleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []JSBundle `json:"items"`
}

func init() {
	SchemeBuilder.Register(&JSBundle{}, &JSBundleList{})
}
