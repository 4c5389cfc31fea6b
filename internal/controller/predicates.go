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

package controller

import (
	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	fikube "github.com/frontend-forge/controller/pkg/kubernetes"
)

// hasMatchingWatchLabel returns a predicate that passes every event when
// watchFilterValue is empty, and otherwise restricts reconciliation to
// objects carrying a matching frontend-forge.io/watch-filter label. This
// lets a single controller-manager binary be sharded across several
// instances watching disjoint label selections.
func hasMatchingWatchLabel(log logr.Logger, watchFilterValue string) predicate.Funcs {
	if watchFilterValue == "" {
		return predicate.Funcs{}
	}

	log = log.WithValues("watch-label", watchFilterValue)
	return predicate.NewPredicateFuncs(func(obj client.Object) bool {
		if fikube.HasWatchLabel(obj, watchFilterValue) {
			return true
		}
		log.V(4).Info("object does not have the watch label, will not be reconciled", "object", obj.GetName(), "namespace", obj.GetNamespace())
		return false
	})
}
