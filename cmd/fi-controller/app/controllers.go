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

package app

import (
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/controller"

	"github.com/frontend-forge/controller/cmd/fi-controller/app/options"
	fictrl "github.com/frontend-forge/controller/internal/controller"
)

// controllerCreator sets up one controller against the shared manager.
type controllerCreator func(*options.ControllerContext) error

// allControllers lists every controller this binary runs. There is only
// one today; the map shape is kept because it is how the teacher wires
// multiple controllers off one ControllerContext, and a second engine
// version or a sibling reconciler would slot in the same way.
var allControllers = map[string]controllerCreator{
	"frontendintegration": createFrontendIntegrationController,
}

func createAllControllers(ctrlCtx *options.ControllerContext) error {
	for name, create := range allControllers {
		if err := create(ctrlCtx); err != nil {
			return fmt.Errorf("failed to create %q controller: %w", name, err)
		}
	}
	return nil
}

func createFrontendIntegrationController(ctrlCtx *options.ControllerContext) error {
	r := &fictrl.FrontendIntegrationReconciler{
		Client:           ctrlCtx.Mgr.GetClient(),
		Scheme:           ctrlCtx.Mgr.GetScheme(),
		Logger:           *ctrlCtx.Log,
		WatchFilterValue: ctrlCtx.RunOptions.WatchFilterValue,
		RunnerConfig: fictrl.RunnerConfig{
			Image:                      ctrlCtx.RunOptions.RunnerImage,
			BuildServiceBaseURL:        ctrlCtx.RunOptions.BuildServiceBaseURL,
			BuildServiceTimeoutSeconds: int32(ctrlCtx.RunOptions.BuildServiceTimeoutSeconds),
			StaleCheckGraceSeconds:     int32(ctrlCtx.RunOptions.StaleCheckGraceSeconds),
		},
	}

	return r.SetupWithManager(ctrlCtx.Ctx, ctrlCtx.Mgr, controller.Options{MaxConcurrentReconciles: ctrlCtx.RunOptions.WorkerNumber})
}
