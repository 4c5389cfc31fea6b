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

package runner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-logr/logr"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/frontend-forge/controller/api/v1alpha1"
	"github.com/frontend-forge/controller/pkg/buildservice"
	ferrors "github.com/frontend-forge/controller/pkg/errors"
	"github.com/frontend-forge/controller/pkg/hashing"
	"github.com/frontend-forge/controller/pkg/manifest"
)

// staleCheckPollBackoff bounds the pre-write stale-check polling interval;
// the overall wait is bounded by Config.StaleCheckGrace instead of a Steps
// count, since grace is an operator-tunable duration.
var staleCheckPollBackoff = wait.Backoff{
	Duration: 250 * time.Millisecond,
	Factor:   1.6,
	Cap:      2 * time.Second,
	Steps:    1000,
}

// Run executes the full Builder Job pipeline: re-validate spec_hash,
// render the Manifest, call the build service, stale-check, and upsert
// the JSBundle. c is a client scoped to the API server; bs is the build
// service client. Returns a *ferrors.KindError for every documented exit:
// callers should treat ferrors.IsStale(err) as a success-noop, not a
// failure.
func Run(ctx context.Context, c client.Client, scheme *runtime.Scheme, cfg *Config, bs *buildservice.Client, log logr.Logger) error {
	buildCtx, cancel := context.WithTimeout(ctx, cfg.BuildServiceTimeout)
	defer cancel()

	// Step 2: fetch FI, first stale gate.
	fi := &v1alpha1.FrontendIntegration{}
	if err := c.Get(ctx, client.ObjectKey{Namespace: cfg.Namespace, Name: cfg.FIName}, fi); err != nil {
		if apierrors.IsNotFound(err) {
			log.Info("frontend integration no longer exists, exiting")
			return ferrors.NewKindError(ferrors.NotFound, "frontend integration deleted mid-build")
		}
		return ferrors.Wrap(err, "fetch frontend integration")
	}

	currentSpecHash, err := hashing.SpecHash(fi.Spec)
	if err != nil {
		return ferrors.Wrap(err, "compute spec hash")
	}
	if currentSpecHash != cfg.SpecHash {
		log.Info("spec hash no longer matches, job is stale", "jobSpecHash", cfg.SpecHash, "currentSpecHash", currentSpecHash)
		return ferrors.NewKindError(ferrors.StaleSpec, "job's spec hash no longer matches the frontend integration's current spec")
	}

	// Step 3: render.
	m, err := manifest.Render(fi)
	if err != nil {
		return err
	}

	// Step 4: hash the rendered manifest.
	manifestHash, err := hashing.ManifestHash(m)
	if err != nil {
		return ferrors.Wrap(err, "compute manifest hash")
	}

	manifestJSON, err := json.Marshal(m)
	if err != nil {
		return ferrors.Wrap(err, "marshal manifest")
	}

	// Step 5: call the build service through to a terminal status.
	created, err := bs.CreateBuild(buildCtx, buildservice.CreateBuildRequest{
		ManifestHash: manifestHash,
		Manifest:     string(manifestJSON),
		Context: buildservice.RequestContext{
			Namespace:           cfg.Namespace,
			FrontendIntegration: cfg.FIName,
		},
	})
	if err != nil {
		return err
	}

	final, err := bs.WaitForTerminal(buildCtx, created.BuildID, 2*time.Second)
	if err != nil {
		return err
	}
	if final.Status == buildservice.StatusFailed {
		return ferrors.NewKindError(ferrors.BuildFailed, final.Message)
	}

	files, err := bs.GetFiles(buildCtx, created.BuildID)
	if err != nil {
		return err
	}

	// Step 6: second stale gate, pre-write.
	if err := waitForObservedSpecHash(ctx, c, cfg, log); err != nil {
		return err
	}

	// Step 7: upsert the Bundle.
	return upsertBundle(ctx, c, scheme, fi, cfg, manifestHash, files.Files)
}

// waitForObservedSpecHash polls the FI until status.observed_spec_hash
// confirms this Job is the one the Controller currently expects to write,
// bounded by Config.StaleCheckGrace.
func waitForObservedSpecHash(ctx context.Context, c client.Client, cfg *Config, log logr.Logger) error {
	staleCtx, cancel := context.WithTimeout(ctx, cfg.StaleCheckGrace)
	defer cancel()

	backoff := staleCheckPollBackoff
	err := wait.ExponentialBackoffWithContext(staleCtx, backoff, func(ctx context.Context) (bool, error) {
		fi := &v1alpha1.FrontendIntegration{}
		if err := c.Get(ctx, client.ObjectKey{Namespace: cfg.Namespace, Name: cfg.FIName}, fi); err != nil {
			if apierrors.IsNotFound(err) {
				return false, ferrors.NewKindError(ferrors.NotFound, "frontend integration deleted mid-build")
			}
			return false, nil
		}

		if fi.Status.ObservedSpecHash != "" {
			if fi.Status.ObservedSpecHash == cfg.SpecHash {
				return true, nil
			}
			return false, ferrors.NewKindError(ferrors.StaleStatus, "a newer job has already been dispatched for this frontend integration")
		}

		// Compat fallback: an older controller only ever wrote
		// observed_manifest_hash for the same value.
		if fi.Status.ObservedManifestHash != "" && fi.Status.ObservedManifestHash == cfg.SpecHash {
			return true, nil
		}

		log.V(1).Info("waiting for controller to observe this job's spec hash")
		return false, nil
	})
	if err != nil {
		if _, ok := ferrors.KindOf(err); ok {
			return err
		}
		return ferrors.New("timed out waiting for the controller to observe this job's spec hash")
	}
	return nil
}

// upsertBundle creates or server-side-updates the JSBundle named
// Config.BundleName with the rendered files and both hashes recorded in
// spec and labels.
func upsertBundle(ctx context.Context, c client.Client, scheme *runtime.Scheme, fi *v1alpha1.FrontendIntegration, cfg *Config, manifestHash string, files []buildservice.File) error {
	bundleFiles := make([]v1alpha1.BundleFile, 0, len(files))
	for _, f := range files {
		bundleFiles = append(bundleFiles, v1alpha1.BundleFile{
			Path:        f.Path,
			Encoding:    f.Encoding,
			Content:     f.Content,
			Sha256:      f.Sha256,
			Size:        f.Size,
			ContentType: f.ContentType,
		})
	}

	bundle := &v1alpha1.JSBundle{
		ObjectMeta: metav1.ObjectMeta{Namespace: cfg.Namespace, Name: cfg.BundleName},
	}

	_, err := controllerutil.CreateOrUpdate(ctx, c, bundle, func() error {
		bundle.Labels = map[string]string{
			v1alpha1.ManagedByLabel:    v1alpha1.ManagedByValue,
			v1alpha1.FINameLabel:       cfg.FIName,
			v1alpha1.SpecHashLabel:     hashing.LabelValue(cfg.SpecHash),
			v1alpha1.ManifestHashLabel: hashing.LabelValue(manifestHash),
		}
		if bundle.Annotations == nil {
			bundle.Annotations = map[string]string{}
		}
		bundle.Annotations[v1alpha1.BuildJobAnnotation] = cfg.PodName
		bundle.Spec = v1alpha1.JSBundleSpec{
			ManifestHash: manifestHash,
			Files:        bundleFiles,
		}
		return controllerutil.SetControllerReference(fi, bundle, scheme)
	})
	if err != nil {
		return ferrors.Wrap(err, "upsert jsbundle")
	}
	return nil
}
