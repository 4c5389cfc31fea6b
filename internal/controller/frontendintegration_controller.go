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

// Package controller implements the FrontendIntegration reconciler: the
// Controller half of the two-hash reconciliation protocol.
package controller

import (
	"context"

	"github.com/go-logr/logr"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	kerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/cluster-api/util/patch"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/frontend-forge/controller/api/v1alpha1"
	ferrors "github.com/frontend-forge/controller/pkg/errors"
	"github.com/frontend-forge/controller/pkg/hashing"
	fikube "github.com/frontend-forge/controller/pkg/kubernetes"
	jobbuilder "github.com/frontend-forge/controller/pkg/job"
)

// RunnerConfig carries the Job-dispatch settings the Reconciler has no
// other way to learn (image, build-service location, timeouts). These are
// thin process-level configuration, loaded once at startup.
type RunnerConfig struct {
	Image                     string
	BuildServiceBaseURL       string
	BuildServiceTimeoutSeconds int32
	StaleCheckGraceSeconds    int32
}

// FrontendIntegrationReconciler reconciles a FrontendIntegration object.
type FrontendIntegrationReconciler struct {
	client.Client
	Scheme *runtime.Scheme
	Logger logr.Logger

	// WatchFilterValue scopes this controller-manager instance to a
	// subset of FrontendIntegration objects for selective reconciliation.
	WatchFilterValue string

	RunnerConfig RunnerConfig

	recorder record.EventRecorder
}

// SetupWithManager sets up the controller with the Manager. Job and
// JSBundle are both owned, typed resources known at compile time, so a
// direct Owns() watch is sufficient and no generic object tracker is
// needed.
func (r *FrontendIntegrationReconciler) SetupWithManager(ctx context.Context, mgr ctrl.Manager, options controller.Options) error {
	err := ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.FrontendIntegration{}).
		Owns(&batchv1.Job{}).
		Owns(&v1alpha1.JSBundle{}).
		WithOptions(options).
		WithEventFilter(hasMatchingWatchLabel(ctrl.LoggerFrom(ctx), r.WatchFilterValue)).
		Complete(r)
	if err != nil {
		return ferrors.Wrap(err, "failed setting up with a controller manager")
	}

	r.recorder = mgr.GetEventRecorderFor("frontendintegration-controller")
	return nil
}

//+kubebuilder:rbac:groups=frontend-forge.io,resources=frontendintegrations,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=frontend-forge.io,resources=frontendintegrations/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=frontend-forge.io,resources=jsbundles,verbs=get;list;watch
//+kubebuilder:rbac:groups=batch,resources=jobs,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

// Reconcile computes spec_hash, decides whether to dispatch a Job, and
// otherwise observes the already-dispatched Job/Bundle and advances
// status.phase.
func (r *FrontendIntegrationReconciler) Reconcile(ctx context.Context, req ctrl.Request) (_ ctrl.Result, reterr error) {
	log := ctrl.LoggerFrom(ctx)

	fi := &v1alpha1.FrontendIntegration{}
	if err := r.Client.Get(ctx, req.NamespacedName, fi); err != nil {
		if apierrors.IsNotFound(err) {
			// Step 1: not found. Nothing to clean up: Job and JSBundle are
			// owned resources, garbage-collected by the API server.
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !fi.DeletionTimestamp.IsZero() {
		// Step 1: has a deletion timestamp. Clear no state; return.
		return ctrl.Result{}, nil
	}

	patchHelper, err := patch.NewHelper(fi, r.Client)
	if err != nil {
		return ctrl.Result{}, err
	}
	defer func() {
		if err := patchHelper.Patch(ctx, fi); err != nil {
			reterr = kerrors.NewAggregate([]error{reterr, err})
		}
	}()

	if !fi.Spec.Enabled {
		// Step 2: disabled. Hold state, preserve existing hashes/bundle
		// ref, produce no builds.
		fi.Status.Phase = v1alpha1.FIPhasePending
		fi.Status.Message = "Disabled"
		return ctrl.Result{}, nil
	}

	// Step 3: compute spec_hash.
	specHash, err := hashing.SpecHash(fi.Spec)
	if err != nil {
		return ctrl.Result{}, ferrors.Wrap(err, "compute spec hash")
	}

	// Step 4: decide whether to dispatch.
	if shouldDispatch(fi, specHash) {
		return r.dispatch(ctx, fi, specHash)
	}

	// Step 6: not dispatching, observe Job and Bundle.
	return r.observe(ctx, log, fi, specHash)
}

// shouldDispatch implements step 4: dispatch iff the observed spec hash is
// absent, differs from the current spec hash (with the backward-compat
// fallback onto observed_manifest_hash), or the FI is in Failed phase
// (permit retry).
func shouldDispatch(fi *v1alpha1.FrontendIntegration, specHash string) bool {
	if fi.Status.ObservedSpecHash == "" {
		if fi.Status.ObservedManifestHash != "" {
			return fi.Status.ObservedManifestHash != specHash
		}
		return true
	}
	if fi.Status.ObservedSpecHash != specHash {
		return true
	}
	return fi.Status.Phase == v1alpha1.FIPhaseFailed
}

// dispatch implements step 5: adopt an existing Job for (fi-name,
// spec-hash) if one exists, otherwise create a fresh one, and write
// status {phase=Building, observed_spec_hash, active_build.job_ref}.
func (r *FrontendIntegrationReconciler) dispatch(ctx context.Context, fi *v1alpha1.FrontendIntegration, specHash string) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	existing, err := r.findJobForSpecHash(ctx, fi, specHash)
	if err != nil {
		return ctrl.Result{}, err
	}

	job := existing
	if job == nil {
		if fi.Spec.Integration.Type == "crd" {
			if err := fikube.ValidateCrdReference(ctx, r.Client, fi.Spec.Integration.Crd); err != nil {
				fi.Status.Phase = v1alpha1.FIPhaseFailed
				fi.Status.Message = err.Error()
				log.Info("not dispatching builder job, crd reference is invalid", "error", err.Error())
				return ctrl.Result{}, nil
			}
		}

		job = jobbuilder.NewBuilder().
			WithFI(fi.Namespace, fi.Name, specHash).
			WithBundleName(hashing.BundleName(fi.Name)).
			WithBuildService(r.RunnerConfig.BuildServiceBaseURL, r.RunnerConfig.BuildServiceTimeoutSeconds).
			WithStaleCheckGraceSeconds(r.RunnerConfig.StaleCheckGraceSeconds).
			WithImage(r.RunnerConfig.Image).
			Build()

		if err := controllerutil.SetControllerReference(fi, job, r.Scheme); err != nil {
			return ctrl.Result{}, err
		}
		if err := r.Client.Create(ctx, job); err != nil && !apierrors.IsAlreadyExists(err) {
			return ctrl.Result{}, ferrors.Wrap(err, "create builder job")
		}
		log.Info("dispatched builder job", "job", job.Name, "specHash", specHash)
		r.recorder.Eventf(fi, corev1.EventTypeNormal, "Dispatched", "Dispatched builder job %s", job.Name)
	} else {
		log.V(1).Info("adopting existing builder job", "job", job.Name, "specHash", specHash)
	}

	fi.Status.Phase = v1alpha1.FIPhaseBuilding
	fi.Status.ObservedSpecHash = specHash
	fi.Status.Message = ""
	fi.Status.ActiveBuild.JobRef = &corev1.ObjectReference{
		APIVersion: batchv1.SchemeGroupVersion.String(),
		Kind:       "Job",
		Namespace:  job.Namespace,
		Name:       job.Name,
	}

	return ctrl.Result{}, nil
}

// findJobForSpecHash looks up an existing Job by label selector
// {fi-name, spec-hash (stripped)} so a reconcile that races a prior
// dispatch adopts the existing Job instead of creating a duplicate.
func (r *FrontendIntegrationReconciler) findJobForSpecHash(ctx context.Context, fi *v1alpha1.FrontendIntegration, specHash string) (*batchv1.Job, error) {
	var jobs batchv1.JobList
	if err := r.Client.List(ctx, &jobs,
		client.InNamespace(fi.Namespace),
		client.MatchingLabels{
			v1alpha1.FINameLabel:   fi.Name,
			v1alpha1.SpecHashLabel: hashing.LabelValue(specHash),
		},
	); err != nil {
		return nil, ferrors.Wrap(err, "list builder jobs")
	}
	if len(jobs.Items) == 0 {
		return nil, nil
	}
	return &jobs.Items[0], nil
}

// observe implements step 6: derive status.phase from the dispatched
// Job's condition, and from the Bundle once the Job succeeds.
func (r *FrontendIntegrationReconciler) observe(ctx context.Context, log logr.Logger, fi *v1alpha1.FrontendIntegration, specHash string) (ctrl.Result, error) {
	if fi.Status.ActiveBuild.JobRef == nil {
		// No dispatch has happened yet and none is due; nothing to
		// observe.
		return ctrl.Result{}, nil
	}

	job := &batchv1.Job{}
	jobKey := client.ObjectKey{Namespace: fi.Status.ActiveBuild.JobRef.Namespace, Name: fi.Status.ActiveBuild.JobRef.Name}
	if err := r.Client.Get(ctx, jobKey, job); err != nil {
		if apierrors.IsNotFound(err) {
			fi.Status.Phase = v1alpha1.FIPhaseBuilding
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	switch jobPhase(job) {
	case jobFailed:
		fi.Status.Phase = v1alpha1.FIPhaseFailed
		fi.Status.Message = jobFailureMessage(job)
		return ctrl.Result{}, nil
	case jobRunning:
		fi.Status.Phase = v1alpha1.FIPhaseBuilding
		return ctrl.Result{}, nil
	}

	// jobSucceeded: fetch the Bundle and confirm it reflects this spec
	// version before declaring success.
	bundle := &v1alpha1.JSBundle{}
	bundleKey := client.ObjectKey{Namespace: fi.Namespace, Name: hashing.BundleName(fi.Name)}
	if err := r.Client.Get(ctx, bundleKey, bundle); err != nil {
		if apierrors.IsNotFound(err) {
			log.V(1).Info("builder job succeeded but bundle not yet written, waiting", "fi", fi.Name)
			fi.Status.Phase = v1alpha1.FIPhaseBuilding
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if bundle.Labels[v1alpha1.SpecHashLabel] != hashing.LabelValue(specHash) {
		// The runner may still be finishing, or the Job that finished was
		// stale. Either way, do not declare success yet.
		fi.Status.Phase = v1alpha1.FIPhaseBuilding
		return ctrl.Result{}, nil
	}

	fi.Status.Phase = v1alpha1.FIPhaseSucceeded
	fi.Status.ObservedManifestHash = bundle.Spec.ManifestHash
	fi.Status.Message = ""
	fi.Status.BundleRef = &corev1.ObjectReference{
		APIVersion: v1alpha1.GroupVersion.String(),
		Kind:       "JSBundle",
		Namespace:  bundle.Namespace,
		Name:       bundle.Name,
	}
	return ctrl.Result{}, nil
}
