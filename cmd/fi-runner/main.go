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

// Package main is the one-shot Builder Job entrypoint: render, build,
// upsert, exit.
package main

import (
	"context"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/config"

	"github.com/frontend-forge/controller/api/v1alpha1"
	"github.com/frontend-forge/controller/internal/runner"
	"github.com/frontend-forge/controller/pkg/buildservice"
	ferrors "github.com/frontend-forge/controller/pkg/errors"
)

func main() {
	klog.InitFlags(nil)
	ctrl.SetLogger(klog.NewKlogr())
	logger := ctrl.Log.WithName("fi-runner")
	ctx := context.Background()

	cfg, err := runner.LoadConfig()
	if err != nil {
		logger.Error(err, "invalid runner configuration")
		klog.Exit(err)
	}

	logger = logger.WithValues("namespace", cfg.Namespace, "frontendIntegration", cfg.FIName)
	logger.Info("starting builder job")

	k8sClient, scheme, err := newClient()
	if err != nil {
		logger.Error(err, "error creating kubernetes client")
		klog.Exit(err)
	}

	bsClient := buildservice.NewClient(cfg.BuildServiceBaseURL, cfg.BuildServiceTimeout, logger)

	if err := run(ctx, k8sClient, scheme, cfg, bsClient, logger); err != nil {
		if ferrors.IsStale(err) {
			logger.Info("exiting without writing, job is stale", "reason", err.Error())
			return
		}
		logger.Error(err, "builder job failed")
		klog.Exit(err)
	}

	logger.Info("builder job succeeded")
}

func run(ctx context.Context, c client.Client, scheme *runtime.Scheme, cfg *runner.Config, bs *buildservice.Client, logger logr.Logger) error {
	return runner.Run(ctx, c, scheme, cfg, bs, logger)
}

func newClient() (client.Client, *runtime.Scheme, error) {
	restCfg, err := config.GetConfig()
	if err != nil {
		return nil, nil, err
	}

	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1alpha1.AddToScheme(scheme))

	k8sClient, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		return nil, nil, err
	}
	return k8sClient, scheme, nil
}
