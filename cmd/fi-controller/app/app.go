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

// Package app wires the frontendintegration-controller manager binary:
// flag parsing, scheme registration, and manager startup. This is the
// thin-wiring layer spec.md treats as an external collaborator; the
// protocol itself lives in internal/controller.
package app

import (
	"crypto/tls"
	"flag"
	"fmt"

	"github.com/spf13/cobra"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrlruntime "sigs.k8s.io/controller-runtime"
	ctrlruntimelog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/frontend-forge/controller/api/v1alpha1"
	"github.com/frontend-forge/controller/cmd/fi-controller/app/options"
	forgelog "github.com/frontend-forge/controller/pkg/log"
)

const controllerName = "fi-controller"

// NewControllerManagerCommand builds the fi-controller cobra root.
func NewControllerManagerCommand() *cobra.Command {
	opts := &options.ControllerManagerRunOptions{}

	fs := flag.NewFlagSet(controllerName, flag.ExitOnError)
	opts.AddFlags(fs)

	cmd := &cobra.Command{
		Use:   controllerName,
		Short: "Controller manager for the frontend-forge FrontendIntegration CRD",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fs.Parse(args); err != nil {
				return err
			}
			return runControllerManager(opts)
		},
	}
	cmd.Flags().AddGoFlagSet(fs)

	return cmd
}

func runControllerManager(opts *options.ControllerManagerRunOptions) error {
	log, err := forgelog.NewZapLogger(opts.LogLevel, opts.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	log = log.WithName(controllerName)
	ctrlruntimelog.SetLogger(log)

	cfg, err := ctrlruntime.GetConfig()
	if err != nil {
		return fmt.Errorf("get kubeconfig: %w", err)
	}

	electionName := controllerName
	if opts.WatchFilterValue != "" {
		electionName += "-" + opts.WatchFilterValue
	}

	tlsOpts := []func(*tls.Config){}
	if !opts.EnableHTTP2 {
		tlsOpts = append(tlsOpts, func(c *tls.Config) {
			log.Info("disabling http/2")
			c.NextProtos = []string{"http/1.1"}
		})
	}

	mgr, err := manager.New(cfg, manager.Options{
		Metrics:          metricsserver.Options{BindAddress: opts.MetricsBindAddress, TLSOpts: tlsOpts},
		LeaderElection:   opts.EnableLeaderElection,
		LeaderElectionID: electionName,
	})
	if err != nil {
		return fmt.Errorf("create manager: %w", err)
	}

	utilruntime.Must(clientgoscheme.AddToScheme(mgr.GetScheme()))
	utilruntime.Must(v1alpha1.AddToScheme(mgr.GetScheme()))

	rootCtx := signals.SetupSignalHandler()

	ctrlCtx := &options.ControllerContext{
		Ctx:        rootCtx,
		RunOptions: opts,
		Mgr:        mgr,
		Log:        &log,
	}
	if err := createAllControllers(ctrlCtx); err != nil {
		return fmt.Errorf("create controllers: %w", err)
	}

	log.Info(fmt.Sprintf("starting the %s controller manager", controllerName))
	if err := mgr.Start(rootCtx); err != nil {
		return fmt.Errorf("problem running manager: %w", err)
	}
	return nil
}
