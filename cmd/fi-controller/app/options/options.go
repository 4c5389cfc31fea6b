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

package options

import (
	"context"
	"flag"
	"fmt"

	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/manager"

	"github.com/frontend-forge/controller/pkg/log"
)

// ControllerManagerRunOptions carries process-level flags: leader
// election, metrics, logging, and the Job-dispatch settings the
// reconciler has no other way to learn.
type ControllerManagerRunOptions struct {
	EnableLeaderElection bool
	MetricsBindAddress   string
	LogLevel             log.LogLevel
	LogFormat            log.Format
	WorkerNumber         int
	WatchFilterValue     string
	EnableHTTP2          bool

	RunnerImage                string
	BuildServiceBaseURL        string
	BuildServiceTimeoutSeconds int
	StaleCheckGraceSeconds     int
}

// ControllerContext bundles what a controller constructor needs: the
// manager, the resolved run options, and a logger.
type ControllerContext struct {
	Ctx        context.Context
	RunOptions *ControllerManagerRunOptions
	Mgr        manager.Manager
	Log        *logr.Logger
}

// AddFlags registers every flag this binary accepts.
func (o *ControllerManagerRunOptions) AddFlags(fs *flag.FlagSet) {
	fs.BoolVar(&o.EnableHTTP2, "enable-http2", false, "If set, HTTP/2 will be enabled for the metrics server")
	fs.BoolVar(&o.EnableLeaderElection, "leader-elect", false, "Enable leader election for controller manager.")
	fs.Var(&o.LogLevel, "log-level", fmt.Sprintf("Log level, one of %v", log.AllLogLevels))
	fs.Var(&o.LogFormat, "log-format", fmt.Sprintf("Log format, one of %v", log.AllLogFormats))
	fs.IntVar(&o.WorkerNumber, "worker-number", 10, "Number of FrontendIntegrations to reconcile simultaneously.")
	fs.StringVar(&o.MetricsBindAddress, "metrics-bind-address", ":8080", "The address the metric endpoint binds to.")
	fs.StringVar(&o.WatchFilterValue, "watch-filter", "", "Restrict reconciliation to FrontendIntegrations carrying this frontend-forge.io/watch-filter label value.")

	fs.StringVar(&o.RunnerImage, "runner-image", "", "Container image for the one-shot Builder Job (fi-runner).")
	fs.StringVar(&o.BuildServiceBaseURL, "build-service-base-url", "", "Base URL of the external build service, passed to dispatched Jobs.")
	fs.IntVar(&o.BuildServiceTimeoutSeconds, "build-service-timeout-seconds", 300, "Build service call timeout, passed to dispatched Jobs as BUILD_SERVICE_TIMEOUT_SECONDS.")
	fs.IntVar(&o.StaleCheckGraceSeconds, "stale-check-grace-seconds", 30, "Pre-write stale-check polling grace period, passed to dispatched Jobs as STALE_CHECK_GRACE_SECONDS.")
}
