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

// Package runner implements the one-shot Builder Job pipeline: load env,
// re-validate spec_hash, render the Manifest, call the build service,
// stale-check, and upsert the JSBundle.
package runner

import (
	"os"
	"strconv"
	"time"

	ferrors "github.com/frontend-forge/controller/pkg/errors"
)

// Config carries the Job env vars, loaded once at startup.
type Config struct {
	Namespace                  string
	FIName                     string
	SpecHash                   string
	BundleName                 string
	BuildServiceBaseURL        string
	BuildServiceTimeout        time.Duration
	StaleCheckGrace            time.Duration
	PodName                    string
}

// LoadConfig reads the Config from the process environment, resolving
// SPEC_HASH with a fallback to the legacy MANIFEST_HASH name.
func LoadConfig() (*Config, error) {
	c := &Config{
		Namespace:           os.Getenv("FI_NAMESPACE"),
		FIName:              os.Getenv("FI_NAME"),
		SpecHash:            os.Getenv("SPEC_HASH"),
		BundleName:          os.Getenv("JSBUNDLE_NAME"),
		BuildServiceBaseURL: os.Getenv("BUILD_SERVICE_BASE_URL"),
		PodName:             os.Getenv("POD_NAME"),
	}

	if c.SpecHash == "" {
		c.SpecHash = os.Getenv("MANIFEST_HASH")
	}

	if c.Namespace == "" || c.FIName == "" || c.SpecHash == "" || c.BundleName == "" || c.BuildServiceBaseURL == "" {
		return nil, ferrors.New("missing required environment: FI_NAMESPACE, FI_NAME, SPEC_HASH (or MANIFEST_HASH), JSBUNDLE_NAME and BUILD_SERVICE_BASE_URL are all required")
	}

	timeoutSecs, err := parseSecondsEnv("BUILD_SERVICE_TIMEOUT_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	c.BuildServiceTimeout = time.Duration(timeoutSecs) * time.Second

	graceSecs, err := parseSecondsEnv("STALE_CHECK_GRACE_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	c.StaleCheckGrace = time.Duration(graceSecs) * time.Second

	return c, nil
}

func parseSecondsEnv(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ferrors.Wrapf(err, "malformed %s", name)
	}
	return n, nil
}
