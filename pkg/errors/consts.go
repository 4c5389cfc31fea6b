/*
Copyright 2024 The Forge Authors.

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

// Package errors defines the error-kind vocabulary shared by the
// Reconciler and the Runner, and wraps github.com/pkg/errors for
// call-site context.
package errors

import (
	pkgerrors "github.com/pkg/errors"
)

// Wrap, Wrapf, WithStack and New are re-exported so callers only import
// this package.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	New       = pkgerrors.New
	Cause     = pkgerrors.Cause
)

// Kind is the programmatic error-kind token surfaced in FI status and in
// Runner logs.
type Kind string

const (
	// StaleSpec: the Runner's SPEC_HASH no longer matches the current
	// FI.spec hash. Exit success-noop; no Bundle write; no status change.
	StaleSpec Kind = "StaleSpec"

	// StaleStatus: the pre-write poll observed a newer observed_spec_hash.
	// Exit; no Bundle write.
	StaleStatus Kind = "StaleStatus"

	// UnsupportedEngineVersion: spec.builder.engineVersion is unknown.
	// Runner fails; Controller marks phase=Failed with the version in the
	// message.
	UnsupportedEngineVersion Kind = "UnsupportedEngineVersion"

	// UnsupportedPlacement: a menu placement outside
	// {global,cluster,workspace} was requested.
	UnsupportedPlacement Kind = "UnsupportedPlacement"

	// BuildFailed: the build service returned FAILED. Runner fails;
	// Controller marks phase=Failed.
	BuildFailed Kind = "BuildFailed"

	// BuildTimeout: the global timeout was exceeded. Runner fails;
	// Controller marks phase=Failed.
	BuildTimeout Kind = "BuildTimeout"

	// Transient: 5xx, 429, or a network flap. Retry with backoff within
	// the global timeout.
	Transient Kind = "Transient"

	// Conflict: a status write conflict. Controller re-reads and
	// re-reconciles.
	Conflict Kind = "Conflict"

	// NotFound: the FI was deleted mid-build. Runner exits success-noop;
	// cascade deletes Job+Bundle.
	NotFound Kind = "NotFound"
)

// KindError pairs a Kind with a human message, matching the
// status.phase=Failed / status.message contract: no error is silently
// swallowed, and stale exits carry StaleSpec/StaleStatus so they can be
// logged as informational rather than failures.
type KindError struct {
	Kind    Kind
	Message string
}

func (e *KindError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// NewKindError builds a KindError.
func NewKindError(kind Kind, message string) *KindError {
	return &KindError{Kind: kind, Message: message}
}

// KindOf unwraps err looking for a *KindError, returning ("", false) if
// none is found.
func KindOf(err error) (Kind, bool) {
	var ke *KindError
	for err != nil {
		if k, ok := err.(*KindError); ok {
			ke = k
			break
		}
		err = pkgerrors.Unwrap(err)
	}
	if ke == nil {
		return "", false
	}
	return ke.Kind, true
}

// IsStale reports whether err represents one of the two stale-gate exits
// (StaleSpec, StaleStatus) or a NotFound exit for an FI deleted mid-build;
// all three are informational (logged, not failures) per the
// error-handling policy.
func IsStale(err error) bool {
	k, ok := KindOf(err)
	return ok && (k == StaleSpec || k == StaleStatus || k == NotFound)
}

// IsTransient reports whether err is a Transient-kind error, eligible for
// retry with backoff within the global timeout.
func IsTransient(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Transient
}
