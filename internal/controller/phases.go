package controller

import (
	batchv1 "k8s.io/api/batch/v1"
)

// jobRunState is the simplified three-way read of a batchv1.Job this
// controller cares about. The status model here carries phase+message
// only, so there is no analogue of a rich Conditions tree to maintain.
type jobRunState int

const (
	jobRunning jobRunState = iota
	jobSucceeded
	jobFailed
)

// jobPhase reads a Job's status conditions to classify it. A Job with no
// terminal condition yet is still jobRunning.
func jobPhase(job *batchv1.Job) jobRunState {
	for _, c := range job.Status.Conditions {
		if c.Status != "True" {
			continue
		}
		switch c.Type {
		case batchv1.JobComplete:
			return jobSucceeded
		case batchv1.JobFailed:
			return jobFailed
		}
	}
	if job.Status.Succeeded > 0 {
		return jobSucceeded
	}
	if job.Status.Failed > 0 && job.Spec.BackoffLimit != nil && job.Status.Failed > *job.Spec.BackoffLimit {
		return jobFailed
	}
	return jobRunning
}

// jobFailureMessage extracts a human-readable reason from a failed Job's
// conditions, falling back to a generic message when the Job carries
// none.
func jobFailureMessage(job *batchv1.Job) string {
	for _, c := range job.Status.Conditions {
		if c.Type == batchv1.JobFailed && c.Status == "True" {
			if c.Message != "" {
				return c.Message
			}
			if c.Reason != "" {
				return c.Reason
			}
			break
		}
	}
	return "builder job failed"
}
