// Package job builds the one-shot Builder Job a FrontendIntegration
// dispatches per spec version.
package job

import (
	"strconv"
	"time"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/frontend-forge/controller/api/v1alpha1"
	"github.com/frontend-forge/controller/pkg/hashing"
)

const containerName = "runner"

// Builder constructs the Builder Job's batchv1.Job, fluent-builder style.
type Builder struct {
	fiName      string
	fiNamespace string
	specHash    string
	bundleName  string

	buildServiceBaseURL     string
	buildServiceTimeoutSecs int32
	staleCheckGraceSecs     int32

	image        string
	resources    corev1.ResourceRequirements
	backoffLimit int32
	ttl          *time.Duration
	annotations  map[string]string
}

// NewBuilder returns a Builder with conservative defaults (no retries,
// no TTL).
func NewBuilder() *Builder {
	return &Builder{backoffLimit: 0}
}

func (b *Builder) WithFI(namespace, name, specHash string) *Builder {
	b.fiNamespace = namespace
	b.fiName = name
	b.specHash = specHash
	return b
}

func (b *Builder) WithBundleName(name string) *Builder {
	b.bundleName = name
	return b
}

func (b *Builder) WithBuildService(baseURL string, timeoutSeconds int32) *Builder {
	b.buildServiceBaseURL = baseURL
	b.buildServiceTimeoutSecs = timeoutSeconds
	return b
}

func (b *Builder) WithStaleCheckGraceSeconds(s int32) *Builder {
	b.staleCheckGraceSecs = s
	return b
}

func (b *Builder) WithImage(image string) *Builder {
	b.image = image
	return b
}

func (b *Builder) WithResources(r corev1.ResourceRequirements) *Builder {
	b.resources = r
	return b
}

func (b *Builder) WithBackoffLimit(n int32) *Builder {
	b.backoffLimit = n
	return b
}

func (b *Builder) WithTTL(ttl *time.Duration) *Builder {
	b.ttl = ttl
	return b
}

func (b *Builder) WithAnnotations(a map[string]string) *Builder {
	b.annotations = a
	return b
}

// Build returns the Job this Builder describes. Name and labels are
// derived deterministically from (fi-name, spec-hash) so repeated calls
// with the same inputs describe the same object (idempotent dispatch,
// across repeated reconciles).
func (b *Builder) Build() *batchv1.Job {
	labels := map[string]string{
		v1alpha1.ManagedByLabel: v1alpha1.ManagedByValue,
		v1alpha1.FINameLabel:    b.fiName,
		v1alpha1.SpecHashLabel:  hashing.LabelValue(b.specHash),
	}

	podLabels := make(map[string]string, len(labels))
	for k, v := range labels {
		podLabels[k] = v
	}

	jobSpec := batchv1.JobSpec{
		BackoffLimit: ptr.To(b.backoffLimit),
		Completions:  ptr.To(int32(1)),
		Template: corev1.PodTemplateSpec{
			ObjectMeta: metav1.ObjectMeta{
				Labels:      podLabels,
				Annotations: b.annotations,
			},
			Spec: b.podSpec(),
		},
	}

	if b.ttl != nil && b.ttl.Seconds() > 0 {
		jobSpec.TTLSecondsAfterFinished = ptr.To(int32(b.ttl.Seconds()))
	}

	jb := &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name:      hashing.JobName(b.fiName, b.specHash),
			Namespace: b.fiNamespace,
			Labels:    labels,
		},
		Spec: jobSpec,
	}
	return jb
}

func (b *Builder) podSpec() corev1.PodSpec {
	env := []corev1.EnvVar{
		{Name: "FI_NAMESPACE", Value: b.fiNamespace},
		{Name: "FI_NAME", Value: b.fiName},
		{Name: "SPEC_HASH", Value: b.specHash},
		// MANIFEST_HASH is carried for backward compatibility: older
		// runners only understood this name for the same value.
		{Name: "MANIFEST_HASH", Value: b.specHash},
		{Name: "JSBUNDLE_NAME", Value: b.bundleName},
		{Name: "BUILD_SERVICE_BASE_URL", Value: b.buildServiceBaseURL},
		{Name: "BUILD_SERVICE_TIMEOUT_SECONDS", Value: strconv.Itoa(int(b.buildServiceTimeoutSecs))},
		{Name: "STALE_CHECK_GRACE_SECONDS", Value: strconv.Itoa(int(b.staleCheckGraceSecs))},
		{
			Name: "POD_NAME",
			ValueFrom: &corev1.EnvVarSource{
				FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.name"},
			},
		},
	}

	return corev1.PodSpec{
		RestartPolicy: corev1.RestartPolicyNever,
		Affinity:      linuxNodeAffinity(),
		Containers: []corev1.Container{
			{
				Name:                     containerName,
				Image:                    b.image,
				ImagePullPolicy:          corev1.PullIfNotPresent,
				TerminationMessagePolicy: corev1.TerminationMessageFallbackToLogsOnError,
				Env:                      env,
				Resources:                b.resources,
			},
		},
	}
}

func linuxNodeAffinity() *corev1.Affinity {
	return &corev1.Affinity{
		NodeAffinity: &corev1.NodeAffinity{
			RequiredDuringSchedulingIgnoredDuringExecution: &corev1.NodeSelector{
				NodeSelectorTerms: []corev1.NodeSelectorTerm{
					{
						MatchExpressions: []corev1.NodeSelectorRequirement{
							{
								Key:      "kubernetes.io/os",
								Operator: corev1.NodeSelectorOpIn,
								Values:   []string{"linux"},
							},
						},
					},
				},
			},
		},
	}
}
