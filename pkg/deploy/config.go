// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package deploy

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/container"
	apperrors "github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/errors"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/image"
)

// Target selects the cluster environment to deploy to.
type Target string

const (
	// TargetGKE deploys to a Google Kubernetes Engine cluster, pushing
	// the image to a remote registry.
	TargetGKE Target = "gke"
	// TargetKind deploys to a local kind cluster, loading the image
	// into the cluster's image store.
	TargetKind Target = "kind"
)

// IsValid reports whether the target is a supported environment.
func (t Target) IsValid() bool {
	switch t {
	case TargetGKE, TargetKind:
		return true
	default:
		return false
	}
}

// SupportedTargets returns the supported deploy target names.
func SupportedTargets() []string {
	return []string{string(TargetGKE), string(TargetKind)}
}

const (
	// DefaultNamespace is the conventional namespace for the service.
	DefaultNamespace = "kubectl-ai"

	// DefaultServiceAccount is the workload's ServiceAccount name.
	DefaultServiceAccount = "kubectl-ai"

	// SecretName is the credential Secret created on the kind path.
	SecretName = "kubectl-ai-api-key"

	// kindRegistry is the registry placeholder used for kind deploys.
	// The image is loaded straight into the cluster's image store, so
	// the registry prefix never resolves against a real registry.
	kindRegistry = "kubectl-ai"

	// defaultRegistryHost is the default global registry for GKE deploys.
	defaultRegistryHost = "gcr.io"
)

// Config is the resolved, immutable snapshot of a deployment's inputs.
// Construct with NewConfig, adjust fields, then validate before use;
// the orchestrator treats it as read-only from that point on.
type Config struct {
	// Target is the cluster environment (gke or kind).
	Target Target
	// Project is the Google Cloud project id. Auto-discovered via
	// gcloud when empty on the GKE path.
	Project string
	// Kubeconfig is an explicit kubeconfig file path. When set, its
	// current-context satisfies GKE context resolution.
	Kubeconfig string
	// Context is an explicit kube context; always wins when set.
	Context string
	// Namespace is the target namespace.
	Namespace string
	// Registry overrides the computed default registry (GKE only).
	Registry string
	// ContainerTool selects the build tool backend.
	ContainerTool container.Tool
	// APIKey is the credential injected into the in-cluster Secret
	// (kind path only).
	APIKey string
	// BuildContext is the image build context directory.
	BuildContext string
	// Tag is the image tag, derived from the run's start time.
	Tag string
	// ServiceAccountName is the workload's ServiceAccount.
	ServiceAccountName string
	// SessionID identifies this run in logs and the summary.
	SessionID string
}

// NewConfig returns a Config for the given target with conventional
// defaults: the kubectl-ai namespace and service account, docker as the
// build tool, the current directory as build context, a timestamp tag,
// and a fresh session id.
func NewConfig(target Target) Config {
	return Config{
		Target:             target,
		Namespace:          DefaultNamespace,
		ServiceAccountName: DefaultServiceAccount,
		ContainerTool:      container.ToolDocker,
		BuildContext:       ".",
		Tag:                image.TimestampTag(time.Now()),
		SessionID:          uuid.NewString(),
	}
}

// Validate checks the configuration before any side-effecting step runs.
func (c Config) Validate() error {
	if !c.Target.IsValid() {
		return apperrors.Newf(apperrors.ErrCodeInvalidConfig,
			"unsupported target %q (supported: %s)", c.Target, strings.Join(SupportedTargets(), ", "))
	}
	if !c.ContainerTool.IsValid() {
		return apperrors.Newf(apperrors.ErrCodeInvalidConfig,
			"unsupported container tool %q (supported: %s)", c.ContainerTool, strings.Join(container.SupportedTools(), ", "))
	}
	if c.Namespace == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "namespace is required")
	}
	if c.ServiceAccountName == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "service account name is required")
	}
	if c.Tag == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "image tag is required")
	}
	if c.BuildContext == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "build context directory is required")
	}
	return nil
}

// registryHost returns the hostname portion of a registry prefix,
// e.g. "us-docker.pkg.dev" for "us-docker.pkg.dev/proj/repo".
func registryHost(registry string) string {
	if i := strings.Index(registry, "/"); i >= 0 {
		return registry[:i]
	}
	return registry
}

// defaultRegistry computes the default GKE registry for a project.
func defaultRegistry(project string) string {
	return fmt.Sprintf("%s/%s", defaultRegistryHost, project)
}
