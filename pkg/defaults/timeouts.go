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

package defaults

import "time"

// Cluster query timeouts for context resolution calls.
const (
	// ClusterQueryTimeout is the timeout for listing clusters via
	// gcloud or kind during context resolution.
	ClusterQueryTimeout = 30 * time.Second

	// ProjectResolveTimeout is the timeout for resolving the active
	// cloud project from gcloud configuration.
	ProjectResolveTimeout = 15 * time.Second

	// RegistryAuthTimeout is the timeout for configuring registry
	// authentication (configure-docker, token login).
	RegistryAuthTimeout = 60 * time.Second
)

// Image timeouts for container tool operations.
const (
	// ImageBuildTimeout is the timeout for a container image build.
	// Builds pull base layers on cold caches, so this is generous.
	ImageBuildTimeout = 15 * time.Minute

	// ImagePushTimeout is the timeout for pushing an image to a
	// remote registry.
	ImagePushTimeout = 10 * time.Minute

	// ImageLoadTimeout is the timeout for loading an image into a
	// local kind cluster's image store.
	ImageLoadTimeout = 5 * time.Minute
)

// Kubernetes timeouts for K8s API operations.
const (
	// K8sApplyTimeout is the timeout for a single server-side apply.
	K8sApplyTimeout = 30 * time.Second

	// K8sCleanupTimeout is the timeout for cleanup operations.
	K8sCleanupTimeout = 30 * time.Second
)
