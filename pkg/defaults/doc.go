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

// Package defaults provides centralized configuration constants for kaideploy.
//
// Timeouts are organized by the external collaborator they bound:
//
//   - Cluster query timeouts: gcloud/kind enumeration calls
//   - Image timeouts: container build, push, and load operations
//   - Kubernetes timeouts: server-side apply calls
//
// Import and use constants directly:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ClusterQueryTimeout)
//	defer cancel()
package defaults
