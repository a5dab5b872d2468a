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

// Package deploy implements the deployment orchestration core: an
// immutable configuration resolved once at startup and a linear,
// fail-fast step sequence that builds and publishes the kubectl-ai
// image, ensures the cluster-side objects, and reports the result.
//
// There are no internal retries. Every cluster mutation is a server-side
// apply, so re-running the orchestrator after a failure is safe and is
// the defined recovery mechanism.
package deploy
