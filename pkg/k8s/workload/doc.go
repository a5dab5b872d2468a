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

// Package workload builds and applies the Kubernetes objects for the
// kubectl-ai service: Namespace, ServiceAccount, ClusterRoleBinding,
// optional credential Secret, Deployment, and Service.
//
// Objects are constructed as typed apply configurations and submitted via
// server-side apply with a fixed field manager, so every operation is
// idempotent: re-running a deploy converges on the desired state instead
// of erroring on objects that already exist.
package workload
