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

// Summary describes the outcome of a successful deployment for the
// operator: what was deployed, where, and how to reach it.
type Summary struct {
	Target      string `json:"target" yaml:"target"`
	Image       string `json:"image" yaml:"image"`
	Namespace   string `json:"namespace" yaml:"namespace"`
	Context     string `json:"context" yaml:"context"`
	SessionID   string `json:"sessionId" yaml:"sessionId"`
	PortForward string `json:"portForward" yaml:"portForward"`
}
