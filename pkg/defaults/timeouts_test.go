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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Cluster query timeouts
		{"ClusterQueryTimeout", ClusterQueryTimeout, 10 * time.Second, 60 * time.Second},
		{"ProjectResolveTimeout", ProjectResolveTimeout, 5 * time.Second, 30 * time.Second},
		{"RegistryAuthTimeout", RegistryAuthTimeout, 30 * time.Second, 120 * time.Second},

		// Image timeouts
		{"ImageBuildTimeout", ImageBuildTimeout, 5 * time.Minute, 30 * time.Minute},
		{"ImagePushTimeout", ImagePushTimeout, 2 * time.Minute, 20 * time.Minute},
		{"ImageLoadTimeout", ImageLoadTimeout, 1 * time.Minute, 10 * time.Minute},

		// K8s timeouts
		{"K8sApplyTimeout", K8sApplyTimeout, 10 * time.Second, 60 * time.Second},
		{"K8sCleanupTimeout", K8sCleanupTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}
