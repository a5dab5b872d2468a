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

package image

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		registry string
		image    string
		tag      string
		want     string
		wantErr  bool
	}{
		{
			name:     "gke style registry",
			registry: "gcr.io/my-project",
			image:    "kubectl-ai",
			tag:      "20240101000000",
			want:     "gcr.io/my-project/kubectl-ai:20240101000000",
		},
		{
			name:     "artifact registry host",
			registry: "us-docker.pkg.dev/my-project/repo",
			image:    "kubectl-ai",
			tag:      "20240101000000",
			want:     "us-docker.pkg.dev/my-project/repo/kubectl-ai:20240101000000",
		},
		{
			name:     "kind placeholder registry",
			registry: "kubectl-ai",
			image:    "kubectl-ai",
			tag:      "20240101000000",
			want:     "kubectl-ai/kubectl-ai:20240101000000",
		},
		{
			name:     "trailing slash trimmed",
			registry: "gcr.io/my-project/",
			image:    "kubectl-ai",
			tag:      "latest",
			want:     "gcr.io/my-project/kubectl-ai:latest",
		},
		{
			name:     "missing registry",
			registry: "",
			image:    "kubectl-ai",
			tag:      "latest",
			wantErr:  true,
		},
		{
			name:     "missing tag",
			registry: "gcr.io/my-project",
			image:    "kubectl-ai",
			tag:      "",
			wantErr:  true,
		},
		{
			name:     "invalid characters",
			registry: "gcr.io/my-project",
			image:    "kubectl ai",
			tag:      "latest",
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := New(tc.registry, tc.image, tc.tag)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ref.String())
		})
	}
}

func TestTimestampTag(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "20240101000000", TimestampTag(ts))

	// Non-UTC times normalize to UTC.
	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "20240101000000", TimestampTag(time.Date(2024, 1, 1, 2, 0, 0, 0, loc)))
}

func TestNewTimestamped(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ref, err := NewTimestamped("gcr.io/my-project", DefaultName, ts)
	require.NoError(t, err)
	assert.Equal(t, "gcr.io/my-project/kubectl-ai:20240101000000", ref.String())
}
