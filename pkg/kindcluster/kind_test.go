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

package kindcluster

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func TestClusters(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "multiple clusters in enumeration order",
			output: "kind\ndev\n",
			want:   []string{"kind", "dev"},
		},
		{
			name:   "single cluster",
			output: "dev\n",
			want:   []string{"dev"},
		},
		{
			name:   "no clusters",
			output: "",
			want:   nil,
		},
		{
			name:   "no clusters message on stdout",
			output: "No kind clusters found.\n",
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &Client{runner: &fakeRunner{output: []byte(tc.output)}}

			clusters, err := c.Clusters(context.Background())
			if err != nil {
				t.Fatalf("Clusters failed: %v", err)
			}
			if len(clusters) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, clusters)
			}
			for i := range tc.want {
				if clusters[i] != tc.want[i] {
					t.Errorf("cluster %d: expected %q, got %q", i, tc.want[i], clusters[i])
				}
			}
		})
	}
}

func TestClusters_Error(t *testing.T) {
	c := &Client{runner: &fakeRunner{err: errors.New("kind not found in PATH")}}
	if _, err := c.Clusters(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestLoadImage(t *testing.T) {
	runner := &fakeRunner{}
	c := &Client{runner: runner}

	if err := c.LoadImage(context.Background(), "kubectl-ai/kubectl-ai:20240101000000", "dev"); err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	call := strings.Join(runner.calls[0], " ")
	want := "kind load docker-image kubectl-ai/kubectl-ai:20240101000000 --name dev"
	if call != want {
		t.Errorf("expected %q, got %q", want, call)
	}
}

func TestContextName(t *testing.T) {
	if got := ContextName("kind"); got != "kind-kind" {
		t.Errorf("expected 'kind-kind', got %q", got)
	}
	if got := ContextName("dev"); got != "kind-dev" {
		t.Errorf("expected 'kind-dev', got %q", got)
	}
}

func TestClusterFromContext(t *testing.T) {
	cluster, ok := ClusterFromContext("kind-dev")
	if !ok || cluster != "dev" {
		t.Errorf("expected ('dev', true), got (%q, %v)", cluster, ok)
	}

	if _, ok := ClusterFromContext("gke_proj_zone_cluster"); ok {
		t.Error("expected non-kind context to not match")
	}
}
