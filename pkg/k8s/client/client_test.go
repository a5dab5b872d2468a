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

package client

import (
	"os"
	"path/filepath"
	"testing"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: kind-kind
clusters:
- name: kind-kind
  cluster:
    server: https://127.0.0.1:6443
- name: gke-cluster
  cluster:
    server: https://10.0.0.1
contexts:
- name: kind-kind
  context:
    cluster: kind-kind
    user: kind-kind
- name: gke_my-project_us-central1_my-cluster
  context:
    cluster: gke-cluster
    user: gke-user
users:
- name: kind-kind
  user: {}
- name: gke-user
  user: {}
`

func writeTestKubeconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(testKubeconfig), 0o600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	return path
}

func TestCurrentContext(t *testing.T) {
	path := writeTestKubeconfig(t)

	current, err := CurrentContext(path)
	if err != nil {
		t.Fatalf("CurrentContext failed: %v", err)
	}
	if current != "kind-kind" {
		t.Errorf("expected current context 'kind-kind', got %q", current)
	}
}

func TestListContexts(t *testing.T) {
	path := writeTestKubeconfig(t)

	names, current, err := ListContexts(path)
	if err != nil {
		t.Fatalf("ListContexts failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 contexts, got %d: %v", len(names), names)
	}
	// Sorted order
	if names[0] != "gke_my-project_us-central1_my-cluster" || names[1] != "kind-kind" {
		t.Errorf("unexpected context order: %v", names)
	}
	if current != "kind-kind" {
		t.Errorf("expected current context 'kind-kind', got %q", current)
	}
}

func TestHasContext(t *testing.T) {
	path := writeTestKubeconfig(t)

	if !HasContext(path, "kind-kind") {
		t.Error("expected kind-kind context to exist")
	}
	if HasContext(path, "missing") {
		t.Error("expected missing context to not exist")
	}
}

func TestBuildKubeClient(t *testing.T) {
	path := writeTestKubeconfig(t)

	clientset, config, err := BuildKubeClient(path, "kind-kind")
	if err != nil {
		t.Fatalf("BuildKubeClient failed: %v", err)
	}
	if clientset == nil {
		t.Fatal("expected non-nil clientset")
	}
	if config.Host != "https://127.0.0.1:6443" {
		t.Errorf("unexpected host: %q", config.Host)
	}

	// Context override targets a different cluster.
	_, config, err = BuildKubeClient(path, "gke_my-project_us-central1_my-cluster")
	if err != nil {
		t.Fatalf("BuildKubeClient with override failed: %v", err)
	}
	if config.Host != "https://10.0.0.1" {
		t.Errorf("unexpected host for override: %q", config.Host)
	}
}

func TestBuildKubeClient_UnknownContext(t *testing.T) {
	path := writeTestKubeconfig(t)

	if _, _, err := BuildKubeClient(path, "nope"); err == nil {
		t.Error("expected error for unknown context")
	}
}
