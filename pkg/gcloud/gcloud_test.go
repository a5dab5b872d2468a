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

package gcloud

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner records invocations and replays canned output.
type fakeRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func TestResolveProject(t *testing.T) {
	runner := &fakeRunner{output: []byte("my-project\n")}
	c := &Client{runner: runner}

	project, err := c.ResolveProject(context.Background())
	if err != nil {
		t.Fatalf("ResolveProject failed: %v", err)
	}
	if project != "my-project" {
		t.Errorf("expected 'my-project', got %q", project)
	}

	call := strings.Join(runner.calls[0], " ")
	if call != "gcloud config get-value project" {
		t.Errorf("unexpected invocation: %q", call)
	}
}

func TestResolveProject_Unset(t *testing.T) {
	tests := []string{"", "(unset)\n"}
	for _, output := range tests {
		c := &Client{runner: &fakeRunner{output: []byte(output)}}
		if _, err := c.ResolveProject(context.Background()); err == nil {
			t.Errorf("expected error for output %q", output)
		}
	}
}

func TestListClusters(t *testing.T) {
	runner := &fakeRunner{output: []byte(`[
		{"name": "prod", "location": "us-central1", "status": "RUNNING"},
		{"name": "staging", "location": "us-east1-b", "status": "RUNNING"}
	]`)}
	c := &Client{runner: runner}

	clusters, err := c.ListClusters(context.Background(), "my-project")
	if err != nil {
		t.Fatalf("ListClusters failed: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if clusters[0].Name != "prod" || clusters[0].Location != "us-central1" {
		t.Errorf("unexpected cluster: %+v", clusters[0])
	}
	if clusters[0].String() != "prod (us-central1) RUNNING" {
		t.Errorf("unexpected format: %q", clusters[0].String())
	}

	call := strings.Join(runner.calls[0], " ")
	if !strings.Contains(call, "--project=my-project") {
		t.Errorf("expected project flag in invocation: %q", call)
	}
}

func TestListClusters_DefaultProject(t *testing.T) {
	runner := &fakeRunner{output: []byte(`[]`)}
	c := &Client{runner: runner}

	clusters, err := c.ListClusters(context.Background(), "")
	if err != nil {
		t.Fatalf("ListClusters failed: %v", err)
	}
	if len(clusters) != 0 {
		t.Errorf("expected no clusters, got %d", len(clusters))
	}

	call := strings.Join(runner.calls[0], " ")
	if strings.Contains(call, "--project") {
		t.Errorf("expected no project flag: %q", call)
	}
}

func TestConfigureDockerAuth(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		wantArgs string
	}{
		{
			name:     "default gcr registry",
			host:     "gcr.io",
			wantArgs: "gcloud auth configure-docker -q",
		},
		{
			name:     "artifact registry host",
			host:     "us-docker.pkg.dev",
			wantArgs: "gcloud auth configure-docker us-docker.pkg.dev -q",
		},
		{
			name:     "empty host",
			host:     "",
			wantArgs: "gcloud auth configure-docker -q",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{}
			c := &Client{runner: runner}

			if err := c.ConfigureDockerAuth(context.Background(), tc.host); err != nil {
				t.Fatalf("ConfigureDockerAuth failed: %v", err)
			}

			call := strings.Join(runner.calls[0], " ")
			if call != tc.wantArgs {
				t.Errorf("expected %q, got %q", tc.wantArgs, call)
			}
		})
	}
}

func TestAccessToken(t *testing.T) {
	c := &Client{runner: &fakeRunner{output: []byte("ya29.token\n")}}

	token, err := c.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("AccessToken failed: %v", err)
	}
	if token != "ya29.token" {
		t.Errorf("expected trimmed token, got %q", token)
	}
}

func TestAccessToken_Error(t *testing.T) {
	c := &Client{runner: &fakeRunner{err: errors.New("not logged in")}}
	if _, err := c.AccessToken(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestIsArtifactRegistry(t *testing.T) {
	if !IsArtifactRegistry("us-docker.pkg.dev") {
		t.Error("expected artifact registry host to match")
	}
	if !IsArtifactRegistry("europe-west1-docker.pkg.dev") {
		t.Error("expected regional artifact registry host to match")
	}
	if IsArtifactRegistry("gcr.io") {
		t.Error("expected gcr.io to not match")
	}
	if IsArtifactRegistry("") {
		t.Error("expected empty host to not match")
	}
}
