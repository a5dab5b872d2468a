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

// Package gcloud invokes the gcloud CLI for the Google Cloud operations a
// deploy needs: resolving the active project, listing GKE clusters, and
// configuring container registry authentication. The CLI is an external
// collaborator; nothing here reimplements its auth flows.
package gcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// artifactRegistrySuffix identifies regional Artifact Registry hosts
// (e.g. "us-docker.pkg.dev"), which need per-host docker auth
// configuration. Other hosts fall back to the default gcr.io family.
const artifactRegistrySuffix = "-docker.pkg.dev"

// Cluster describes a GKE cluster as returned by cluster listing.
type Cluster struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// String returns the cluster in "name (location) status" form for
// operator-facing diagnostics.
func (c Cluster) String() string {
	return fmt.Sprintf("%s (%s) %s", c.Name, c.Location, c.Status)
}

// runner executes an external command and returns its stdout.
// Swapped for a fake in tests.
type runner interface {
	run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	out, err := exec.CommandContext(ctx, path, args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s %s failed: %s: %w", name, strings.Join(args, " "),
				strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return nil, fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}
	return out, nil
}

// Client wraps gcloud CLI invocations.
type Client struct {
	runner runner
}

// NewClient creates a gcloud Client backed by the gcloud binary on PATH.
func NewClient() *Client {
	return &Client{runner: execRunner{}}
}

// ResolveProject returns the active project from gcloud configuration.
func (c *Client) ResolveProject(ctx context.Context) (string, error) {
	out, err := c.runner.run(ctx, "gcloud", "config", "get-value", "project")
	if err != nil {
		return "", fmt.Errorf("failed to resolve project from gcloud config: %w", err)
	}

	project := strings.TrimSpace(string(out))
	if project == "" || project == "(unset)" {
		return "", fmt.Errorf("no project configured in gcloud; run 'gcloud config set project PROJECT_ID'")
	}

	slog.Debug("resolved project from gcloud config", "project", project)
	return project, nil
}

// ListClusters returns the GKE clusters visible in the given project.
// Read-only; used as a diagnostic before failing context resolution.
// An empty project uses the gcloud default.
func (c *Client) ListClusters(ctx context.Context, project string) ([]Cluster, error) {
	args := []string{"container", "clusters", "list", "--format=json"}
	if project != "" {
		args = append(args, "--project="+project)
	}

	out, err := c.runner.run(ctx, "gcloud", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list GKE clusters: %w", err)
	}

	var clusters []Cluster
	if err := json.Unmarshal(out, &clusters); err != nil {
		return nil, fmt.Errorf("failed to parse cluster list: %w", err)
	}

	slog.Debug("listed GKE clusters", slog.Int("count", len(clusters)))
	return clusters, nil
}

// ConfigureDockerAuth configures docker credential helpers for the given
// registry host. Artifact Registry hosts are configured per-host; any
// other value (including empty) configures the default gcr.io family.
func (c *Client) ConfigureDockerAuth(ctx context.Context, registryHost string) error {
	args := []string{"auth", "configure-docker"}
	if IsArtifactRegistry(registryHost) {
		args = append(args, registryHost)
	}
	args = append(args, "-q")

	if _, err := c.runner.run(ctx, "gcloud", args...); err != nil {
		return fmt.Errorf("failed to configure docker auth for %q: %w", registryHost, err)
	}
	return nil
}

// AccessToken returns a fresh OAuth2 access token for the active account.
// Used for podman registry login, which cannot use docker credential helpers.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	out, err := c.runner.run(ctx, "gcloud", "auth", "print-access-token")
	if err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", fmt.Errorf("gcloud returned an empty access token")
	}
	return token, nil
}

// IsArtifactRegistry reports whether the registry host is a regional
// Artifact Registry host rather than the default gcr.io family.
func IsArtifactRegistry(registryHost string) bool {
	return strings.HasSuffix(registryHost, artifactRegistrySuffix)
}
