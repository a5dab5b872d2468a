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

// Package kindcluster invokes the kind CLI to enumerate local clusters
// and load locally built images into a cluster's image store.
package kindcluster

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const (
	// DefaultCluster is kind's default cluster name.
	DefaultCluster = "kind"

	// contextPrefix is the prefix kind applies to kubeconfig context names.
	contextPrefix = "kind-"
)

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

// Client wraps kind CLI invocations.
type Client struct {
	runner runner
}

// NewClient creates a kind Client backed by the kind binary on PATH.
func NewClient() *Client {
	return &Client{runner: execRunner{}}
}

// Clusters returns the names of locally available kind clusters.
// Returns an empty slice when none exist.
func (c *Client) Clusters(ctx context.Context) ([]string, error) {
	out, err := c.runner.run(ctx, "kind", "get", "clusters")
	if err != nil {
		return nil, fmt.Errorf("failed to list kind clusters: %w", err)
	}

	text := strings.TrimSpace(string(out))
	// kind prints this to stderr normally, but guard against it
	// bleeding into stdout in older releases.
	if text == "" || strings.Contains(text, "No kind clusters found") {
		return nil, nil
	}

	return strings.Split(text, "\n"), nil
}

// LoadImage loads a locally built image into the named cluster's image
// store, so the workload can run it without a registry pull.
func (c *Client) LoadImage(ctx context.Context, image, cluster string) error {
	if _, err := c.runner.run(ctx, "kind", "load", "docker-image", image, "--name", cluster); err != nil {
		return fmt.Errorf("failed to load image %q into kind cluster %q: %w", image, cluster, err)
	}
	return nil
}

// ContextName returns the kubeconfig context name for a kind cluster.
func ContextName(cluster string) string {
	return contextPrefix + cluster
}

// ClusterFromContext returns the kind cluster name for a kubeconfig
// context, and whether the context belongs to kind at all.
func ClusterFromContext(context string) (string, bool) {
	if !strings.HasPrefix(context, contextPrefix) {
		return "", false
	}
	return strings.TrimPrefix(context, contextPrefix), true
}
