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

// Package container drives the selected container build tool (docker or
// podman) for image build, push, and registry login. Builds and pushes
// delegate to the tool's CLI; local image existence checks use the Docker
// Engine API directly.
package container

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Tool selects the container build tool backend.
type Tool string

const (
	// ToolDocker builds with the docker CLI and authenticates through
	// gcloud's docker credential helpers.
	ToolDocker Tool = "docker"
	// ToolPodman builds with the podman CLI and authenticates with a
	// fresh access token login instead of credential helpers.
	ToolPodman Tool = "podman"
)

// IsValid reports whether the tool is a supported backend.
func (t Tool) IsValid() bool {
	switch t {
	case ToolDocker, ToolPodman:
		return true
	default:
		return false
	}
}

// SupportedTools returns the supported container tool names.
func SupportedTools() []string {
	return []string{string(ToolDocker), string(ToolPodman)}
}

// runner executes an external command with inherited stdio for long
// operations (build/push stream progress to the operator).
// Swapped for a fake in tests.
type runner interface {
	run(ctx context.Context, name string, args ...string) error
	runQuiet(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) run(ctx context.Context, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func (execRunner) runQuiet(ctx context.Context, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	if out, err := exec.CommandContext(ctx, path, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %s: %w", name, strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Client drives the selected container tool.
type Client struct {
	tool      Tool
	runner    runner
	inspector imageInspector
}

// NewClient creates a container Client for the given tool.
func NewClient(tool Tool) (*Client, error) {
	if !tool.IsValid() {
		return nil, fmt.Errorf("unsupported container tool %q (supported: %s)",
			tool, strings.Join(SupportedTools(), ", "))
	}
	return &Client{
		tool:      tool,
		runner:    execRunner{},
		inspector: &dockerInspector{},
	}, nil
}

// Tool returns the selected build tool.
func (c *Client) Tool() Tool {
	return c.tool
}

// Build builds the image from the given build context directory.
func (c *Client) Build(ctx context.Context, image, dir string) error {
	slog.Info("building image", "image", image, "tool", c.tool, "dir", dir)
	return c.runner.run(ctx, string(c.tool), "build", "-t", image, dir)
}

// Push pushes the image to its remote registry.
func (c *Client) Push(ctx context.Context, image string) error {
	slog.Info("pushing image", "image", image, "tool", c.tool)
	return c.runner.run(ctx, string(c.tool), "push", image)
}

// Login authenticates the tool against a registry host using a
// freshly obtained token. Only podman uses this path; docker goes
// through gcloud's credential helpers instead.
// The token is passed via stdin-less --password to the tool; it is a
// short-lived access token, not a stored credential.
func (c *Client) Login(ctx context.Context, registryHost, username, token string) error {
	slog.Info("logging into registry", "registry", registryHost, "tool", c.tool, "user", username)
	return c.runner.runQuiet(ctx, string(c.tool),
		"login", "-u", username, "--password", token, registryHost)
}

// ImageExists reports whether the image is present in the local daemon's
// image store. Only meaningful for docker; podman reports true and
// defers verification to the subsequent kind load, which fails with its
// own diagnostic if the image is missing.
func (c *Client) ImageExists(ctx context.Context, image string) (bool, error) {
	if c.tool != ToolDocker {
		return true, nil
	}
	return c.inspector.imageExists(ctx, image)
}
