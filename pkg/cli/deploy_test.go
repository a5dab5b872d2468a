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

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/container"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/deploy"
)

// captureConfig runs the given command with its action replaced by a
// config capture, so flag-to-config mapping can be asserted without
// touching real collaborators.
func captureConfig(t *testing.T, cmd *cli.Command, target deploy.Target, args []string) deploy.Config {
	t.Helper()

	var got deploy.Config
	cmd.Action = func(ctx context.Context, c *cli.Command) error {
		got = buildDeployConfig(c, target)
		return nil
	}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("command run failed: %v", err)
	}
	return got
}

func TestKindCmd_Defaults(t *testing.T) {
	cfg := captureConfig(t, kindCmd(), deploy.TargetKind, []string{"kind"})

	if cfg.Target != deploy.TargetKind {
		t.Errorf("expected kind target, got %q", cfg.Target)
	}
	if cfg.Namespace != "kubectl-ai" {
		t.Errorf("expected default namespace, got %q", cfg.Namespace)
	}
	if cfg.ContainerTool != container.ToolDocker {
		t.Errorf("expected docker default, got %q", cfg.ContainerTool)
	}
	if cfg.BuildContext != "." {
		t.Errorf("expected current directory build context, got %q", cfg.BuildContext)
	}
	if cfg.Context != "" {
		t.Errorf("expected no context by default, got %q", cfg.Context)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestKindCmd_Flags(t *testing.T) {
	cfg := captureConfig(t, kindCmd(), deploy.TargetKind, []string{
		"kind",
		"--context", "kind-dev",
		"--namespace", "staging",
		"--api-key", "secret",
		"--container-tool", "podman",
		"--build-context", "./svc",
	})

	if cfg.Context != "kind-dev" {
		t.Errorf("unexpected context: %q", cfg.Context)
	}
	if cfg.Namespace != "staging" {
		t.Errorf("unexpected namespace: %q", cfg.Namespace)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("unexpected api key: %q", cfg.APIKey)
	}
	if cfg.ContainerTool != container.ToolPodman {
		t.Errorf("unexpected container tool: %q", cfg.ContainerTool)
	}
	if cfg.BuildContext != "./svc" {
		t.Errorf("unexpected build context: %q", cfg.BuildContext)
	}
}

func TestGkeCmd_Flags(t *testing.T) {
	cfg := captureConfig(t, gkeCmd(), deploy.TargetGKE, []string{
		"gke",
		"--project", "my-project",
		"--registry", "us-docker.pkg.dev/my-project/images",
		"--kubeconfig", "/tmp/kubeconfig",
	})

	if cfg.Target != deploy.TargetGKE {
		t.Errorf("expected gke target, got %q", cfg.Target)
	}
	if cfg.Project != "my-project" {
		t.Errorf("unexpected project: %q", cfg.Project)
	}
	if cfg.Registry != "us-docker.pkg.dev/my-project/images" {
		t.Errorf("unexpected registry: %q", cfg.Registry)
	}
	if cfg.Kubeconfig != "/tmp/kubeconfig" {
		t.Errorf("unexpected kubeconfig: %q", cfg.Kubeconfig)
	}
}

func TestGkeCmd_EnvSources(t *testing.T) {
	t.Setenv("GCP_PROJECT", "env-project")
	t.Setenv("KUBECTL_AI_NAMESPACE", "env-ns")

	cfg := captureConfig(t, gkeCmd(), deploy.TargetGKE, []string{"gke"})

	if cfg.Project != "env-project" {
		t.Errorf("expected project from env, got %q", cfg.Project)
	}
	if cfg.Namespace != "env-ns" {
		t.Errorf("expected namespace from env, got %q", cfg.Namespace)
	}
}

func TestRootCmd_HasDeployCommands(t *testing.T) {
	root := rootCmd()

	names := make(map[string]bool)
	for _, cmd := range root.Commands {
		names[cmd.Name] = true
	}
	if !names["gke"] || !names["kind"] {
		t.Errorf("expected gke and kind commands, got %v", names)
	}
}

func TestEachRunGetsFreshTag(t *testing.T) {
	first := captureConfig(t, kindCmd(), deploy.TargetKind, []string{"kind"})
	second := captureConfig(t, kindCmd(), deploy.TargetKind, []string{"kind"})

	if first.SessionID == second.SessionID {
		t.Error("expected distinct session ids per run")
	}
	if len(first.Tag) != 14 {
		t.Errorf("expected timestamp tag, got %q", first.Tag)
	}
}
