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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/container"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/deploy"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/serializer"
)

func gkeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "gke",
		EnableShellCompletion: true,
		Usage:                 "Deploy kubectl-ai to a Google Kubernetes Engine cluster",
		Description: `Builds the kubectl-ai image, pushes it to the project's container
registry, and applies the workload to a GKE cluster.

Context resolution: --context wins; otherwise the current-context of
--kubeconfig is used; otherwise the available clusters are listed and
the command fails so the operator can pick one.

The registry defaults to gcr.io/<project>; override with --registry.
Artifact Registry hosts (*-docker.pkg.dev) get per-host docker auth
configuration. Credentials in-cluster come from workload identity; no
static secret is created.

# Examples

Deploy using an explicit context:
  kaideploy gke --context gke_my-project_us-central1_prod

Deploy to an Artifact Registry repository with podman:
  kaideploy gke --context my-ctx \
    --registry us-docker.pkg.dev/my-project/images \
    --container-tool podman`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Usage:   "Google Cloud project id (auto-discovered from gcloud config when unset)",
				Sources: cli.EnvVars("GCP_PROJECT"),
			},
			&cli.StringFlag{
				Name:    "registry",
				Usage:   "Image registry prefix override (default: gcr.io/<project>)",
				Sources: cli.EnvVars("IMAGE_REGISTRY"),
			},
			contextFlag,
			kubeconfigFlag,
			namespaceFlag,
			containerToolFlag,
			buildContextFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDeploy(ctx, cmd, deploy.TargetGKE)
		},
	}
}

func kindCmd() *cli.Command {
	return &cli.Command{
		Name:                  "kind",
		EnableShellCompletion: true,
		Usage:                 "Deploy kubectl-ai to a local kind cluster",
		Description: `Builds the kubectl-ai image, loads it into a local kind cluster's
image store, and applies the workload.

Context resolution: --context wins; otherwise the default "kind"
cluster is used if it exists; otherwise the first available kind
cluster. No local cluster is a hard failure.

The API key is materialized as an in-cluster Secret and injected into
the workload's environment.

# Examples

Deploy to the default kind cluster:
  kaideploy kind --api-key $GEMINI_API_KEY

Deploy to a named cluster:
  kaideploy kind --context kind-dev`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API key injected into the in-cluster credential Secret",
				Sources: cli.EnvVars("GEMINI_API_KEY"),
			},
			contextFlag,
			kubeconfigFlag,
			namespaceFlag,
			containerToolFlag,
			buildContextFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDeploy(ctx, cmd, deploy.TargetKind)
		},
	}
}

// runDeploy resolves configuration from flags, runs the orchestrator,
// and serializes the summary.
func runDeploy(ctx context.Context, cmd *cli.Command, target deploy.Target) error {
	initLogger(cmd)

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	orch, err := deploy.NewOrchestrator(buildDeployConfig(cmd, target))
	if err != nil {
		return err
	}

	summary, err := orch.Run(ctx)
	if err != nil {
		return err
	}

	writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer writer.Close()
	return writer.Serialize(ctx, summary)
}

// buildDeployConfig maps parsed flags onto the immutable deploy config.
func buildDeployConfig(cmd *cli.Command, target deploy.Target) deploy.Config {
	cfg := deploy.NewConfig(target)
	cfg.Project = cmd.String("project")
	cfg.Kubeconfig = cmd.String("kubeconfig")
	cfg.Context = cmd.String("context")
	cfg.Registry = cmd.String("registry")
	cfg.APIKey = cmd.String("api-key")
	cfg.ContainerTool = container.Tool(cmd.String("container-tool"))
	cfg.BuildContext = cmd.String("build-context")
	if ns := cmd.String("namespace"); ns != "" {
		cfg.Namespace = ns
	}
	return cfg
}
