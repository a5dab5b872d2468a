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
	"github.com/urfave/cli/v3"

	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/container"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/deploy"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/serializer"
)

// Flags shared by the gke and kind commands.
var (
	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "Path to kubeconfig file; its current-context is used when no --context is given",
		Sources: cli.EnvVars("KUBECONFIG"),
	}

	contextFlag = &cli.StringFlag{
		Name:    "context",
		Usage:   "Kube context to target; always wins when set",
		Sources: cli.EnvVars("KUBE_CONTEXT"),
	}

	namespaceFlag = &cli.StringFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Usage:   "Target namespace for the kubectl-ai workload",
		Sources: cli.EnvVars("KUBECTL_AI_NAMESPACE"),
		Value:   deploy.DefaultNamespace,
	}

	containerToolFlag = &cli.StringFlag{
		Name:    "container-tool",
		Usage:   "Container build tool (docker, podman)",
		Sources: cli.EnvVars("CONTAINER_TOOL"),
		Value:   string(container.ToolDocker),
	}

	buildContextFlag = &cli.StringFlag{
		Name:  "build-context",
		Usage: "Image build context directory",
		Value: ".",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Summary output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Summary output format (yaml, json)",
		Value:   string(serializer.FormatYAML),
	}
)
