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

// Package cli implements the command-line interface for kaideploy.
//
// # Commands
//
// gke - deploy to a Google Kubernetes Engine cluster:
//
//	kaideploy gke [--project ID] [--context CTX | --kubeconfig PATH] [--registry PREFIX]
//
// kind - deploy to a local kind cluster:
//
//	kaideploy kind [--context CTX] [--api-key KEY]
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	GCP_PROJECT           Google Cloud project id (gke)
//	KUBECONFIG            kubeconfig file path
//	KUBE_CONTEXT          explicit kube context
//	KUBECTL_AI_NAMESPACE  target namespace (default: kubectl-ai)
//	IMAGE_REGISTRY        registry prefix override (gke)
//	CONTAINER_TOOL        build tool: docker or podman
//	GEMINI_API_KEY        credential for the in-cluster secret (kind)
//	LOG_LEVEL             log verbosity
//
// # Exit Codes
//
//	0  Success
//	1  Any step failure (invalid configuration, missing context, build
//	   or apply failure)
//
// The CLI uses the urfave/cli/v3 framework and delegates to pkg/deploy
// for orchestration, pkg/serializer for summary output, and pkg/logging
// for structured logging.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/cli.version=1.0.0'"
package cli
