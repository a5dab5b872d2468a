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

package workload

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
)

const (
	// fieldManager identifies this tool in server-side apply field ownership.
	fieldManager = "kaideploy"

	// viewClusterRole is the built-in read-only ClusterRole bound to the
	// workload's ServiceAccount.
	viewClusterRole = "view"

	// servicePort is the port the kubectl-ai service listens on.
	servicePort = 8080

	// apiKeySecretKey is the key under which the API key is stored in the
	// credential Secret, and the env var name injected into the container.
	apiKeySecretKey = "GEMINI_API_KEY"
)

// Config holds the configuration for deploying the kubectl-ai workload.
type Config struct {
	Namespace          string
	ServiceAccountName string
	AppName            string
	Image              string
	// SecretName, when set, names the credential Secret to create and wire
	// into the Deployment's environment. Left empty on the GKE path, which
	// relies on workload identity instead of a static credential.
	SecretName string
	APIKey     string
}

// Deployer manages the cluster-side objects for the kubectl-ai workload.
// All mutations are server-side applies with a fixed field manager, so
// repeated runs converge instead of erroring on existing objects.
type Deployer struct {
	clientset kubernetes.Interface
	config    Config
}

// NewDeployer creates a new workload Deployer with the given configuration.
func NewDeployer(clientset kubernetes.Interface, config Config) *Deployer {
	return &Deployer{
		clientset: clientset,
		config:    config,
	}
}

// BindingName returns the ClusterRoleBinding name for the given app and
// namespace, e.g. "kubectl-ai:kubectl-ai:view".
func BindingName(appName, namespace string) string {
	return fmt.Sprintf("%s:%s:%s", appName, namespace, viewClusterRole)
}

// labels returns the selector labels shared by the Deployment and Service.
func (d *Deployer) labels() map[string]string {
	return map[string]string{"app": d.config.AppName}
}
