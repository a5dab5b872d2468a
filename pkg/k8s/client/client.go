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
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
	"k8s.io/client-go/util/homedir"
)

// Interface is an alias for kubernetes.Interface to allow easier mocking in tests.
// This enables using fake.NewClientset() which returns kubernetes.Interface.
type Interface = kubernetes.Interface

// BuildKubeClient creates a Kubernetes client from the given kubeconfig
// file and optional context override.
//
// Parameters:
//   - kubeconfig: Path to kubeconfig file. If empty, uses automatic discovery:
//     1. KUBECONFIG environment variable
//     2. ~/.kube/config (if it exists)
//     3. In-cluster configuration (service account)
//   - context: Kubeconfig context name. If empty, the file's current-context
//     is used.
//
// Returns the clientset and the rest configuration used to create it.
func BuildKubeClient(kubeconfig, context string) (*kubernetes.Clientset, *rest.Config, error) {
	var config *rest.Config
	var err error

	kubeconfig = resolveKubeconfigPath(kubeconfig)

	// Use InClusterConfig directly when no kubeconfig is available.
	// This avoids the warning: "Neither --kubeconfig nor --master was specified"
	if kubeconfig == "" && context == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		loadingRules := &clientcmd.ClientConfigLoadingRules{ExplicitPath: kubeconfig}
		if kubeconfig == "" {
			loadingRules = clientcmd.NewDefaultClientConfigLoadingRules()
		}
		overrides := &clientcmd.ConfigOverrides{CurrentContext: context}
		config, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides).ClientConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build kube config (context %q): %w", context, err)
		}
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, config, nil
}

// CurrentContext returns the current-context of the given kubeconfig file.
// An empty path uses the default loading rules (KUBECONFIG, ~/.kube/config).
func CurrentContext(kubeconfig string) (string, error) {
	raw, err := loadRawConfig(kubeconfig)
	if err != nil {
		return "", err
	}
	if raw.CurrentContext == "" {
		return "", fmt.Errorf("kubeconfig %q has no current-context", kubeconfig)
	}
	return raw.CurrentContext, nil
}

// ListContexts returns the context names defined in the given kubeconfig
// file, sorted, along with the current-context. Used for diagnostics when
// context resolution fails.
func ListContexts(kubeconfig string) ([]string, string, error) {
	raw, err := loadRawConfig(kubeconfig)
	if err != nil {
		return nil, "", err
	}

	names := make([]string, 0, len(raw.Contexts))
	for name := range raw.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, raw.CurrentContext, nil
}

// HasContext reports whether the given kubeconfig defines the named context.
func HasContext(kubeconfig, context string) bool {
	raw, err := loadRawConfig(kubeconfig)
	if err != nil {
		return false
	}
	_, ok := raw.Contexts[context]
	return ok
}

func loadRawConfig(kubeconfig string) (*clientcmdapi.Config, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		loadingRules = &clientcmd.ClientConfigLoadingRules{ExplicitPath: kubeconfig}
	}
	raw, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{}).RawConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig %q: %w", kubeconfig, err)
	}
	return &raw, nil
}

// resolveKubeconfigPath applies the default kubeconfig discovery rules.
func resolveKubeconfigPath(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	def := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(def); err == nil {
		return def
	}
	return ""
}
