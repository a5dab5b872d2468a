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

package deploy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"k8s.io/client-go/kubernetes"

	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/container"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/defaults"
	apperrors "github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/errors"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/gcloud"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/image"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/k8s/client"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/k8s/workload"
	"github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/kindcluster"
)

// tokenUser is the username registries accept for OAuth2 token logins.
const tokenUser = "oauth2accesstoken"

// gcloudAPI is the subset of the gcloud client the orchestrator uses.
type gcloudAPI interface {
	ResolveProject(ctx context.Context) (string, error)
	ListClusters(ctx context.Context, project string) ([]gcloud.Cluster, error)
	ConfigureDockerAuth(ctx context.Context, registryHost string) error
	AccessToken(ctx context.Context) (string, error)
}

// kindAPI is the subset of the kind client the orchestrator uses.
type kindAPI interface {
	Clusters(ctx context.Context) ([]string, error)
	LoadImage(ctx context.Context, image, cluster string) error
}

// containerAPI is the subset of the container client the orchestrator uses.
type containerAPI interface {
	Tool() container.Tool
	Build(ctx context.Context, image, dir string) error
	Push(ctx context.Context, image string) error
	Login(ctx context.Context, registryHost, username, token string) error
	ImageExists(ctx context.Context, image string) (bool, error)
}

// Orchestrator performs an idempotent deploy as a linear step sequence:
// resolve context, resolve registry and auth, build and publish the
// image, then ensure the cluster-side objects. Each step either succeeds
// or the whole run aborts; re-running after a failure is the recovery
// mechanism, since every cluster mutation is a server-side apply.
type Orchestrator struct {
	config Config

	gcloud gcloudAPI
	kind   kindAPI
	tool   containerAPI

	newClientset   func(kubeconfig, context string) (kubernetes.Interface, error)
	currentContext func(kubeconfig string) (string, error)

	// diag receives operator-facing diagnostics (cluster listings)
	// emitted before fatal resolution failures.
	diag io.Writer
}

// NewOrchestrator creates an Orchestrator wired to the real external
// collaborators: the gcloud and kind CLIs, the selected container tool,
// and kubeconfig-based clientset construction.
func NewOrchestrator(config Config) (*Orchestrator, error) {
	toolClient, err := container.NewClient(config.ContainerTool)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "invalid container tool", err)
	}

	return &Orchestrator{
		config: config,
		gcloud: gcloud.NewClient(),
		kind:   kindcluster.NewClient(),
		tool:   toolClient,
		newClientset: func(kubeconfig, context string) (kubernetes.Interface, error) {
			clientset, _, err := client.BuildKubeClient(kubeconfig, context)
			return clientset, err
		},
		currentContext: client.CurrentContext,
		diag:           os.Stderr,
	}, nil
}

// Run executes the full deployment and returns the run summary.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	slog.Info("starting deployment",
		"target", o.config.Target,
		"namespace", o.config.Namespace,
		"session", o.config.SessionID)

	kubeContext, err := o.ResolveContext(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("resolved cluster context", "context", kubeContext)

	registry, err := o.ResolveRegistry(ctx)
	if err != nil {
		return nil, err
	}

	ref, err := image.New(registry, image.DefaultName, o.config.Tag)
	if err != nil {
		return nil, err
	}
	slog.Info("resolved image reference", "image", ref.String())

	if err := o.BuildAndPublish(ctx, ref, kubeContext); err != nil {
		return nil, err
	}

	if err := o.applyClusterObjects(ctx, ref, kubeContext); err != nil {
		return nil, err
	}

	summary := o.Report(ref, kubeContext)
	slog.Info("deployment complete", "image", summary.Image, "namespace", summary.Namespace)
	return summary, nil
}

// ResolveContext determines the kube context to target.
//
// GKE: an explicit context wins; otherwise an explicit kubeconfig's
// current-context is used; otherwise the available clusters are listed
// as a diagnostic and the run fails. kind: an explicit context wins;
// otherwise the default-named local cluster, falling back to the first
// available one; no clusters is a hard failure. Resolution never guesses
// beyond these rules.
func (o *Orchestrator) ResolveContext(ctx context.Context) (string, error) {
	if o.config.Context != "" {
		return o.config.Context, nil
	}

	switch o.config.Target {
	case TargetGKE:
		return o.resolveGKEContext(ctx)
	case TargetKind:
		return o.resolveKindContext(ctx)
	default:
		return "", apperrors.Newf(apperrors.ErrCodeInvalidConfig, "unsupported target %q", o.config.Target)
	}
}

func (o *Orchestrator) resolveGKEContext(ctx context.Context) (string, error) {
	if o.config.Kubeconfig != "" {
		current, err := o.currentContext(o.config.Kubeconfig)
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeMissingContext,
				fmt.Sprintf("cannot determine current context from kubeconfig %q", o.config.Kubeconfig), err)
		}
		return current, nil
	}

	// Diagnostic listing before the fatal failure, so the operator can
	// see what to point the tool at.
	listCtx, cancel := context.WithTimeout(ctx, defaults.ClusterQueryTimeout)
	defer cancel()

	clusters, err := o.gcloud.ListClusters(listCtx, o.config.Project)
	if err != nil {
		slog.Warn("failed to list GKE clusters for diagnostics", "error", err)
	} else if len(clusters) == 0 {
		fmt.Fprintln(o.diag, "No GKE clusters found in the project.")
	} else {
		fmt.Fprintln(o.diag, "Available GKE clusters:")
		for _, cluster := range clusters {
			fmt.Fprintf(o.diag, "  %s\n", cluster)
		}
		fmt.Fprintln(o.diag, "Run 'gcloud container clusters get-credentials NAME --location LOCATION' to create a context.")
	}

	return "", apperrors.New(apperrors.ErrCodeMissingContext,
		"no kube context configured for GKE; set --context or --kubeconfig")
}

func (o *Orchestrator) resolveKindContext(ctx context.Context) (string, error) {
	listCtx, cancel := context.WithTimeout(ctx, defaults.ClusterQueryTimeout)
	defer cancel()

	clusters, err := o.kind.Clusters(listCtx)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeNoClusterFound, "cannot enumerate kind clusters", err)
	}

	for _, cluster := range clusters {
		if cluster == kindcluster.DefaultCluster {
			return kindcluster.ContextName(cluster), nil
		}
	}
	if len(clusters) > 0 {
		// Deterministic: first cluster in enumeration order.
		return kindcluster.ContextName(clusters[0]), nil
	}

	fmt.Fprintln(o.diag, "No kind clusters found.")
	return "", apperrors.New(apperrors.ErrCodeNoClusterFound,
		"no kind cluster available; create one with 'kind create cluster'")
}

// ResolveRegistry determines the image registry prefix and, for GKE,
// configures registry authentication before any push is attempted.
func (o *Orchestrator) ResolveRegistry(ctx context.Context) (string, error) {
	if o.config.Target == TargetKind {
		// Images are loaded directly into the cluster's image store,
		// never pulled, so the registry is a fixed placeholder.
		return kindRegistry, nil
	}

	project := o.config.Project
	if project == "" {
		resolveCtx, cancel := context.WithTimeout(ctx, defaults.ProjectResolveTimeout)
		defer cancel()

		var err error
		project, err = o.gcloud.ResolveProject(resolveCtx)
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInvalidConfig,
				"no project configured; set --project or configure gcloud", err)
		}
	}

	registry := o.config.Registry
	if registry == "" {
		registry = defaultRegistry(project)
	}

	if err := o.configureRegistryAuth(ctx, registryHost(registry)); err != nil {
		return "", err
	}

	return registry, nil
}

// configureRegistryAuth sets up push credentials for the registry host.
// docker uses gcloud's credential helpers; podman cannot, so it logs in
// with a freshly obtained access token instead.
func (o *Orchestrator) configureRegistryAuth(ctx context.Context, host string) error {
	authCtx, cancel := context.WithTimeout(ctx, defaults.RegistryAuthTimeout)
	defer cancel()

	if o.tool.Tool() == container.ToolPodman {
		token, err := o.gcloud.AccessToken(authCtx)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeBuildFailure,
				fmt.Sprintf("failed to obtain registry token for %q", host), err)
		}
		if err := o.tool.Login(authCtx, host, tokenUser, token); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeBuildFailure,
				fmt.Sprintf("failed to log into registry %q", host), err)
		}
		return nil
	}

	if err := o.gcloud.ConfigureDockerAuth(authCtx, host); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeBuildFailure,
			fmt.Sprintf("failed to configure docker auth for %q", host), err)
	}
	return nil
}

// BuildAndPublish builds the image and makes it available to the target
// cluster: pushed to the registry for GKE, loaded into the cluster's
// image store for kind. Failure aborts the run; no partial deploy is
// attempted.
func (o *Orchestrator) BuildAndPublish(ctx context.Context, ref image.Reference, kubeContext string) error {
	buildCtx, cancelBuild := context.WithTimeout(ctx, defaults.ImageBuildTimeout)
	defer cancelBuild()

	if err := o.tool.Build(buildCtx, ref.String(), o.config.BuildContext); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeBuildFailure, "image build failed", err)
	}

	if o.config.Target == TargetGKE {
		pushCtx, cancelPush := context.WithTimeout(ctx, defaults.ImagePushTimeout)
		defer cancelPush()

		if err := o.tool.Push(pushCtx, ref.String()); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeBuildFailure, "image push failed", err)
		}
		return nil
	}

	exists, err := o.tool.ImageExists(ctx, ref.String())
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeBuildFailure, "failed to verify built image", err)
	}
	if !exists {
		return apperrors.Newf(apperrors.ErrCodeBuildFailure,
			"image %q not found in local image store after build", ref.String())
	}

	cluster, ok := kindcluster.ClusterFromContext(kubeContext)
	if !ok {
		// Explicit non-kind-prefixed context; the default cluster is
		// the only remaining place the image can go.
		cluster = kindcluster.DefaultCluster
	}

	loadCtx, cancelLoad := context.WithTimeout(ctx, defaults.ImageLoadTimeout)
	defer cancelLoad()

	if err := o.kind.LoadImage(loadCtx, ref.String(), cluster); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeBuildFailure, "image load into kind cluster failed", err)
	}
	return nil
}

// applyClusterObjects ensures the namespace, access binding, optional
// credential secret, and application workload, in dependency order.
func (o *Orchestrator) applyClusterObjects(ctx context.Context, ref image.Reference, kubeContext string) error {
	clientset, err := o.newClientset(o.config.Kubeconfig, kubeContext)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeApplyFailure,
			fmt.Sprintf("failed to connect to cluster context %q", kubeContext), err)
	}

	cfg := workload.Config{
		Namespace:          o.config.Namespace,
		ServiceAccountName: o.config.ServiceAccountName,
		AppName:            image.DefaultName,
		Image:              ref.String(),
	}
	if o.config.Target == TargetKind {
		cfg.SecretName = SecretName
		cfg.APIKey = o.config.APIKey
	}
	deployer := workload.NewDeployer(clientset, cfg)

	if err := o.applyStep(ctx, "Namespace", deployer.EnsureNamespace); err != nil {
		return err
	}
	if err := o.applyStep(ctx, "ClusterRoleBinding", deployer.EnsureAccessBinding); err != nil {
		return err
	}
	if o.config.Target == TargetKind {
		if err := o.applyStep(ctx, "Secret", deployer.EnsureSecret); err != nil {
			return err
		}
	} else {
		slog.Info("skipping credential secret; workload identity supplies credentials on GKE")
	}
	return o.applyStep(ctx, "workload", deployer.ApplyWorkload)
}

func (o *Orchestrator) applyStep(ctx context.Context, object string, step func(context.Context) error) error {
	stepCtx, cancel := context.WithTimeout(ctx, defaults.K8sApplyTimeout)
	defer cancel()

	if err := step(stepCtx); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeApplyFailure,
			fmt.Sprintf("failed to apply %s", object), err)
	}
	slog.Debug("applied object", "object", object, "namespace", o.config.Namespace)
	return nil
}

// Report builds the run summary: the resolved image, namespace, context,
// and reachability instructions. Purely informational; no side effects.
func (o *Orchestrator) Report(ref image.Reference, kubeContext string) *Summary {
	return &Summary{
		Target:    string(o.config.Target),
		Image:     ref.String(),
		Namespace: o.config.Namespace,
		Context:   kubeContext,
		SessionID: o.config.SessionID,
		PortForward: fmt.Sprintf("kubectl --context %s -n %s port-forward service/%s 8080:8080",
			kubeContext, o.config.Namespace, image.DefaultName),
	}
}
