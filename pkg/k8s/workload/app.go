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
	"context"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	appsv1ac "k8s.io/client-go/applyconfigurations/apps/v1"
	corev1ac "k8s.io/client-go/applyconfigurations/core/v1"
	metav1ac "k8s.io/client-go/applyconfigurations/meta/v1"
)

// ApplyWorkload applies the ServiceAccount, Deployment, and Service for
// the kubectl-ai application. The Deployment references the exact image
// string from the run's resolved ImageReference.
func (d *Deployer) ApplyWorkload(ctx context.Context) error {
	if err := d.EnsureServiceAccount(ctx); err != nil {
		return err
	}
	if err := d.ensureDeployment(ctx); err != nil {
		return err
	}
	return d.ensureService(ctx)
}

func (d *Deployer) ensureDeployment(ctx context.Context) error {
	container := corev1ac.Container().
		WithName(d.config.AppName).
		WithImage(d.config.Image).
		WithPorts(corev1ac.ContainerPort().
			WithName("http").
			WithContainerPort(servicePort))

	// On the kind path the API key reaches the container via the
	// credential Secret. On GKE the workload identity binding supplies
	// credentials, so no env wiring happens here.
	if d.config.SecretName != "" {
		container = container.WithEnv(corev1ac.EnvVar().
			WithName(apiKeySecretKey).
			WithValueFrom(corev1ac.EnvVarSource().
				WithSecretKeyRef(corev1ac.SecretKeySelector().
					WithName(d.config.SecretName).
					WithKey(apiKeySecretKey))))
	}

	deployment := appsv1ac.Deployment(d.config.AppName, d.config.Namespace).
		WithLabels(d.labels()).
		WithSpec(appsv1ac.DeploymentSpec().
			WithReplicas(1).
			WithSelector(metav1ac.LabelSelector().
				WithMatchLabels(d.labels())).
			WithTemplate(corev1ac.PodTemplateSpec().
				WithLabels(d.labels()).
				WithSpec(corev1ac.PodSpec().
					WithServiceAccountName(d.config.ServiceAccountName).
					WithContainers(container))))

	_, err := d.clientset.AppsV1().Deployments(d.config.Namespace).
		Apply(ctx, deployment, applyOptions())
	return err
}

func (d *Deployer) ensureService(ctx context.Context) error {
	service := corev1ac.Service(d.config.AppName, d.config.Namespace).
		WithLabels(d.labels()).
		WithSpec(corev1ac.ServiceSpec().
			WithType(corev1.ServiceTypeClusterIP).
			WithSelector(d.labels()).
			WithPorts(corev1ac.ServicePort().
				WithName("http").
				WithPort(servicePort).
				WithTargetPort(intstr.FromInt32(servicePort))))

	_, err := d.clientset.CoreV1().Services(d.config.Namespace).
		Apply(ctx, service, applyOptions())
	return err
}
