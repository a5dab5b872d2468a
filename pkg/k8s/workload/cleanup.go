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
	"fmt"

	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Cleanup removes the workload objects created by the ensure methods:
// Service, Deployment, Secret, ClusterRoleBinding, ServiceAccount.
// The namespace itself is kept; deleting a namespace is a heavier
// operation than a deploy tool should take implicitly.
// Deletion is idempotent: objects already absent are skipped.
func (d *Deployer) Cleanup(ctx context.Context) error {
	opts := metav1.DeleteOptions{}

	if err := ignoreNotFound(d.clientset.CoreV1().Services(d.config.Namespace).
		Delete(ctx, d.config.AppName, opts)); err != nil {
		return fmt.Errorf("failed to delete Service: %w", err)
	}

	if err := ignoreNotFound(d.clientset.AppsV1().Deployments(d.config.Namespace).
		Delete(ctx, d.config.AppName, opts)); err != nil {
		return fmt.Errorf("failed to delete Deployment: %w", err)
	}

	if d.config.SecretName != "" {
		if err := ignoreNotFound(d.clientset.CoreV1().Secrets(d.config.Namespace).
			Delete(ctx, d.config.SecretName, opts)); err != nil {
			return fmt.Errorf("failed to delete Secret: %w", err)
		}
	}

	if err := ignoreNotFound(d.clientset.RbacV1().ClusterRoleBindings().
		Delete(ctx, BindingName(d.config.AppName, d.config.Namespace), opts)); err != nil {
		return fmt.Errorf("failed to delete ClusterRoleBinding: %w", err)
	}

	if err := ignoreNotFound(d.clientset.CoreV1().ServiceAccounts(d.config.Namespace).
		Delete(ctx, d.config.ServiceAccountName, opts)); err != nil {
		return fmt.Errorf("failed to delete ServiceAccount: %w", err)
	}

	return nil
}

// ignoreNotFound returns nil if the error is "not found", otherwise returns the error.
// Used to make resource deletion idempotent.
func ignoreNotFound(err error) error {
	if errors.IsNotFound(err) {
		return nil
	}
	return err
}
