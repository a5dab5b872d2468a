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

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	corev1ac "k8s.io/client-go/applyconfigurations/core/v1"
)

// EnsureNamespace applies the target Namespace. Repeated runs converge
// rather than error on "already exists".
func (d *Deployer) EnsureNamespace(ctx context.Context) error {
	ns := corev1ac.Namespace(d.config.Namespace)

	_, err := d.clientset.CoreV1().Namespaces().
		Apply(ctx, ns, applyOptions())
	return err
}

// EnsureServiceAccount applies the workload's ServiceAccount in the
// target namespace.
func (d *Deployer) EnsureServiceAccount(ctx context.Context) error {
	sa := corev1ac.ServiceAccount(d.config.ServiceAccountName, d.config.Namespace)

	_, err := d.clientset.CoreV1().ServiceAccounts(d.config.Namespace).
		Apply(ctx, sa, applyOptions())
	return err
}

// applyOptions returns the server-side apply options shared by all
// ensure methods. Force takes ownership of fields previously managed by
// other appliers (kubectl, prior tool versions).
func applyOptions() metav1.ApplyOptions {
	return metav1.ApplyOptions{
		FieldManager: fieldManager,
		Force:        true,
	}
}
