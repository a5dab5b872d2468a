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

	rbacv1 "k8s.io/api/rbac/v1"
	rbacv1ac "k8s.io/client-go/applyconfigurations/rbac/v1"
)

// EnsureAccessBinding applies the ClusterRoleBinding granting the
// workload's ServiceAccount read-only visibility into the cluster via the
// built-in "view" ClusterRole. The binding name is scoped by namespace
// (e.g. "kubectl-ai:kubectl-ai:view") so parallel installs into different
// namespaces do not collide.
func (d *Deployer) EnsureAccessBinding(ctx context.Context) error {
	crb := rbacv1ac.ClusterRoleBinding(BindingName(d.config.AppName, d.config.Namespace)).
		WithSubjects(rbacv1ac.Subject().
			WithKind(rbacv1.ServiceAccountKind).
			WithName(d.config.ServiceAccountName).
			WithNamespace(d.config.Namespace)).
		WithRoleRef(rbacv1ac.RoleRef().
			WithAPIGroup(rbacv1.GroupName).
			WithKind("ClusterRole").
			WithName(viewClusterRole))

	_, err := d.clientset.RbacV1().ClusterRoleBindings().
		Apply(ctx, crb, applyOptions())
	return err
}
