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
	corev1ac "k8s.io/client-go/applyconfigurations/core/v1"
)

// EnsureSecret applies the credential Secret carrying the API key.
// A no-op when no SecretName is configured (the GKE path, where
// credentials come from workload identity).
func (d *Deployer) EnsureSecret(ctx context.Context) error {
	if d.config.SecretName == "" {
		return nil
	}

	secret := corev1ac.Secret(d.config.SecretName, d.config.Namespace).
		WithType(corev1.SecretTypeOpaque).
		WithStringData(map[string]string{
			apiKeySecretKey: d.config.APIKey,
		})

	_, err := d.clientset.CoreV1().Secrets(d.config.Namespace).
		Apply(ctx, secret, applyOptions())
	return err
}
