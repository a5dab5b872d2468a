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

// Package image models the container image reference shared by the build
// step and the rendered workload manifest. The reference is constructed
// once per run and both consumers read the same immutable value, so the
// image that gets built is byte-identical to the image the Deployment
// pulls.
package image

import (
	"fmt"
	"strings"
	"time"

	"github.com/distribution/reference"

	apperrors "github.com/GoogleCloudPlatform/kubectl-ai-deploy/pkg/errors"
)

// DefaultName is the image repository name used for the deployed service.
const DefaultName = "kubectl-ai"

// tagTimestampLayout derives an image tag from the current time.
// Second resolution is unique enough within a deployment session.
const tagTimestampLayout = "20060102150405"

// Reference represents a fully resolved container image reference:
// registry prefix, repository name, and tag.
type Reference struct {
	// Registry is the registry prefix (e.g., "gcr.io/my-project").
	// For kind deployments this is a fixed placeholder since the image
	// is loaded directly into the cluster, never pulled.
	Registry string
	// Name is the image repository name (e.g., "kubectl-ai").
	Name string
	// Tag is the image tag (e.g., "20240101000000").
	Tag string
}

// New constructs a validated Reference from a registry prefix, name, and tag.
func New(registry, name, tag string) (Reference, error) {
	ref := Reference{
		Registry: strings.TrimSuffix(registry, "/"),
		Name:     name,
		Tag:      tag,
	}
	if err := ref.Validate(); err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// NewTimestamped constructs a validated Reference with a tag derived
// from the given time in UTC.
func NewTimestamped(registry, name string, now time.Time) (Reference, error) {
	return New(registry, name, TimestampTag(now))
}

// TimestampTag returns the image tag for the given time in UTC.
func TimestampTag(now time.Time) string {
	return now.UTC().Format(tagTimestampLayout)
}

// Validate checks that the reference parses as a normalized image reference.
func (r Reference) Validate() error {
	if r.Registry == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "image registry is required")
	}
	if r.Name == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "image name is required")
	}
	if r.Tag == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "image tag is required")
	}
	if _, err := reference.ParseNormalizedNamed(r.String()); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig,
			fmt.Sprintf("invalid image reference %q", r.String()), err)
	}
	return nil
}

// String returns the full image reference: registry/name:tag.
// This exact string feeds both the build invocation and the Deployment
// container spec.
func (r Reference) String() string {
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Name, r.Tag)
}
