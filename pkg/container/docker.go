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

package container

import (
	"context"
	"fmt"
	"sync"

	"github.com/docker/docker/client"
)

// imageInspector checks image presence in the local image store.
// Swapped for a fake in tests.
type imageInspector interface {
	imageExists(ctx context.Context, image string) (bool, error)
}

// dockerInspector queries the Docker Engine API. The SDK client is
// created lazily so runs that never need an inspection (GKE, podman)
// work without a reachable docker daemon.
type dockerInspector struct {
	once sync.Once
	cli  *client.Client
	err  error
}

func (d *dockerInspector) imageExists(ctx context.Context, image string) (bool, error) {
	d.once.Do(func() {
		d.cli, d.err = client.NewClientWithOpts(
			client.FromEnv,
			client.WithAPIVersionNegotiation(),
		)
	})
	if d.err != nil {
		return false, fmt.Errorf("failed to create docker client: %w", d.err)
	}

	_, _, err := d.cli.ImageInspectWithRaw(ctx, image)
	if err != nil {
		if client.IsErrNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect image %q: %w", image, err)
	}
	return true, nil
}
