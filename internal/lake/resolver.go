// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Resolver turns a package directory into the pipeline outputs.
type Resolver struct {
	logger *log.Logger
}

// NewResolver creates a Resolver that reports guessed module names on logger.
// A nil logger discards them.
func NewResolver(logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{logger: logger}
}

// Resolve reads the descriptor and manifest from dir and derives the outputs.
// Either every output is returned or an error is; there is no partial result.
func (r *Resolver) Resolve(ctx context.Context, dir string) (Outputs, error) {
	if err := ctx.Err(); err != nil {
		return Outputs{}, fmt.Errorf("resolve canceled: %w", err)
	}

	descriptor, err := ReadDescriptor(filepath.Join(dir, DescriptorFile))
	if err != nil {
		return Outputs{}, err
	}
	r.logger.Debug("read package descriptor", "name", descriptor.Name, "defaultTargets", descriptor.DefaultTargets)

	manifest, err := ReadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return Outputs{}, err
	}
	r.logger.Debug("read dependency manifest", "packages", len(manifest.Packages))

	paths := DeriveCachePaths(manifest, r.logger)
	return BuildOutputs(descriptor, paths)
}
