// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/lean-docgen/docgen-action/internal/issue"

	"github.com/pelletier/go-toml/v2"
)

// DescriptorFile is the file name of the package descriptor inside a package directory.
const DescriptorFile = "lakefile.toml"

const descriptorHint = "make sure the `lake_package_directory` input is set to a directory containing a lakefile"

var (
	// ErrMissingName is returned when the descriptor has no `name` key.
	ErrMissingName = errors.New("missing required key `name`")
	// ErrMissingDefaultTargets is returned when the descriptor has no `defaultTargets` key.
	ErrMissingDefaultTargets = errors.New("missing required key `defaultTargets`")
)

type (
	// Descriptor is the part of a package's lakefile the pipeline cares about.
	Descriptor struct {
		// Name is the package name.
		Name string
		// DefaultTargets lists the targets `lake build` builds by default, in declaration order.
		DefaultTargets []string
	}

	// descriptorFile mirrors the TOML document. Pointers distinguish absent keys
	// from empty values.
	descriptorFile struct {
		Name           *string   `toml:"name"`
		DefaultTargets *[]string `toml:"defaultTargets"`
	}
)

// ReadDescriptor loads and decodes the lakefile at path.
func ReadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, descriptorError("Could not find `"+DescriptorFile+"`", path, err)
	}

	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, descriptorError("Could not parse `"+DescriptorFile+"`", path, err)
	}
	return d, nil
}

// ParseDescriptor decodes lakefile TOML content.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var raw descriptorFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}

	if raw.Name == nil {
		return nil, ErrMissingName
	}
	if raw.DefaultTargets == nil {
		return nil, ErrMissingDefaultTargets
	}

	targets := slices.Clone(*raw.DefaultTargets)
	if targets == nil {
		targets = []string{}
	}
	return &Descriptor{
		Name:           *raw.Name,
		DefaultTargets: targets,
	}, nil
}

func descriptorError(summary, path string, cause error) error {
	return issue.NewErrorContext().
		WithSummary(summary).
		WithResource(path).
		WithHint(descriptorHint).
		Wrap(cause).
		BuildError()
}
