// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lean-docgen/docgen-action/internal/issue"
)

// ManifestFile is the file name of the resolved dependency manifest inside a package directory.
const ManifestFile = "lake-manifest.json"

const manifestHint = "run `lake update` and commit the generated `" + ManifestFile + "` file"

var (
	// ErrMissingPackages is returned when the manifest has no `packages` array.
	ErrMissingPackages = errors.New("missing required key `packages`")
	// ErrUnnamedPackage is returned when a manifest package record has no name.
	ErrUnnamedPackage = errors.New("package record without a `name`")
)

type (
	// Manifest is the resolved, locked dependency list written by `lake update`.
	// Version is kept raw: older manifests use an integer, newer ones a semver string.
	Manifest struct {
		Version     json.RawMessage   `json:"version,omitempty"`
		Name        string            `json:"name,omitempty"`
		PackagesDir string            `json:"packagesDir,omitempty"`
		LakeDir     string            `json:"lakeDir,omitempty"`
		Packages    []ManifestPackage `json:"packages"`
	}

	// ManifestPackage is one transitive dependency. Only Name drives the derivation;
	// the remaining fields are kept for diagnostics.
	ManifestPackage struct {
		Name         string `json:"name"`
		Type         string `json:"type,omitempty"`
		Scope        string `json:"scope,omitempty"`
		URL          string `json:"url,omitempty"`
		Dir          string `json:"dir,omitempty"`
		Rev          string `json:"rev,omitempty"`
		InputRev     string `json:"inputRev,omitempty"`
		SubDir       string `json:"subDir,omitempty"`
		ManifestFile string `json:"manifestFile,omitempty"`
		ConfigFile   string `json:"configFile,omitempty"`
		Inherited    bool   `json:"inherited,omitempty"`
	}

	manifestFile struct {
		Manifest
		Packages *[]ManifestPackage `json:"packages"`
	}
)

// ReadManifest loads and decodes the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, manifestError("Could not find `"+ManifestFile+"`", path, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, manifestError("Could not parse `"+ManifestFile+"`", path, err)
	}
	return m, nil
}

// ParseManifest decodes manifest JSON content.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw manifestFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if raw.Packages == nil {
		return nil, ErrMissingPackages
	}

	m := raw.Manifest
	m.Packages = *raw.Packages
	for i, pkg := range m.Packages {
		if pkg.Name == "" {
			return nil, fmt.Errorf("packages[%d]: %w", i, ErrUnnamedPackage)
		}
	}
	return &m, nil
}

func manifestError(summary, path string, cause error) error {
	return issue.NewErrorContext().
		WithSummary(summary).
		WithResource(path).
		WithHint(manifestHint).
		Wrap(cause).
		BuildError()
}
