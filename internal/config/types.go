// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"mvdan.cc/sh/v3/shell"
)

// Variables exported for later steps of the same job.
const (
	VarLakePackageDirectory = "LAKE_PACKAGE_DIRECTORY"
	VarAPIDocs              = "API_DOCS"
	VarBuildArgs            = "BUILD_ARGS"
)

// Defaults applied when neither spelling of an input is set.
const (
	DefaultLakePackageDirectory = "."
	DefaultAPIDocs              = "true"
	DefaultBuildArgs            = "--log-level=warning"
)

// ErrInvalidBoolInput is returned when a boolean input is not one of the accepted spellings.
var ErrInvalidBoolInput = errors.New("invalid boolean input")

type (
	// RenamedInput describes an input whose name changed.
	RenamedInput struct {
		// Name is the current kebab-case input name.
		Name string
		// Legacy is the deprecated snake_case name.
		Legacy string
		// Variable is the job variable the resolved value is exported as.
		Variable string
		// Default applies when neither name is set.
		Default string

		field func(*Inputs) *string
	}

	// Inputs holds the resolved values of the renamed inputs.
	Inputs struct {
		// LakePackageDirectory is the directory holding lakefile.toml and lake-manifest.json.
		LakePackageDirectory string
		// APIDocs toggles API documentation generation ("true" or "false").
		APIDocs string
		// BuildArgs is passed to the documentation build, shell-quoted.
		BuildArgs string
	}

	// Variable is one exported name/value pair.
	Variable struct {
		Name  string
		Value string
	}
)

// RenamedInputs returns the renamed inputs in export order.
func RenamedInputs() []RenamedInput {
	return []RenamedInput{
		{
			Name:     "lake-package-directory",
			Legacy:   "lake_package_directory",
			Variable: VarLakePackageDirectory,
			Default:  DefaultLakePackageDirectory,
			field:    func(in *Inputs) *string { return &in.LakePackageDirectory },
		},
		{
			Name:     "api-docs",
			Legacy:   "api_docs",
			Variable: VarAPIDocs,
			Default:  DefaultAPIDocs,
			field:    func(in *Inputs) *string { return &in.APIDocs },
		},
		{
			Name:     "build-args",
			Legacy:   "build_args",
			Variable: VarBuildArgs,
			Default:  DefaultBuildArgs,
			field:    func(in *Inputs) *string { return &in.BuildArgs },
		},
	}
}

// DefaultInputs returns the inputs as resolved when nothing is set.
func DefaultInputs() Inputs {
	return Inputs{
		LakePackageDirectory: DefaultLakePackageDirectory,
		APIDocs:              DefaultAPIDocs,
		BuildArgs:            DefaultBuildArgs,
	}
}

// Variables returns the job variables to export, in RenamedInputs order.
func (in Inputs) Variables() []Variable {
	renamed := RenamedInputs()
	vars := make([]Variable, len(renamed))
	for i, r := range renamed {
		vars[i] = Variable{Name: r.Variable, Value: *r.field(&in)}
	}
	return vars
}

// APIDocsEnabled parses APIDocs with the runner's boolean input rules:
// true, True, TRUE, false, False and FALSE are accepted.
func (in Inputs) APIDocsEnabled() (bool, error) {
	switch in.APIDocs {
	case "true", "True", "TRUE":
		return true, nil
	case "false", "False", "FALSE":
		return false, nil
	default:
		return false, fmt.Errorf("%w: api-docs = %q", ErrInvalidBoolInput, in.APIDocs)
	}
}

// BuildArgv splits BuildArgs into arguments with POSIX shell quoting rules.
func (in Inputs) BuildArgv() ([]string, error) {
	argv, err := shell.Fields(in.BuildArgs, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("split build-args %q: %w", in.BuildArgs, err)
	}
	return argv, nil
}
