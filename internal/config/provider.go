// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const inputEnvPrefix = "INPUT_"

// LoadOptions defines explicit input loading sources.
type LoadOptions struct {
	// Flags, when set, binds command-line flags named like the inputs. A flag
	// that was set on the command line beats the runner variable.
	Flags *pflag.FlagSet
}

// InputSource looks action inputs up by name.
type InputSource interface {
	// Input returns the whitespace-trimmed value of the named input, or "" when unset.
	Input(name string) string
}

type viperSource struct {
	v *viper.Viper
}

// NewInputSource creates a Viper-backed source for every renamed input, under
// both its current and its legacy name.
func NewInputSource(opts LoadOptions) (InputSource, error) {
	v := viper.New()

	for _, in := range RenamedInputs() {
		for _, name := range []string{in.Name, in.Legacy} {
			if err := bindInput(v, opts.Flags, name, InputEnvName(name)); err != nil {
				return nil, err
			}
		}
	}

	return &viperSource{v: v}, nil
}

// Input implements InputSource.
func (s *viperSource) Input(name string) string {
	return strings.TrimSpace(s.v.GetString(name))
}

// InputEnvName returns the runner variable carrying an input: the name
// upper-cased with spaces replaced by underscores. Hyphens are kept.
func InputEnvName(name string) string {
	return inputEnvPrefix + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

func bindInput(v *viper.Viper, flags *pflag.FlagSet, key, envVar string) error {
	if err := v.BindEnv(key, envVar); err != nil {
		return fmt.Errorf("bind %s to %s: %w", key, envVar, err)
	}
	if flags == nil {
		return nil
	}
	if f := flags.Lookup(key); f != nil {
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind %s to --%s: %w", key, f.Name, err)
		}
	}
	return nil
}

// PackageDirFlag names the resolver's package directory flag.
const PackageDirFlag = "package-dir"

// PackageDirectory returns the directory the resolver reads the package from:
// the --package-dir flag when set, else the LAKE_PACKAGE_DIRECTORY variable
// exported by an earlier step, else ".".
func PackageDirectory(opts LoadOptions) (string, error) {
	v := viper.New()
	v.SetDefault(PackageDirFlag, DefaultLakePackageDirectory)

	if err := bindInput(v, opts.Flags, PackageDirFlag, VarLakePackageDirectory); err != nil {
		return "", err
	}

	dir := strings.TrimSpace(v.GetString(PackageDirFlag))
	if dir == "" {
		dir = DefaultLakePackageDirectory
	}
	return dir, nil
}
