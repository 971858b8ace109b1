// SPDX-License-Identifier: MPL-2.0

// Package config resolves the action's inputs using Viper.
//
// Inputs arrive the way the GitHub Actions runner delivers them, as INPUT_<NAME>
// environment variables, and may be overridden by same-named command-line flags.
// Three inputs were renamed from snake_case to kebab-case; the legacy spelling is
// still honored, takes priority when set, and produces a deprecation warning. The
// resolved values are returned as an explicit Inputs struct so later stages take
// their configuration as a value instead of reading ambient environment state.
package config
