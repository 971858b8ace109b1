// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for docgen-action.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lean-docgen/docgen-action/internal/ghaction"
	"github.com/lean-docgen/docgen-action/internal/issue"
	"github.com/lean-docgen/docgen-action/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

const logPrefix = "docgen-action"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose    bool
	outputFile string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "docgen-action",
		Short: "Derive documentation build outputs and cache paths for a Lake package",
		Long: TitleStyle.Render("docgen-action") + SubtitleStyle.Render(" - documentation build helper for Lake packages") + `

docgen-action runs inside a CI job that builds API documentation for a Lean 4
package. It resolves the action's inputs (including their deprecated spellings)
and reads lakefile.toml and lake-manifest.json to publish the package name,
its default targets, the docs facets to build and the documentation
directories worth caching between runs.

` + SubtitleStyle.Render("Examples:") + `
  docgen-action deprecation          Resolve inputs and export them as job variables
  docgen-action resolve              Publish outputs for the package in $LAKE_PACKAGE_DIRECTORY
  docgen-action run --summary        Do both, then write a job summary`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.outputFile, "output-file", "", "write outputs and variables to this dotenv file instead of the runner's file commands")

	rootCmd.AddCommand(newDeprecationCommand(opts))
	rootCmd.AddCommand(newResolveCommand(opts))
	rootCmd.AddCommand(newRunCommand(opts))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the command tree and exits with the status the command chose.
// This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

// exitCodeFor maps a command error to the process status. Codes os.Exit
// cannot represent fall back to ExitFailure.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
		return exitErr.Code
	}
	return types.ExitFailure
}

// handleError prints errors that no command reported itself. An ExitError
// has already been written to stderr by fail.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// logger returns the diagnostic logger for a command run.
func (o *rootOptions) logger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: logPrefix})
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// publisher returns where outputs and variables go: a dotenv file when
// --output-file is set, the GitHub Actions runner otherwise.
func (o *rootOptions) publisher() ghaction.Publisher {
	if o.outputFile != "" {
		return &ghaction.DotenvFile{Path: o.outputFile}
	}
	return ghaction.NewRunner()
}

// formatErrorForDisplay formats an error for user display.
// In verbose mode, actionable errors include the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
