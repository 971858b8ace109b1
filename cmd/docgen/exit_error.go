// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/lean-docgen/docgen-action/pkg/types"

	"github.com/spf13/cobra"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + e.Code.String()
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// fail writes the diagnostic for err to stderr and returns the ExitError that
// terminates the invocation. Cobra's own error and usage printing is silenced
// so the diagnostic appears exactly once.
func fail(cmd *cobra.Command, stderr io.Writer, headline string, err error, verbose bool) error {
	fmt.Fprintln(stderr, ErrorStyle.Render(headline), formatErrorForDisplay(err, verbose))
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: types.ExitFailure, Err: err}
}
