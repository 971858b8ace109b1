// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var summary bool

	c := &cobra.Command{
		Use:   "run",
		Short: "Resolve inputs, export them, then publish the package outputs",
		Long: `Run the deprecation and resolve steps in one process.

The resolved inputs are handed to the resolver directly: the package is read
from the resolved lake-package-directory input rather than from a variable
exported by an earlier step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stderr := cmd.ErrOrStderr()

			inputs, err := resolveInputs(cmd, opts.logger(stderr))
			if err != nil {
				return fail(cmd, stderr, "Error reading inputs:", err, opts.verbose)
			}
			if err := exportInputs(opts.publisher(), inputs); err != nil {
				return fail(cmd, stderr, "Error exporting variables:", err, opts.verbose)
			}

			return resolvePackage(cmd, opts, inputs.LakePackageDirectory, summary)
		},
	}

	addInputFlags(c)
	c.Flags().BoolVar(&summary, "summary", false, "write a job summary, or render it to stdout outside of a runner")
	return c
}
