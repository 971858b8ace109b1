// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/lean-docgen/docgen-action/internal/config"
	"github.com/lean-docgen/docgen-action/internal/ghaction"
	"github.com/lean-docgen/docgen-action/internal/lake"

	"github.com/spf13/cobra"
)

const resolveFailureHeadline = "Error parsing Lake package description:"

func newResolveCommand(opts *rootOptions) *cobra.Command {
	var summary bool

	c := &cobra.Command{
		Use:   "resolve",
		Short: "Publish the package name, targets, docs facets and cache paths",
		Long: `Read lakefile.toml and lake-manifest.json and publish the step outputs
name, default_targets, docs_facets and cached_docbuild_dependencies.

The package directory is taken from --package-dir, then from the
LAKE_PACKAGE_DIRECTORY variable exported by the deprecation step, then ".".
Outputs are only published when all of them could be derived; otherwise the
command prints the problem and exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := config.PackageDirectory(config.LoadOptions{Flags: cmd.Flags()})
			if err != nil {
				return fail(cmd, cmd.ErrOrStderr(), resolveFailureHeadline, err, opts.verbose)
			}
			return resolvePackage(cmd, opts, dir, summary)
		},
	}

	c.Flags().String(config.PackageDirFlag, "", "directory containing lakefile.toml and lake-manifest.json")
	c.Flags().BoolVar(&summary, "summary", false, "write a job summary, or render it to stdout outside of a runner")
	return c
}

// resolvePackage derives every output for dir and publishes them as one batch.
func resolvePackage(cmd *cobra.Command, opts *rootOptions, dir string, summary bool) error {
	stderr := cmd.ErrOrStderr()
	logger := opts.logger(stderr)

	outputs, err := lake.NewResolver(logger).Resolve(cmd.Context(), dir)
	if err != nil {
		return fail(cmd, stderr, resolveFailureHeadline, err, opts.verbose)
	}

	if err := opts.publisher().SetOutputs(outputEntries(outputs)...); err != nil {
		return fail(cmd, stderr, "Error publishing outputs:", err, opts.verbose)
	}
	logger.Debug("published outputs", "name", outputs.Name, "cachePaths", len(outputs.CachePaths))

	if summary {
		if err := ghaction.WriteSummary(ghaction.NewRunner(), cmd.OutOrStdout(), outputs.Markdown()); err != nil {
			fmt.Fprintln(stderr, WarningStyle.Render("Warning:"), "could not write job summary:", err)
		}
	}
	return nil
}

func outputEntries(o lake.Outputs) []ghaction.Entry {
	outs := o.Entries()
	entries := make([]ghaction.Entry, len(outs))
	for i, out := range outs {
		entries[i] = ghaction.Entry{Name: out.Key, Value: out.Value}
	}
	return entries
}
