// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/lean-docgen/docgen-action/internal/config"
	"github.com/lean-docgen/docgen-action/internal/ghaction"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newDeprecationCommand(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "deprecation",
		Short: "Resolve renamed inputs and export them as job variables",
		Long: `Resolve the renamed action inputs and export them for later steps.

Each input is read from its runner variable (INPUT_<NAME>) or from the flag of
the same name. When the deprecated snake_case spelling is set it wins over the
new kebab-case one and a deprecation warning is printed. The resolved values
are exported as LAKE_PACKAGE_DIRECTORY, API_DOCS and BUILD_ARGS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := opts.logger(cmd.ErrOrStderr())

			inputs, err := resolveInputs(cmd, logger)
			if err != nil {
				return fail(cmd, cmd.ErrOrStderr(), "Error reading inputs:", err, opts.verbose)
			}
			if err := exportInputs(opts.publisher(), inputs); err != nil {
				return fail(cmd, cmd.ErrOrStderr(), "Error exporting variables:", err, opts.verbose)
			}
			return nil
		},
	}

	addInputFlags(c)
	return c
}

// addInputFlags registers a flag for every renamed input under both names.
// The legacy spellings are hidden from help output.
func addInputFlags(c *cobra.Command) {
	for _, in := range config.RenamedInputs() {
		c.Flags().String(in.Name, "", fmt.Sprintf("overrides the %s input (default %q)", in.Name, in.Default))
		c.Flags().String(in.Legacy, "", "deprecated spelling of --"+in.Name)
		_ = c.Flags().MarkHidden(in.Legacy) // the flag was registered on the line above
	}
}

func resolveInputs(cmd *cobra.Command, logger *log.Logger) (config.Inputs, error) {
	src, err := config.NewInputSource(config.LoadOptions{Flags: cmd.Flags()})
	if err != nil {
		return config.Inputs{}, err
	}
	return config.Resolve(src, logger), nil
}

func exportInputs(p ghaction.Publisher, inputs config.Inputs) error {
	vars := inputs.Variables()
	entries := make([]ghaction.Entry, len(vars))
	for i, v := range vars {
		entries[i] = ghaction.Entry{Name: v.Name, Value: v.Value}
	}
	return p.ExportVariables(entries...)
}
