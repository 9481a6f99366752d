package cli

import "github.com/spf13/cobra"

// NewTextpartsCommand creates the textparts command.
func NewTextpartsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "textparts -i <inputfolder>",
		Short: "Check textpart numbering for gaps",
		Long: `Check every document for missing textparts.

Textpart headers are lines starting with the textpart prefix followed by a
label such as F12b. For each type tag the labels must have no gaps below
the highest one. Textparts missing after the last one cannot be detected.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(opts, cmd, textpartSuite)
		},
	}

	addCheckFlags(cmd, opts)

	return cmd
}
