package cli

import "github.com/spf13/cobra"

// NewFootnotesCommand creates the footnotes command.
func NewFootnotesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "footnotes -i <inputfolder>",
		Short: "Check that inline footnotes and definitions pair up",
		Long: `Check every document for footnotes that are never defined and
definitions that are never referenced.

Inline markers ([^key]) are read from the text before the notes marker,
definitions from the text after it. By default only the number of distinct
keys is compared; --mode keys reports each unmatched key.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(opts, cmd, footnoteSuite)
		},
	}

	addCheckFlags(cmd, opts)
	addModeFlag(cmd, opts)

	return cmd
}
