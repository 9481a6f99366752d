package cli

import "github.com/spf13/cobra"

// NewCheckCommand creates the check command, which runs every check and
// writes one report per check.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check -i <inputfolder>",
		Short: "Run the footnote and textpart checks",
		Long: `Run the footnote and textpart checks in one pass over the corpus.

Each document is read once. The footnote and textpart reports are written
side by side, exactly as the footnotes and textparts commands write them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(opts, cmd, footnoteSuite, textpartSuite)
		},
	}

	addCheckFlags(cmd, opts)
	addModeFlag(cmd, opts)

	return cmd
}
