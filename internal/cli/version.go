package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aiscore/internal/perplexity"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skips the root init; no workspace or config needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "aiscore %s (commit %s, reference corpus %s)\n",
				Version, GitCommit, perplexity.CorpusVersion)
			return err
		},
	}
}
