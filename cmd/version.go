package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/quiz"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := quiz.Default()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "voltiz %s (question bank %s)\n", version, bank.Version())
			return nil
		},
	}
}
