package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/idilsaglam/todolist/internal/cli.version=..."
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Printing the version needs no config, so a broken one cannot stop it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s\n", version)
		},
	}
}
