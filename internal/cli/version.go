package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/bistro"

// Version is the release version. Builds may override it with
// -ldflags "-X github.com/mesh-intelligence/bistro/internal/cli.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bistro version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bistro v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
