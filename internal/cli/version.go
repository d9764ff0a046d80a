package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitconv/pkg/unitconv"
)

const modulePath = "github.com/mesh-intelligence/unitconv"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the unitconv version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "unitconv v%s\nmodule: %s\n", unitconv.Version, modulePath)
			return nil
		},
	}
}
