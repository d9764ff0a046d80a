package cli

import (
	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List measurement categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.catalog.Categories()
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), names)
			}
			printLines(cmd.OutOrStdout(), names)
			return nil
		},
	}
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List the units of a category",
		Long: `List the units of a category in table order.

The category defaults to default_category from config.yaml.

Example:
  unitconv units Length
  unitconv units "Digital Storage"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := a.cfg.DefaultCategory
			if len(args) == 1 {
				category = args[0]
			}
			units, err := a.catalog.Units(category)
			if err != nil {
				return a.lookupError(err, category)
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), units)
			}
			printLines(cmd.OutOrStdout(), units)
			return nil
		},
	}
}
