package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitconv/internal/export"
	"github.com/mesh-intelligence/unitconv/internal/format"
	"github.com/mesh-intelligence/unitconv/pkg/types"
	"github.com/mesh-intelligence/unitconv/pkg/unitconv"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table [category]",
		Short: "Show conversion rules",
		Long: `Show the conversion rule of every unit, or of the units of one category.

Linear units show their factor to the category's base unit. Affine units
(temperature) show scale and offset such that base = value*scale + offset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTable(cmd, args)
		},
	}
}

func (a *app) runTable(cmd *cobra.Command, args []string) error {
	snap, err := export.Build(a.catalog, unitconv.Version, time.Now())
	if err != nil {
		return sysError(err)
	}

	records := snap.Categories
	if len(args) == 1 {
		records = nil
		for _, rec := range snap.Categories {
			if rec.Name == args[0] {
				records = append(records, rec)
			}
		}
		if len(records) == 0 {
			return a.lookupError(fmt.Errorf("%w: %q", types.ErrUnknownCategory, args[0]), args[0])
		}
	}

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), records)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tUNIT\tRULE")
	for _, rec := range records {
		for _, u := range rec.Units {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.Name, u.Name, describeRule(u))
		}
	}
	if err := tw.Flush(); err != nil {
		return sysError(err)
	}
	return nil
}

func describeRule(u types.UnitRecord) string {
	switch {
	case u.Factor != nil:
		return "factor=" + format.Raw(*u.Factor)
	case u.Scale != nil && u.Offset != nil:
		return "scale=" + format.Raw(*u.Scale) + " offset=" + format.Raw(*u.Offset)
	default:
		return "-"
	}
}
