package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitconv/internal/convert"
	"github.com/mesh-intelligence/unitconv/internal/format"
)

// defaultValue is converted when no value argument is given.
const defaultValue = 1.0

// convertFlags holds the convert command's local flags.
type convertFlags struct {
	category  string
	precision int
	style     string
}

// convertOutput is the --json form of a conversion. Result is null when
// the conversion overflows; Formatted still carries "+Inf" or "-Inf".
type convertOutput struct {
	convert.Request
	Result    *float64 `json:"result"`
	Formatted string   `json:"formatted"`
}

func newConvertOutput(res convert.Result, formatted string) convertOutput {
	out := convertOutput{Request: res.Request, Formatted: formatted}
	if res.Finite() {
		v := res.Result
		out.Result = &v
	}
	return out
}

func newConvertCmd(a *app) *cobra.Command {
	var f convertFlags

	cmd := &cobra.Command{
		Use:   "convert <from> <to> [value]",
		Short: "Convert a value between two units of a category",
		Long: `Convert a value from one unit to another unit of the same category.

The value defaults to 1 and may be negative. The category defaults to
default_category from config.yaml; both units must belong to it. Flags go
before the units; everything after the first unit is an argument.

Example:
  unitconv convert Meter Centimeter 1
  unitconv convert -c Temperature Fahrenheit Celsius -40
  unitconv convert --style human -c "Digital Storage" Kilobyte Bit`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.category, "category", "c", "", "measurement category (default: config default_category)")
	cmd.Flags().IntVarP(&f.precision, "precision", "p", -1, "fraction digits (default: config precision)")
	cmd.Flags().StringVar(&f.style, "style", "", "output style: fixed, human, raw (default: config style)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string, f convertFlags) error {
	req := convert.Request{
		Category: a.cfg.DefaultCategory,
		From:     args[0],
		To:       args[1],
		Value:    defaultValue,
	}
	if f.category != "" {
		req.Category = f.category
	}
	if len(args) == 3 {
		v, err := convert.ParseValue(args[2])
		if err != nil {
			return userError(err)
		}
		req.Value = v
	}

	precision := a.cfg.Precision
	if f.precision >= 0 {
		precision = f.precision
	}
	style := a.cfg.Style
	if f.style != "" {
		style = f.style
	}
	formatter, err := format.New(style, precision)
	if err != nil {
		return userError(err)
	}

	res, err := a.converter.Do(req)
	if err != nil {
		a.log.Debug(cmd.Context(), "conversion failed", "category", req.Category, "from", req.From, "to", req.To, "error", err)
		return a.lookupError(err, req.Category)
	}
	a.log.Debug(cmd.Context(), "converted", "category", req.Category, "from", req.From, "to", req.To, "value", req.Value, "result", res.Result)

	formatted := formatter.Format(res.Result)
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), newConvertOutput(res, formatted))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Result: %s\n", formatted)
	return nil
}
