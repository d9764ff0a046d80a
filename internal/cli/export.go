package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitconv/internal/export"
	"github.com/mesh-intelligence/unitconv/pkg/unitconv"
)

func newExportCmd(a *app) *cobra.Command {
	var formatName, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the conversion table to a file",
		Long: `Write a snapshot of the conversion table to a file.

Formats: ` + strings.Join(export.Formats, ", ") + `

The output defaults to catalog.<ext> in the data directory.

Example:
  unitconv export --format yaml
  unitconv export --format sqlite --output ./catalog.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, formatName, output)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", export.FormatJSON, "export format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <data-dir>/catalog.<ext>)")
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, formatName, output string) error {
	ext, err := export.Extension(formatName)
	if err != nil {
		return userError(err)
	}

	if output == "" {
		dataDir, err := a.resolveDataDir()
		if err != nil {
			return sysError(fmt.Errorf("resolve data dir: %w", err))
		}
		output = filepath.Join(dataDir, "catalog"+ext)
	}

	snap, err := export.Build(a.catalog, unitconv.Version, time.Now())
	if err != nil {
		return sysError(err)
	}
	if err := export.WriteFile(cmd.Context(), output, formatName, snap); err != nil {
		return sysError(fmt.Errorf("export: %w", err))
	}
	a.log.Info(cmd.Context(), "catalog exported", "format", formatName, "path", output, "snapshot", snap.ID)

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"format":   formatName,
			"path":     output,
			"snapshot": snap.ID,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Exported", formatName, "to", output)
	return nil
}
