package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and config.yaml",
		Long:  "Create the configuration directory and a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := configPath(a.configDir)
	written, err := writeConfigIfMissing(path, a.flags.dataDir)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintln(out, "Wrote", path)
	} else {
		fmt.Fprintln(out, "Config already exists:", path)
	}
	return nil
}
