// Package cli implements the unitconv command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitconv/internal/catalog"
	"github.com/mesh-intelligence/unitconv/internal/convert"
	"github.com/mesh-intelligence/unitconv/internal/logging"
	"github.com/mesh-intelligence/unitconv/internal/paths"
	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by subcommands once the root PersistentPreRunE
// has loaded configuration.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	cfgData   string // data_dir from config.yaml
	catalog   types.Catalog
	converter *convert.Converter
	log       logging.Logger
}

// NewRootCmd creates the top-level "unitconv" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:     types.DefaultConfig(),
		catalog: catalog.Default(),
		log:     logging.Discard(),
	}
	a.converter = convert.New(a.catalog)

	root := &cobra.Command{
		Use:   "unitconv",
		Short: "Convert values between measurement units",
		Long: "unitconv converts values between units of one measurement category\n" +
			"(length, mass, temperature, ...) using a built-in conversion table.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "directory for exports (default: platform data dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCategoriesCmd(a))
	root.AddCommand(newUnitsCmd(a))
	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newTableCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. The version command needs none of it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, dataDir, err := loadConfig(configDir)
	if err != nil {
		return userError(err)
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("invalid config: %w", err))
	}
	if _, err := a.catalog.Units(cfg.DefaultCategory); err != nil {
		return userError(fmt.Errorf("invalid config default_category: %w", err))
	}
	a.cfg = cfg
	a.cfgData = dataDir

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return userError(err)
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	a.log = logging.New(logCfg).WithComponent("cli")
	a.log.Debug(cmd.Context(), "config loaded", "config_dir", configDir)
	return nil
}

// resolveDataDir returns the export directory from flag, config, env, or default.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfgData)
}

// exitError carries the process exit code for an error returned by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by Execute to a process exit code.
// Errors without a code are cobra usage errors and count as user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// run executes root and reports a failure on stderr the way the converter
// page does: "Error: <message>".
func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	return exitCode(err)
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}
