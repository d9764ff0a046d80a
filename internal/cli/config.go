package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/unitconv/internal/paths"
	"github.com/mesh-intelligence/unitconv/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "UNITCONV"

	// Config keys in config.yaml.
	cfgKeyPrecision       = "precision"
	cfgKeyStyle           = "style"
	cfgKeyDefaultCategory = "default_category"
	cfgKeyListen          = "listen"
	cfgKeyLogLevel        = "log_level"
	cfgKeyLogFormat       = "log_format"
	cfgKeyDataDir         = "data_dir"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Precision       int    `yaml:"precision"`
	Style           string `yaml:"style"`
	DefaultCategory string `yaml:"default_category"`
	Listen          string `yaml:"listen"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	DataDir         string `yaml:"data_dir,omitempty"`
}

// loadConfig reads config.yaml from configDir using Viper, layered over the
// defaults and under UNITCONV_* environment variables. A missing config.yaml
// is not an error. It returns the config and the data_dir value.
func loadConfig(configDir string) (types.Config, string, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyPrecision, def.Precision)
	v.SetDefault(cfgKeyStyle, def.Style)
	v.SetDefault(cfgKeyDefaultCategory, def.DefaultCategory)
	v.SetDefault(cfgKeyListen, def.Listen)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)
	v.SetDefault(cfgKeyDataDir, "")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, "", fmt.Errorf("decode config: %w", err)
	}
	return cfg, v.GetString(cfgKeyDataDir), nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	def := types.DefaultConfig()
	cfg := configFile{
		Precision:       def.Precision,
		Style:           def.Style,
		DefaultCategory: def.DefaultCategory,
		Listen:          def.Listen,
		LogLevel:        def.LogLevel,
		LogFormat:       def.LogFormat,
		DataDir:         dataDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# unitconv configuration\n")
	return true, os.WriteFile(path, append(header, data...), 0o644)
}

// configPath returns config.yaml inside configDir.
func configPath(configDir string) string {
	return paths.ConfigFile(configDir)
}
