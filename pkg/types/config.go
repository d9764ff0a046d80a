package types

import "errors"

// Config holds the user-facing settings loaded from config.yaml.
type Config struct {
	Precision       int    `json:"precision" yaml:"precision" mapstructure:"precision"`
	Style           string `json:"style" yaml:"style" mapstructure:"style"`
	DefaultCategory string `json:"default_category" yaml:"default_category" mapstructure:"default_category"`
	Listen          string `json:"listen" yaml:"listen" mapstructure:"listen"`
	LogLevel        string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat       string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// Output styles.
const (
	StyleFixed = "fixed"
	StyleHuman = "human"
	StyleRaw   = "raw"
)

// Defaults written by init and used when config.yaml omits a key.
const (
	DefaultPrecision = 4
	DefaultStyle     = StyleFixed
	DefaultCategory  = "Length"
	DefaultListen    = "127.0.0.1:8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// MaxPrecision bounds the number of fractional digits printed.
	MaxPrecision = 17
)

// Config validation errors.
var (
	ErrInvalidPrecision = errors.New("precision out of range")
	ErrInvalidStyle     = errors.New("unknown output style")
	ErrInvalidLogLevel  = errors.New("unknown log level")
	ErrInvalidLogFormat = errors.New("unknown log format")
)

var knownStyles = map[string]bool{
	StyleFixed: true,
	StyleHuman: true,
	StyleRaw:   true,
}

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var knownLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Precision:       DefaultPrecision,
		Style:           DefaultStyle,
		DefaultCategory: DefaultCategory,
		Listen:          DefaultListen,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. DefaultCategory is checked against a catalog
// by the caller.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return ErrInvalidPrecision
	}
	if !knownStyles[c.Style] {
		return ErrInvalidStyle
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}
	if !knownLogFormats[c.LogFormat] {
		return ErrInvalidLogFormat
	}
	return nil
}
