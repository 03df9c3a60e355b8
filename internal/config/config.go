package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Logger     LoggerConfig
	Output     OutputConfig
	Pagination PaginationConfig
	Metrics    MetricsConfig
}

type LoggerConfig struct {
	Level  string
	Format string
}

type OutputConfig struct {
	Format string
}

type PaginationConfig struct {
	DefaultLimit int32
	MaxLimit     int32
}

type MetricsConfig struct {
	Textfile string
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"config":           "CONFIG_FILE",
	"log-level":        "LOGGER_LEVEL",
	"log-format":       "LOGGER_FORMAT",
	"output":           "OUTPUT_FORMAT",
	"metrics-textfile": "METRICS_TEXTFILE",
}

// RegisterFlags adds the global flags read by Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	fs.StringP("output", "o", "json", "output format (json, yaml)")
	fs.String("metrics-textfile", "", "write Prometheus metrics to this file on exit")
}

// Load resolves configuration from flags, then environment, then the optional config
// file, then defaults. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("CONFIG_FILE", "")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")
	v.SetDefault("OUTPUT_FORMAT", "json")
	v.SetDefault("PAGINATION_DEFAULT_LIMIT", 20)
	v.SetDefault("PAGINATION_MAX_LIMIT", 100)
	v.SetDefault("METRICS_TEXTFILE", "")

	// Env
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: strings.ToLower(v.GetString("LOGGER_FORMAT")),
		},
		Output: OutputConfig{
			Format: strings.ToLower(v.GetString("OUTPUT_FORMAT")),
		},
		Pagination: PaginationConfig{
			DefaultLimit: v.GetInt32("PAGINATION_DEFAULT_LIMIT"),
			MaxLimit:     v.GetInt32("PAGINATION_MAX_LIMIT"),
		},
		Metrics: MetricsConfig{
			Textfile: v.GetString("METRICS_TEXTFILE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	if c.Pagination.DefaultLimit <= 0 {
		return fmt.Errorf("PAGINATION_DEFAULT_LIMIT must be positive, got %d", c.Pagination.DefaultLimit)
	}
	if c.Pagination.MaxLimit < 0 {
		return fmt.Errorf("PAGINATION_MAX_LIMIT must not be negative, got %d", c.Pagination.MaxLimit)
	}
	return nil
}
