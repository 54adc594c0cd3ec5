package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Config holds the service settings.
type Config struct {
	Addr          string `mapstructure:"addr"`
	Endpoint      string `mapstructure:"endpoint"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	Extended      bool   `mapstructure:"extended"`
	Diagnostics   bool   `mapstructure:"diagnostics"`
	IncludeTables bool   `mapstructure:"include_tables"`
	MaxUploadMB   int    `mapstructure:"max_upload_mb"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("endpoint", "/api/process-word")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("extended", false)
	v.SetDefault("diagnostics", true)
	v.SetDefault("include_tables", false)
	v.SetDefault("max_upload_mb", 20)
}

// Default returns the configuration with every key at its default.
func Default() *Config {
	cfg, err := Load(viper.New())
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the configuration from v, filling unset keys with defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if c.Addr == "" {
		err = multierr.Append(err, errors.New("config addr is required"))
	}
	if !strings.HasPrefix(c.Endpoint, "/") {
		err = multierr.Append(err, fmt.Errorf("config endpoint %q must start with /", c.Endpoint))
	}
	if c.MaxUploadMB <= 0 {
		err = multierr.Append(err, errors.New("config max_upload_mb must be positive"))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("config log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("config log_format %q is not json or console", c.LogFormat))
	}
	return err
}

// MaxUploadBytes returns the request body limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
