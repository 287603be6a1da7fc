package config

import (
	"os"
	"strconv"

	"github.com/ccollicutt/linesplit/pkg/output"
)

// Default values for configuration.
const (
	DefaultOutputDir   = "."
	DefaultStats       = string(output.StatsNone)
	DefaultStatsFormat = output.FormatText
	DefaultMaxLineSize = 16 * 1024 * 1024
	DefaultLogLevel    = LogLevelWarn
)

// Environment variable names.
const (
	EnvOutputDir = "LINESPLIT_OUTPUT_DIR"
	EnvPrefix    = "LINESPLIT_PREFIX"
	EnvAppend    = "LINESPLIT_APPEND"
	EnvLogLevel  = "LINESPLIT_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   DefaultOutputDir,
		Stats:       DefaultStats,
		StatsFormat: DefaultStatsFormat,
		MaxLineSize: DefaultMaxLineSize,
		LogLevel:    DefaultLogLevel,
	}
}

// FromEnvironment returns the defaults with environment overrides applied.
// Used when no config file is given.
func FromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = dir
	}
	if prefix, ok := os.LookupEnv(EnvPrefix); ok {
		c.Prefix = prefix
	}
	if v := os.Getenv(EnvAppend); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Append = b
		}
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
