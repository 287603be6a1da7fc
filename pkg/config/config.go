package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/linesplit/pkg/output"
)

// Load reads and validates a configuration file. Fields missing from the
// file keep their defaults; environment variables override the file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills empty fields with
// defaults.
func Validate(cfg *Config) error {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	mode, err := output.ParseStatsMode(cfg.Stats)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	cfg.Stats = string(mode)

	switch cfg.StatsFormat {
	case "":
		cfg.StatsFormat = DefaultStatsFormat
	case output.FormatText, output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("stats_format: invalid format %q (must be text, json, or yaml)", cfg.StatsFormat)
	}

	if cfg.MaxLineSize < 0 {
		return errors.New("max_line_size: must not be negative")
	}
	if cfg.MaxLineSize == 0 {
		cfg.MaxLineSize = DefaultMaxLineSize
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = DefaultLogLevel
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("log_level: invalid level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	return nil
}
