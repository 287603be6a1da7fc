// Package config provides configuration loading and validation for linesplit.
package config

// Config holds the run settings. It can be loaded from YAML; command-line
// flags are applied on top by the CLI.
type Config struct {
	// OutputDir is the directory for the category files.
	OutputDir string `yaml:"output_dir"`

	// Prefix is prepended to every output file name.
	Prefix string `yaml:"prefix,omitempty"`

	// Append keeps existing output content and adds to the end.
	Append bool `yaml:"append"`

	// Stats selects the report detail: none, short or full (output.StatsMode).
	Stats string `yaml:"stats"`

	// StatsFormat selects the report format: text, json or yaml (output.Format*).
	StatsFormat string `yaml:"stats_format"`

	// MaxLineSize is the longest accepted input line in bytes.
	MaxLineSize int `yaml:"max_line_size"`

	// LogLevel is the diagnostics threshold: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Log levels accepted in the log_level field.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
