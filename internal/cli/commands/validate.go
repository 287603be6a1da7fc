package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linesplit/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a linesplit configuration file without processing any input.

Checks:
  - YAML syntax
  - Stats mode and format names
  - Log level
  - Line size limit

Environment overrides (LINESPLIT_*) are applied before validation, so the
printed settings are the ones a run would use.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "(none)"
	}
	mode := "overwrite"
	if cfg.Append {
		mode = "append"
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Output directory: %s\n", cfg.OutputDir)
	fmt.Fprintf(out, "  File prefix:      %s\n", prefix)
	fmt.Fprintf(out, "  Write mode:       %s\n", mode)
	fmt.Fprintf(out, "  Stats:            %s (%s)\n", cfg.Stats, cfg.StatsFormat)
	fmt.Fprintf(out, "  Max line size:    %d bytes\n", cfg.MaxLineSize)
	fmt.Fprintf(out, "  Log level:        %s\n", cfg.LogLevel)

	return nil
}
