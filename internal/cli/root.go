// Package cli provides the command-line interface for linesplit.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linesplit/internal/cli/commands"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 2
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		if errors.Is(err, commands.ErrUsage) && cmd != nil {
			_, _ = fmt.Fprint(rootCmd.ErrOrStderr(), "\n"+cmd.UsageString())
		}
		return ExitError
	}
	return ExitOK
}

// NewRootCommand creates the root cobra command. Running it with file
// arguments performs the split; subcommands cover the auxiliary tasks.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewSplitCommand()

	// Add subcommands
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
