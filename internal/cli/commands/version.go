package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the linesplit version, the commit it was built from and the Go version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version, commit := buildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "linesplit %s (commit %s, %s)\n", version, commit, runtime.Version())
		},
	}
}

// buildInfo prefers the ldflags values and falls back to the module build
// information embedded by `go install`.
func buildInfo() (version, commit string) {
	version, commit = Version, Commit

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit == "unknown" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
				break
			}
		}
	}
	return version, commit
}
