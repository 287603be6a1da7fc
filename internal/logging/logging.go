// Package logging builds the diagnostics logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// TimeFormat is used for timestamps when logging to a terminal.
const TimeFormat = "15:04:05"

// New creates a logger writing to w at the given level ("debug", "info",
// "warn", "error"). Unknown levels fall back to warn. Timestamps are only
// reported when w is a terminal so redirected diagnostics stay stable.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: IsTerminal(w),
		TimeFormat:      TimeFormat,
		Prefix:          "linesplit",
	})
	logger.SetStyles(styles())
	return logger
}

// ParseLevel converts a level name to a log.Level.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	s.Keys["file"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	return s
}
