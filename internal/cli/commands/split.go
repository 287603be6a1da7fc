package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/linesplit/internal/logging"
	"github.com/ccollicutt/linesplit/pkg/accumulator"
	"github.com/ccollicutt/linesplit/pkg/config"
	"github.com/ccollicutt/linesplit/pkg/ingest"
	"github.com/ccollicutt/linesplit/pkg/output"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// SplitOptions holds command-line options for the split command.
type SplitOptions struct {
	OutputDir   string
	Prefix      string
	Append      bool
	ShortStats  bool
	FullStats   bool
	StatsFormat string
	ConfigPath  string
	LogLevel    string
	Verbose     bool
}

// NewSplitCommand creates the command that classifies input lines into
// integer, float and string files. It is used as the root command.
func NewSplitCommand() *cobra.Command {
	opts := &SplitOptions{}

	cmd := &cobra.Command{
		Use:   "linesplit [flags] <file>...",
		Short: "Split text files into integers, floats and strings",
		Long: `linesplit reads newline-delimited text files and sorts every non-blank line
into one of three output files:

  integers.txt  exact integers of any size ("3.0" counts as 3)
  floats.txt    decimal numbers with a fractional part
  strings.txt   everything else

Numbers are kept with full precision. Input files are processed in the order
given; a file that cannot be read is reported and skipped.

Statistics:
  -s  counts per category
  -f  counts plus min, max, sum and average (or string lengths)

Exit codes:
  0 - Run completed (warnings may have been printed)
  2 - Usage or configuration error`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: no input files given", ErrUsage)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	// Flags
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", config.DefaultOutputDir, "Directory for output files")
	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "", "Prefix for output file names")
	cmd.Flags().BoolVarP(&opts.Append, "append", "a", false, "Append to existing output files instead of overwriting")
	cmd.Flags().BoolVarP(&opts.ShortStats, "short-stats", "s", false, "Print counts per category")
	cmd.Flags().BoolVarP(&opts.FullStats, "full-stats", "f", false, "Print full statistics (overrides --short-stats)")
	cmd.Flags().StringVar(&opts.StatsFormat, "stats-format", config.DefaultStatsFormat, "Statistics format (text|json|yaml)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Diagnostics level (debug|info|warn|error)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include input details in statistics")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, opts *SplitOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	mode, err := output.ParseStatsMode(cfg.Stats)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	formatter, err := output.NewFormatter(cfg.StatsFormat, output.FormatOptions{Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// A directory problem never aborts the run.
	dir, err := output.PrepareDir(fs, cfg.OutputDir)
	if err != nil {
		logger.Warn("output directory unusable, writing to current directory", "dir", cfg.OutputDir, "err", err)
	}

	// Ingest all inputs
	paths := ingest.ExpandPaths(fs, args)
	set := accumulator.NewSet()
	ingestor := ingest.New(fs,
		ingest.WithLogger(logger),
		ingest.WithMaxLineSize(cfg.MaxLineSize),
	)
	summary, err := ingestor.Run(ctx, paths, set)
	if err != nil {
		return fmt.Errorf("processing input: %w", err)
	}

	// Write category files (failures logged but don't stop the report)
	writer := output.NewWriter(fs, dir, cfg.Prefix, output.ModeFor(cfg.Append))
	logWriteResults(logger, writer.WriteAll(set))

	if mode == output.StatsNone {
		return nil
	}

	report := output.NewReport(set, mode, reportMetadata(paths, summary))
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting statistics: %w", err)
	}

	return nil
}

// loadConfig builds the effective configuration: defaults, then the config
// file (if any), then environment, then flags set on the command line.
func loadConfig(ctx context.Context, cmd *cobra.Command, opts *SplitOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(ctx, opts.ConfigPath)
	} else {
		cfg, err = config.FromEnvironment()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading config: %v", ErrUsage, err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = opts.OutputDir
	}
	if flags.Changed("prefix") {
		cfg.Prefix = opts.Prefix
	}
	if flags.Changed("append") {
		cfg.Append = opts.Append
	}
	if flags.Changed("stats-format") {
		cfg.StatsFormat = opts.StatsFormat
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}

	// Requesting short and full from any source yields full.
	short := opts.ShortStats || cfg.Stats == string(output.StatsShort)
	full := opts.FullStats || cfg.Stats == string(output.StatsFull)
	cfg.Stats = string(output.ResolveStatsMode(short, full))

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return cfg, nil
}

func logWriteResults(logger *log.Logger, results []output.WriteResult) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			logger.Warn("could not write category file", "category", r.Category, "file", r.Path, "err", r.Err)
		case r.Skipped:
			logger.Debug("no lines for category, file left untouched", "category", r.Category, "file", r.Path)
		default:
			logger.Info("wrote category file", "category", r.Category, "file", r.Path, "lines", r.Lines)
		}
	}
}

func reportMetadata(paths []string, summary *ingest.Summary) output.Metadata {
	meta := output.Metadata{
		Inputs:        paths,
		LinesIngested: summary.LinesIngested,
		BlankLines:    summary.BlankLines,
	}
	for _, f := range summary.Failures {
		meta.FailedInputs = append(meta.FailedInputs, f.Path)
	}
	return meta
}
