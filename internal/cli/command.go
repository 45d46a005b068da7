package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/aoc2022/internal/days"
	"github.com/idelchi/aoc2022/internal/nospace"
)

// FilesEnv names the environment variable that overrides the default files directory.
const FilesEnv = "AOC_FILES"

// DefaultFiles is the directory holding one subdirectory of input per puzzle.
const DefaultFiles = "files"

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the parsed command-line flags.
type Options struct {
	// Day is the puzzle day to run.
	Day int
	// Files is the directory holding the puzzle inputs.
	Files string
	// Output represents output format (table or json).
	Output string
	// SmallDir, Disk and Free are the filesystem puzzle limits as human-readable sizes.
	SmallDir string
	Disk     string
	Free     string
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root command and its subcommands.
func (c CLI) Command() *cobra.Command {
	var options Options

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code 2022 puzzles",
		Long: heredoc.Doc(`
			aoc solves Advent of Code 2022 puzzles and prints both answers.

			Each puzzle reads its input from <files>/<module>/input, where <module>
			is the name shown by 'aoc list'. The files directory defaults to
			./files and can be set with --files or the AOC_FILES environment
			variable (also read from a .env file).
		`),
		Example: heredoc.Doc(`
			aoc --day 7
			aoc --day 7 --small-dir 100kB --disk 70MB --free 30MB
			aoc --day 5 --output json
			aoc list
			aoc new treetop_tree_house > internal/treetop/treetop.go
		`),
		Version:       c.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, &options)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			limits, err := parseLimits(options)
			if err != nil {
				return err
			}

			return solve(cmd.Context(), cmd.OutOrStdout(), options, days.Options{Limits: limits})
		},
	}

	flags := root.Flags()
	flags.IntVarP(&options.Day, "day", "d", 0, "Puzzle day to solve")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	limitFlags(flags, &options)
	flags.SortFlags = false

	_ = root.MarkFlagRequired("day")

	persistent := root.PersistentFlags()
	persistent.StringVarP(&options.Files, "files", "f", DefaultFiles, "Directory holding the puzzle inputs")
	persistent.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	root.AddCommand(listCommand(&options), newCommand())

	return root
}

// limitFlags registers the filesystem puzzle limits.
func limitFlags(flags *pflag.FlagSet, options *Options) {
	defaults := nospace.DefaultLimits

	flags.StringVar(&options.SmallDir, "small-dir", humanize.Bytes(uint64(defaults.SmallDir)), //nolint:gosec // Constant
		"Day 7: directories smaller than this are summed (e.g., 100kB)")
	flags.StringVar(&options.Disk, "disk", humanize.Bytes(uint64(defaults.Capacity)), //nolint:gosec // Constant
		"Day 7: total disk size (e.g., 70MB)")
	flags.StringVar(&options.Free, "free", humanize.Bytes(uint64(defaults.FreeNeeded)), //nolint:gosec // Constant
		"Day 7: free space required by the update (e.g., 30MB)")
}

// setup configures logging and resolves the files directory before any command runs.
func setup(cmd *cobra.Command, options *Options) error {
	logger := newLogger(os.Stderr, options.Debug)
	cmd.SetContext(logger.WithContext(cmd.Context()))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("loading .env")
	}

	// Flag beats environment beats default
	if !cmd.Flags().Lookup("files").Changed {
		if env := os.Getenv(FilesEnv); env != "" {
			options.Files = env
		}
	}

	logger.Debug().Str("files", options.Files).Msg("resolved files directory")

	if cmd.Flags().Lookup("output") != nil {
		allowedOutputs := []string{"table", "json"}
		if !slices.Contains(allowedOutputs, options.Output) {
			return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
		}
	}

	return nil
}

// parseLimits converts the human-readable limit flags into bytes.
func parseLimits(options Options) (nospace.Limits, error) {
	var limits nospace.Limits

	for _, l := range []struct {
		name  string
		value string
		dst   *int64
	}{
		{"small-dir", options.SmallDir, &limits.SmallDir},
		{"disk", options.Disk, &limits.Capacity},
		{"free", options.Free, &limits.FreeNeeded},
	} {
		size, err := humanize.ParseBytes(l.value)
		if err != nil {
			return nospace.Limits{}, fmt.Errorf("invalid %s: %w", l.name, err)
		}

		*l.dst = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return limits, nil
}

func listCommand(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days and their inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return list(cmd.Context(), cmd.OutOrStdout(), options.Files)
		},
	}
}

func newCommand() *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "new MODULE",
		Short: "Print a solver skeleton for a new day",
		Long: heredoc.Doc(`
			Print the source of a new solver package. MODULE is the lower_snake_case
			name of the puzzle, which also names its input directory.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if day <= 0 {
				day = days.New(days.DefaultOptions()).Latest().Number + 1
			}

			return scaffoldDay(cmd.OutOrStdout(), args[0], day)
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "Day number of the new puzzle (default next day)")

	return cmd
}
