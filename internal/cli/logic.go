package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/idelchi/aoc2022/internal/days"
	"github.com/idelchi/aoc2022/internal/input"
	"github.com/idelchi/aoc2022/internal/scaffold"
)

// newLogger creates a console logger on w. Colors are only used when w is a terminal.
func newLogger(w *os.File, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func solve(ctx context.Context, out io.Writer, options Options, opts days.Options) error {
	log := zerolog.Ctx(ctx)

	day, err := days.New(opts).Lookup(options.Day)
	if err != nil {
		return err
	}

	text, err := input.Read(options.Files, day.Name)
	if err != nil {
		return err
	}

	log.Debug().
		Int("day", day.Number).
		Str("name", day.Name).
		Int("bytes", len(text)).
		Interface("limits", opts.Limits).
		Msg("solving")

	start := time.Now()

	answer, err := day.Solve(ctx, text)
	if err != nil {
		return fmt.Errorf("day %d (%s): %w", day.Number, day.Name, err)
	}

	result := Result{
		Day:     day.Number,
		Name:    day.Name,
		Answer:  answer,
		Elapsed: time.Since(start),
	}

	log.Debug().Dur("elapsed", result.Elapsed).Msg("solved")

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, out)
	case "table":
		return PrintTable(result, out)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}

func list(ctx context.Context, out io.Writer, files string) error {
	entries, err := input.Discover(ctx, files)
	if err != nil {
		return err
	}

	sizes := make(map[string]int64, len(entries))
	for _, e := range entries {
		sizes[e.Name] = e.Size
	}

	all := days.New(days.DefaultOptions()).All()
	statuses := make([]DayStatus, 0, len(all))

	for _, d := range all {
		size, ok := sizes[d.Name]
		statuses = append(statuses, DayStatus{Day: d, HasInput: ok, Size: size})
	}

	return PrintDays(statuses, out)
}

func scaffoldDay(out io.Writer, module string, day int) error {
	src, err := scaffold.Render(module, day)
	if err != nil {
		return fmt.Errorf("rendering solver: %w", err)
	}

	_, err = fmt.Fprint(out, src)

	return err
}
