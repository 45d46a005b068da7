package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/aoc2022/internal/days"
	"github.com/idelchi/aoc2022/internal/puzzle"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// Result is the outcome of solving one day.
type Result struct {
	// Day is the calendar day.
	Day int `json:"day"`
	// Name is the puzzle module name.
	Name string `json:"name"`
	puzzle.Answer
	// Elapsed is the time taken by the solver.
	Elapsed time.Duration `json:"elapsed"`
}

// DayStatus pairs a registered day with its input on disk.
type DayStatus struct {
	days.Day
	// HasInput reports whether the input file exists.
	HasInput bool
	// Size is the input size in bytes.
	Size int64
}

// PrintJSON outputs a result in JSON format.
func PrintJSON(result Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs both answers, one per line.
func PrintTable(result Result, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Part one answer is: %s\n", result.PartOne); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Part two answer is: %s\n", result.PartTwo)

	return err
}

// PrintDays outputs the dispatch table as a human-readable table.
func PrintDays(statuses []DayStatus, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "DAY\tMODULE\tINPUT")

	for _, s := range statuses {
		in := "missing"
		if s.HasInput {
			in = humanize.Bytes(uint64(s.Size)) //nolint:gosec // File sizes are never negative
		}

		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Number, s.Name, in)
	}

	return w.Flush()
}
