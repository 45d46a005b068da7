// Package days holds the day-dispatch table that maps a puzzle day to its solver.
package days

import (
	"context"
	"errors"
	"fmt"

	"github.com/idelchi/aoc2022/internal/calories"
	"github.com/idelchi/aoc2022/internal/cleanup"
	"github.com/idelchi/aoc2022/internal/crates"
	"github.com/idelchi/aoc2022/internal/nospace"
	"github.com/idelchi/aoc2022/internal/puzzle"
	"github.com/idelchi/aoc2022/internal/rps"
	"github.com/idelchi/aoc2022/internal/rucksack"
	"github.com/idelchi/aoc2022/internal/tuning"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("no solver for day")

// Solver computes both answers of a puzzle from its raw input.
type Solver func(ctx context.Context, input string) (puzzle.Answer, error)

// Day is one entry of the dispatch table.
type Day struct {
	// Number is the calendar day.
	Number int `json:"day"`
	// Name is the module name, which is also the input directory name.
	Name string `json:"name"`
	// Solve runs the puzzle.
	Solve Solver `json:"-"`
}

// Options configures solvers that take parameters.
type Options struct {
	// Limits are the thresholds of the filesystem puzzle.
	Limits nospace.Limits
}

// DefaultOptions returns the puzzles' own parameters.
func DefaultOptions() Options {
	return Options{Limits: nospace.DefaultLimits}
}

// Registry is the ordered dispatch table.
type Registry struct {
	days []Day
}

// New builds the table of every implemented day.
func New(opts Options) Registry {
	return Registry{days: []Day{
		{Number: 1, Name: "elves_calories", Solve: calories.Solve},
		{Number: 2, Name: "rock_paper_scissors", Solve: rps.Solve},
		{Number: 3, Name: "rucksack_reorganization", Solve: rucksack.Solve},
		{Number: 4, Name: "camp_cleanup", Solve: cleanup.Solve},
		{Number: 5, Name: "supply_stacks", Solve: crates.Solve},
		{Number: 6, Name: "tuning_trouble", Solve: tuning.Solve},
		{Number: 7, Name: "no_space_left_on_device", Solve: func(ctx context.Context, input string) (puzzle.Answer, error) {
			return nospace.Solve(ctx, input, opts.Limits)
		}},
	}}
}

// Lookup returns the entry for day n.
func (r Registry) Lookup(n int) (Day, error) {
	for _, d := range r.days {
		if d.Number == n {
			return d, nil
		}
	}

	return Day{}, fmt.Errorf("%w %d", ErrUnknownDay, n)
}

// All returns every registered day in calendar order.
func (r Registry) All() []Day {
	return r.days
}

// Latest returns the highest registered day.
func (r Registry) Latest() Day {
	return r.days[len(r.days)-1]
}
