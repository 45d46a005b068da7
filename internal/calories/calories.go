// Package calories solves the "Calorie Counting" puzzle.
package calories

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/idelchi/aoc2022/internal/puzzle"
)

// Totals returns the calories carried by each elf, in input order.
// Elves are separated by blank lines.
func Totals(input string) ([]int, error) {
	totals := []int{0}

	for line := range strings.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			totals = append(totals, 0)

			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("parsing calories %q: %w", line, err)
		}

		totals[len(totals)-1] += n
	}

	return totals, nil
}

// TopSum returns the sum of the n largest totals.
func TopSum(totals []int, n int) int {
	sorted := slices.Clone(totals)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	sum := 0
	for _, t := range sorted[:min(n, len(sorted))] {
		sum += t
	}

	return sum
}

// Solve answers the most calories carried by one elf and by the top three elves.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	totals, err := Totals(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Ints(TopSum(totals, 1), TopSum(totals, 3)), nil
}
