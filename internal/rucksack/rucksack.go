// Package rucksack solves the "Rucksack Reorganization" puzzle.
package rucksack

import (
	"context"
	"slices"
	"strings"

	"github.com/idelchi/aoc2022/internal/puzzle"
)

// GroupSize is the number of elves sharing a badge.
const GroupSize = 3

// Priority returns 1-26 for a-z, 27-52 for A-Z and 0 otherwise.
func Priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	default:
		return 0
	}
}

// Shared returns the first item of the last set that appears in every other set.
func Shared(sets ...string) (byte, bool) {
	if len(sets) == 0 {
		return 0, false
	}

	last := sets[len(sets)-1]
	for i := range len(last) {
		if !slices.ContainsFunc(sets[:len(sets)-1], func(s string) bool {
			return strings.IndexByte(s, last[i]) < 0
		}) {
			return last[i], true
		}
	}

	return 0, false
}

// Compartments sums the priorities of the item found in both halves of each rucksack.
func Compartments(lines []string) int {
	sum := 0

	for _, line := range lines {
		half := len(line) / 2
		if item, ok := Shared(line[:half], line[half:]); ok {
			sum += Priority(item)
		}
	}

	return sum
}

// Badges sums the priorities of the item shared by each group of GroupSize rucksacks.
// A trailing short group is still considered.
func Badges(lines []string) int {
	sum := 0

	for group := range slices.Chunk(lines, GroupSize) {
		if item, ok := Shared(group...); ok {
			sum += Priority(item)
		}
	}

	return sum
}

// Solve answers the compartment priority sum and the badge priority sum.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	var lines []string

	for line := range strings.Lines(input) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return puzzle.Ints(Compartments(lines), Badges(lines)), nil
}
