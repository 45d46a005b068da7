// Package cleanup solves the "Camp Cleanup" puzzle.
package cleanup

import (
	"context"
	"strconv"
	"strings"

	"github.com/idelchi/aoc2022/internal/puzzle"
)

// Range is an inclusive range of section ids.
type Range struct {
	Lo, Hi int
}

// ParseRange parses "lo-hi".
func ParseRange(s string) (Range, bool) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, false
	}

	l, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, false
	}

	h, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, false
	}

	return Range{Lo: l, Hi: h}, true
}

// Contains reports whether r fully contains other.
func (r Range) Contains(other Range) bool {
	return r.Lo <= other.Lo && other.Hi <= r.Hi
}

// Overlaps reports whether r and other share at least one section.
func (r Range) Overlaps(other Range) bool {
	return r.Lo <= other.Hi && other.Lo <= r.Hi
}

// ParsePair parses "a-b,c-d".
func ParsePair(line string) (Range, Range, bool) {
	left, right, ok := strings.Cut(line, ",")
	if !ok {
		return Range{}, Range{}, false
	}

	x, ok := ParseRange(left)
	if !ok {
		return Range{}, Range{}, false
	}

	y, ok := ParseRange(right)
	if !ok {
		return Range{}, Range{}, false
	}

	return x, y, true
}

// Solve counts pairs where one range contains the other, and pairs that overlap.
// Lines that are not a valid pair are skipped.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	var contained, overlapping int

	for line := range strings.Lines(input) {
		x, y, ok := ParsePair(strings.TrimSpace(line))
		if !ok {
			continue
		}

		if x.Contains(y) || y.Contains(x) {
			contained++
		}

		if x.Overlaps(y) {
			overlapping++
		}
	}

	return puzzle.Ints(contained, overlapping), nil
}
