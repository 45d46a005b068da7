// Package tuning solves the "Tuning Trouble" puzzle.
package tuning

import (
	"context"
	"strings"

	"github.com/idelchi/aoc2022/internal/puzzle"
)

const (
	// PacketMarker is the window length of a start-of-packet marker.
	PacketMarker = 4
	// MessageMarker is the window length of a start-of-message marker.
	MessageMarker = 14
)

// Marker returns the number of characters read when the first window of n
// distinct characters ends, or false if the stream has none.
func Marker(stream string, n int) (int, bool) {
	var last [256]int // last position+1 of each byte

	start := 0
	for i := range len(stream) {
		c := stream[i]
		if last[c] > start {
			start = last[c]
		}

		last[c] = i + 1

		if i+1-start == n {
			return i + 1, true
		}
	}

	return 0, false
}

// Sum adds the marker positions of every line that contains one.
func Sum(input string, n int) int {
	sum := 0

	for line := range strings.Lines(input) {
		if pos, ok := Marker(strings.TrimSpace(line), n); ok {
			sum += pos
		}
	}

	return sum
}

// Solve answers the start-of-packet and start-of-message positions.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	return puzzle.Ints(Sum(input, PacketMarker), Sum(input, MessageMarker)), nil
}
