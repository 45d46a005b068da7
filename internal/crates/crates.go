// Package crates solves the "Supply Stacks" puzzle.
package crates

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/idelchi/aoc2022/internal/puzzle"
)

var (
	// ErrNoSeparator is returned when the drawing and the procedure are not separated by a blank line.
	ErrNoSeparator = errors.New("missing blank line between drawing and procedure")
	// ErrInvalidMove is returned for a move that refers to a missing stack or too many crates.
	ErrInvalidMove = errors.New("invalid move")
)

// Stacks holds crate stacks, bottom first.
type Stacks [][]byte

// Move is one step of the rearrangement procedure. From and To are zero-based.
type Move struct {
	Count, From, To int
}

// ParseDrawing reads the stack drawing. Its last line numbers the stacks.
func ParseDrawing(drawing string) Stacks {
	lines := strings.Split(strings.TrimRight(drawing, "\n"), "\n")
	labels := lines[len(lines)-1]
	stacks := make(Stacks, len(strings.Fields(labels)))

	for _, line := range slices.Backward(lines[:len(lines)-1]) {
		for i := range stacks {
			pos := 1 + 4*i
			if pos < len(line) && line[pos] != ' ' {
				stacks[i] = append(stacks[i], line[pos])
			}
		}
	}

	return stacks
}

// ParseMove parses "move N from A to B".
func ParseMove(line string) (Move, bool) {
	fields := strings.Fields(line)
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return Move{}, false
	}

	count, err1 := strconv.Atoi(fields[1])
	from, err2 := strconv.Atoi(fields[3])
	to, err3 := strconv.Atoi(fields[5])

	if err := errors.Join(err1, err2, err3); err != nil {
		return Move{}, false
	}

	return Move{Count: count, From: from - 1, To: to - 1}, true
}

// Clone returns a deep copy of s.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, stack := range s {
		out[i] = slices.Clone(stack)
	}

	return out
}

// Apply performs m. With batch set, the crates keep their order (the
// multi-crate mover); otherwise they are moved one at a time.
func (s Stacks) Apply(m Move, batch bool) error {
	if m.From < 0 || m.From >= len(s) || m.To < 0 || m.To >= len(s) || m.Count < 0 || m.Count > len(s[m.From]) {
		return fmt.Errorf("%w: %+v", ErrInvalidMove, m)
	}

	if m.From == m.To {
		return nil
	}

	at := len(s[m.From]) - m.Count
	moved := slices.Clone(s[m.From][at:])
	s[m.From] = s[m.From][:at]

	if !batch {
		slices.Reverse(moved)
	}

	s[m.To] = append(s[m.To], moved...)

	return nil
}

// Tops returns the top crate of every non-empty stack.
func (s Stacks) Tops() string {
	var b strings.Builder

	for _, stack := range s {
		if len(stack) > 0 {
			b.WriteByte(stack[len(stack)-1])
		}
	}

	return b.String()
}

// Rearrange runs moves on a copy of s and returns the top crates.
func Rearrange(s Stacks, moves []Move, batch bool) (string, error) {
	s = s.Clone()

	for _, m := range moves {
		if err := s.Apply(m, batch); err != nil {
			return "", err
		}
	}

	return s.Tops(), nil
}

// Solve answers the top crates after moving one crate at a time, and after moving crates in batches.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	drawing, procedure, ok := strings.Cut(input, "\n\n")
	if !ok {
		return puzzle.Answer{}, ErrNoSeparator
	}

	stacks := ParseDrawing(drawing)

	var moves []Move

	for line := range strings.Lines(procedure) {
		if m, ok := ParseMove(line); ok {
			moves = append(moves, m)
		}
	}

	one, err := Rearrange(stacks, moves, false)
	if err != nil {
		return puzzle.Answer{}, err
	}

	two, err := Rearrange(stacks, moves, true)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Strings(one, two), nil
}
