package rucksack

import (
	"context"
	"testing"
)

const sample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestPriority(t *testing.T) {
	tests := []struct {
		item byte
		want int
	}{
		{'a', 1},
		{'p', 16},
		{'z', 26},
		{'A', 27},
		{'L', 38},
		{'Z', 52},
		{'!', 0},
	}

	for _, tt := range tests {
		if got := Priority(tt.item); got != tt.want {
			t.Errorf("Priority(%q) = %d, want %d", tt.item, got, tt.want)
		}
	}
}

func TestShared(t *testing.T) {
	tests := []struct {
		sets []string
		want byte
		ok   bool
	}{
		{[]string{"vJrwpWtwJgWr", "hcsFMMfFFhFp"}, 'p', true},
		{[]string{"abc", "def"}, 0, false},
		{[]string{"xyz"}, 'x', true},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := Shared(tt.sets...)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Shared(%v) = %q, %v, want %q, %v", tt.sets, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(context.Background(), sample)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	if got.PartOne != "157" || got.PartTwo != "70" {
		t.Errorf("Solve() = %+v, want 157 / 70", got)
	}
}
