// Package puzzle holds the result type shared by every day's solver.
package puzzle

import "strconv"

// Answer holds the two answers of a puzzle, already rendered for display.
type Answer struct {
	// PartOne is the answer to the first question.
	PartOne string `json:"part_one"`
	// PartTwo is the answer to the second question.
	PartTwo string `json:"part_two"`
}

// Ints builds an Answer from two integer results.
func Ints[T ~int | ~int64](one, two T) Answer {
	return Answer{
		PartOne: strconv.FormatInt(int64(one), 10),
		PartTwo: strconv.FormatInt(int64(two), 10),
	}
}

// Strings builds an Answer from two string results.
func Strings(one, two string) Answer {
	return Answer{PartOne: one, PartTwo: two}
}
