// Package rps solves the "Rock Paper Scissors" puzzle.
package rps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idelchi/aoc2022/internal/puzzle"
)

// ErrUnknownSymbol is returned for a letter that is not a valid hand or outcome.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Hand is a shape played in one round.
type Hand int

// Hands, valued by the points they score.
const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

// Outcome is the result of a round from the player's point of view.
type Outcome int

// Outcomes, valued by the points they score.
const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// ParseHand maps A/X to Rock, B/Y to Paper and C/Z to Scissors.
func ParseHand(s string) (Hand, error) {
	switch strings.ToUpper(s) {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	default:
		return 0, fmt.Errorf("%w: hand %q", ErrUnknownSymbol, s)
	}
}

// ParseOutcome maps X to Lose, Y to Draw and Z to Win.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToUpper(s) {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	default:
		return 0, fmt.Errorf("%w: outcome %q", ErrUnknownSymbol, s)
	}
}

// Beats returns the hand that h defeats.
func (h Hand) Beats() Hand {
	return (h+1)%3 + 1
}

// BeatenBy returns the hand that defeats h.
func (h Hand) BeatenBy() Hand {
	return h%3 + 1
}

// Play returns the outcome of h against other.
func (h Hand) Play(other Hand) Outcome {
	switch other {
	case h:
		return Draw
	case h.Beats():
		return Win
	default:
		return Lose
	}
}

// For returns the hand to play against opponent to reach o.
func (o Outcome) For(opponent Hand) Hand {
	switch o {
	case Win:
		return opponent.BeatenBy()
	case Lose:
		return opponent.Beats()
	default:
		return opponent
	}
}

// ScoreHands scores a round where the second column is the player's hand.
func ScoreHands(opponent, second string) (int, error) {
	them, err := ParseHand(opponent)
	if err != nil {
		return 0, err
	}

	me, err := ParseHand(second)
	if err != nil {
		return 0, err
	}

	return int(me) + int(me.Play(them)), nil
}

// ScoreOutcomes scores a round where the second column is the desired outcome.
func ScoreOutcomes(opponent, second string) (int, error) {
	them, err := ParseHand(opponent)
	if err != nil {
		return 0, err
	}

	outcome, err := ParseOutcome(second)
	if err != nil {
		return 0, err
	}

	return int(outcome.For(them)) + int(outcome), nil
}

// Total scores every round of the strategy guide with score.
// Lines without two columns are skipped.
func Total(input string, score func(opponent, second string) (int, error)) (int, error) {
	total := 0

	for line := range strings.Lines(input) {
		opponent, second, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			continue
		}

		points, err := score(strings.TrimSpace(opponent), strings.TrimSpace(second))
		if err != nil {
			return 0, fmt.Errorf("scoring round %q: %w", strings.TrimSpace(line), err)
		}

		total += points
	}

	return total, nil
}

// Solve answers the total score for both readings of the strategy guide.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	one, err := Total(input, ScoreHands)
	if err != nil {
		return puzzle.Answer{}, err
	}

	two, err := Total(input, ScoreOutcomes)
	if err != nil {
		return puzzle.Answer{}, err
	}

	zerolog.Ctx(ctx).Debug().Int("hands", one).Int("outcomes", two).Msg("scored strategy guide")

	return puzzle.Ints(one, two), nil
}
