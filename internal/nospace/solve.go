package nospace

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/idelchi/aoc2022/internal/puzzle"
)

// Solve parses the transcript, rebuilds the tree and answers both parts:
// the sum of all directory sizes below limits.SmallDir, and the smallest
// directory whose deletion frees enough space for limits.FreeNeeded.
func Solve(ctx context.Context, transcript string, limits Limits) (puzzle.Answer, error) {
	log := zerolog.Ctx(ctx)

	cmds, skipped := Parse(transcript)
	for _, err := range skipped {
		log.Debug().Err(err).Msg("skipping transcript block")
	}

	tree := Replay(cmds)
	sizes := tree.Sizes()
	used := sizes[Root]

	log.Debug().
		Int("commands", len(cmds)).
		Int("directories", tree.Len()).
		Int64("used", used).
		Msg("rebuilt filesystem")

	partOne := SumBelow(sizes, limits.SmallDir)

	needed := limits.SpaceNeeded(used)
	log.Debug().Int64("needed", needed).Msg("space to reclaim")

	partTwo, err := SmallestAtLeast(sizes, needed)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("choosing directory to delete: %w", err)
	}

	return puzzle.Ints(partOne, partTwo), nil
}
