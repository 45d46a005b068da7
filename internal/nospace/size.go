package nospace

import (
	"errors"
	"fmt"
)

// ErrNoCandidate is returned when no directory is large enough to free the required space.
var ErrNoCandidate = errors.New("no directory is large enough")

// Limits holds the thresholds used by the two queries.
type Limits struct {
	// SmallDir is the exclusive upper bound for directories counted by part one.
	SmallDir int64 `json:"small_dir"`
	// Capacity is the total disk size.
	Capacity int64 `json:"capacity"`
	// FreeNeeded is the free space the update requires.
	FreeNeeded int64 `json:"free_needed"`
}

// DefaultLimits are the puzzle's thresholds.
//
//nolint:gochecknoglobals // Config constant
var DefaultLimits = Limits{
	SmallDir:   100_000,
	Capacity:   70_000_000,
	FreeNeeded: 30_000_000,
}

// SpaceNeeded returns how much must be deleted when used bytes are occupied.
// The result is zero or negative when enough space is already free.
func (l Limits) SpaceNeeded(used int64) int64 {
	return l.FreeNeeded - (l.Capacity - used)
}

// Size returns the total size of id: its files plus all of its subdirectories.
func (t *Tree) Size(id DirID) int64 {
	var total int64

	for _, f := range t.dirs[id].Files {
		total += f.Size
	}

	for _, child := range t.dirs[id].Children {
		total += t.Size(child)
	}

	return total
}

// Sizes returns the size of every directory, indexed by DirID.
// Children always have larger ids than their parent, so a single
// reverse pass over the arena accumulates sizes bottom-up.
func (t *Tree) Sizes() []int64 {
	sizes := make([]int64, len(t.dirs))

	for i := len(t.dirs) - 1; i >= 0; i-- {
		for _, f := range t.dirs[i].Files {
			sizes[i] += f.Size
		}

		if parent := t.dirs[i].Parent; parent != NoParent {
			sizes[parent] += sizes[i]
		}
	}

	return sizes
}

// SumBelow sums every size strictly less than limit.
func SumBelow(sizes []int64, limit int64) int64 {
	var sum int64

	for _, s := range sizes {
		if s < limit {
			sum += s
		}
	}

	return sum
}

// SmallestAtLeast returns the smallest size that is at least bound.
func SmallestAtLeast(sizes []int64, bound int64) (int64, error) {
	best, found := int64(0), false

	for _, s := range sizes {
		if s >= bound && (!found || s < best) {
			best, found = s, true
		}
	}

	if !found {
		return 0, fmt.Errorf("%w: need %d bytes", ErrNoCandidate, bound)
	}

	return best, nil
}
