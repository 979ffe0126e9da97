// Package replace implements the three replace policies of the
// Expel/Replace kernel: next_sorted, random, pathtree, and the
// pathscore variant of next_sorted fed by a precomputed path-score order.
package replace

import (
	"math/rand"

	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pathtree"
)

// Mode is the closed ReplaceMode enum: next_sorted=1, random=3,
// pathtree=4, pathscore=6. The numbering gap preserves the wire values
// of a reserved-but-unused pair of modes.
type Mode int

const (
	NextSorted Mode = 1
	RandomMode Mode = 3
	PathTree   Mode = 4
	PathScore  Mode = 6
)

func (m Mode) String() string {
	switch m {
	case NextSorted:
		return "next_sorted"
	case RandomMode:
		return "random"
	case PathTree:
		return "pathtree"
	case PathScore:
		return "pathscore"
	default:
		return "unknown_replace_mode"
	}
}

const maxRetries = 100

// visibleCount counts mask entries that are false (visible).
func visibleCount(mask []bool) int {
	var n int
	for _, masked := range mask {
		if !masked {
			n++
		}
	}

	return n
}

// replaceLen computes max(0, k - count(mask==0)): how many additional
// candidates must be unmasked to reach the target visible count k.
func replaceLen(mask []bool, k int) int {
	rl := k - visibleCount(mask)
	if rl < 0 {
		return 0
	}

	return rl
}

// unmaskAll sets every element of mask to false.
func unmaskAll(mask []bool) {
	for i := range mask {
		mask[i] = false
	}
}

// Apply mutates mask in place for the given replace mode, target count k,
// and explored set. order is the preorder permutation driving next_sorted
// and pathscore (by length for next_sorted, by PathScore for pathscore);
// tree is required only for PathTree mode; r is required only for
// RandomMode and as the next_sorted/pathscore fallback source.
func Apply(mode Mode, mask []bool, k int, explored *Explored, order []int, tree *pathtree.PathTree, r *rand.Rand) error {
	rl := replaceLen(mask, k)
	if rl == 0 {
		return nil
	}

	unused := unusedCount(mask)
	if unused < rl {
		unmaskAll(mask)
		return nil
	}

	switch mode {
	case NextSorted, PathScore:
		return applyNextSorted(mask, rl, explored, order, r)
	case RandomMode:
		return applyRandom(mask, rl, explored, r)
	case PathTree:
		return applyPathTree(mask, rl, explored, tree)
	default:
		return pathselerr.ErrInvalidConfig
	}
}

func unusedCount(mask []bool) int {
	var n int
	for _, masked := range mask {
		if masked {
			n++
		}
	}

	return n
}

// applyNextSorted enumerates combinations of the unused indices — restricted
// to, and ordered by, `order` (the prior length- or path-score-sort) — in
// ascending lexicographic order, accepting the first combination whose
// resulting mask is not already explored. Falls back to a uniform random
// pick of rl indices if every combination is exhausted.
func applyNextSorted(mask []bool, rl int, explored *Explored, order []int, r *rand.Rand) error {
	unused := make([]int, 0, len(order))
	for _, idx := range order {
		if mask[idx] {
			unused = append(unused, idx)
		}
	}

	it := newCombinationIter(len(unused), rl)
	for {
		positions, ok := it.next()
		if !ok {
			break
		}

		candidate := append([]bool(nil), mask...)
		for _, pos := range positions {
			candidate[unused[pos]] = false
		}
		if !explored.Contains(candidate) {
			copy(mask, candidate)
			return nil
		}
	}

	// Fallback: exhausted every combination; pick rl indices uniformly at
	// random from unused, regardless of explored membership.
	chosen := randomSubset(unused, rl, r)
	for _, idx := range chosen {
		mask[idx] = false
	}

	return nil
}

// applyRandom picks rl distinct indices uniformly at random from the
// masked (unused) pool, retrying up to maxRetries times if the resulting
// mask is already explored; the last candidate is accepted regardless of
// outcome after the retry budget is spent.
func applyRandom(mask []bool, rl int, explored *Explored, r *rand.Rand) error {
	unused := make([]int, 0, len(mask))
	for i, masked := range mask {
		if masked {
			unused = append(unused, i)
		}
	}

	var candidate []bool
	for attempt := 0; attempt < maxRetries; attempt++ {
		chosen := randomSubset(unused, rl, r)
		candidate = append([]bool(nil), mask...)
		for _, idx := range chosen {
			candidate[idx] = false
		}
		if !explored.Contains(candidate) {
			copy(mask, candidate)
			return nil
		}
	}
	// Retry budget spent: accept the last candidate regardless.
	copy(mask, candidate)

	return nil
}

// applyPathTree draws indices via tree's round-robin iterator until rl
// distinct, currently-masked indices are collected, retrying the whole
// draw up to maxRetries times against explored. If every full draw in the
// budget lands on an explored mask, the last full draw is accepted anyway
// (as in random). Returns ErrNoMoreCandidates if tree is nil or empty, or
// if no attempt collects rl distinct masked indices; unlike next_sorted,
// pathtree has no random fallback.
func applyPathTree(mask []bool, rl int, explored *Explored, tree *pathtree.PathTree) error {
	if tree == nil || tree.NumBuckets() == 0 {
		return pathselerr.ErrNoMoreCandidates
	}

	var candidate []bool
	for attempt := 0; attempt < maxRetries; attempt++ {
		seen := make(map[int]bool, rl)
		draws := 0
		maxDraws := rl * 4 * (tree.NumBuckets() + 1) // generous bound against infinite spin
		for len(seen) < rl && draws < maxDraws {
			idx, ok := tree.Next()
			draws++
			if !ok {
				break
			}
			if mask[idx] {
				seen[idx] = true
			}
		}
		if len(seen) < rl {
			continue
		}

		candidate = append([]bool(nil), mask...)
		for idx := range seen {
			candidate[idx] = false
		}
		if !explored.Contains(candidate) {
			copy(mask, candidate)
			return nil
		}
	}

	if candidate != nil {
		copy(mask, candidate)
		return nil
	}

	return pathselerr.ErrNoMoreCandidates
}

func randomSubset(universe []int, k int, r *rand.Rand) []int {
	if k >= len(universe) {
		out := make([]int, len(universe))
		copy(out, universe)
		return out
	}

	pool := append([]int(nil), universe...)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
