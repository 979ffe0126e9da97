package replace

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsel/pathselerr"
)

func TestReplaceLen(t *testing.T) {
	mask := []bool{false, false, true, true}
	assert.Equal(t, 2, replaceLen(mask, 4))
	assert.Equal(t, 0, replaceLen(mask, 1), "k < visible clamps to 0")
}

func TestApplyNextSortedUsesOrder(t *testing.T) {
	mask := []bool{true, true, true}
	explored := NewExplored()
	order := []int{2, 0, 1} // ascending length order, per caller's preorder

	require.NoError(t, Apply(NextSorted, mask, 2, explored, order, nil, rand.New(rand.NewSource(1))))
	assert.False(t, mask[2], "index 2 should be unmasked first per order")
	assert.False(t, mask[0], "index 0 should be unmasked second per order")
	assert.True(t, mask[1], "mask[1] should remain masked (third in order, rl=2)")
}

func TestApplyNextSortedSkipsExplored(t *testing.T) {
	mask := []bool{true, true, true}
	explored := NewExplored()
	order := []int{0, 1, 2}

	// Pre-populate explored with the mask that unmasking [0,1] would produce.
	explored.Append([]bool{false, false, true})

	require.NoError(t, Apply(NextSorted, mask, 2, explored, order, nil, rand.New(rand.NewSource(1))))
	assert.False(t, explored.Contains(mask), "Apply(NextSorted) produced an already-explored mask")
}

func TestApplyUnmasksAllWhenUnusedBelowReplaceLen(t *testing.T) {
	mask := []bool{false, true} // visible=1, unused=1
	explored := NewExplored()

	require.NoError(t, Apply(NextSorted, mask, 3, explored, []int{0, 1}, nil, rand.New(rand.NewSource(1))))
	for i, m := range mask {
		assert.Falsef(t, m, "mask[%d] = true, want all-unmasked fallback since unused < replace_len", i)
	}
}

func TestApplyRandomAcceptsAfterRetryBudget(t *testing.T) {
	mask := []bool{true, true}
	explored := NewExplored()
	// Every possible 1-of-2 selection is pre-explored; applyRandom must
	// still terminate and accept the last candidate regardless.
	explored.Append([]bool{false, true})
	explored.Append([]bool{true, false})

	require.NoError(t, Apply(RandomMode, mask, 1, explored, nil, nil, rand.New(rand.NewSource(7))))
	assert.Equal(t, 1, visibleCount(mask))
}

func TestApplyPathTreeNilTreeReturnsNoMoreCandidates(t *testing.T) {
	mask := []bool{true, true}
	explored := NewExplored()

	err := Apply(PathTree, mask, 1, explored, nil, nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, pathselerr.ErrNoMoreCandidates)
}

func TestApplyUnknownMode(t *testing.T) {
	mask := []bool{true}
	err := Apply(Mode(99), mask, 1, NewExplored(), nil, nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, pathselerr.ErrInvalidConfig)
}

func TestExploredContainsBitwise(t *testing.T) {
	e := NewExplored()
	e.Append([]bool{true, false})
	assert.True(t, e.Contains([]bool{true, false}))
	assert.False(t, e.Contains([]bool{false, true}))
	assert.Equal(t, 1, e.Len())
}

func TestCombinationIterLexicographic(t *testing.T) {
	it := newCombinationIter(4, 2)
	var got [][]int
	for {
		c, ok := it.next()
		if !ok {
			break
		}
		got = append(got, append([]int(nil), c...))
	}
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, got)
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{
		NextSorted: "next_sorted", RandomMode: "random",
		PathTree: "pathtree", PathScore: "pathscore", Mode(0): "unknown_replace_mode",
	}
	for mode, want := range cases {
		assert.Equal(t, want, mode.String())
	}
}
