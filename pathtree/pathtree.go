// Package pathtree implements the PathTree round-robin index: a cyclic
// iterator over path buckets keyed by middlebox membership (or a single
// length-sorted bucket for plain paths), used to draw replacement
// candidates fairly.
//
// Rather than an iterator-of-iterators sharing a mutable cursor, state is
// explicit: a bucket cursor plus one cursor per bucket, advanced in
// lock-step — no channels, no closures capturing loop variables, just a
// plain integer bucket cursor and a map of per-bucket integer cursors
// giving explicit, inspectable state over implicit iterator protocols.
package pathtree

import (
	"sort"

	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pptc"
)

// plainBucketKey is the single bucket key used when paths carry no
// middlebox information.
const plainBucketKey = 0

// PathTree is a round-robin index over path-index buckets.
type PathTree struct {
	keys        []int       // bucket keys in stable ascending order
	buckets     map[int][]int // key -> path indices in that bucket
	keyCursor   int         // outer cyclic cursor into keys
	perBucket   map[int]int // key -> cyclic cursor into buckets[key]
}

// Build constructs a PathTree over paths. Plain paths (no middleboxes) all
// land in a single bucket sorted by ascending length; paths carrying
// middleboxes are bucketed once per middlebox they traverse, each bucket
// listing path indices in original order.
//
// Returns ErrUnknownPathVariant if a path is nil (defensive; the pptc.Path
// interface has no third variant today, but a nil path reaching PathTree
// construction indicates a caller bug worth surfacing as a typed error).
func Build(paths []pptc.Path) (*PathTree, error) {
	t := &PathTree{
		buckets:   make(map[int][]int),
		perBucket: make(map[int]int),
	}

	hasMboxes := false
	for _, p := range paths {
		if p == nil {
			return nil, pathselerr.ErrUnknownPathVariant
		}
		if len(p.Middleboxes()) > 0 {
			hasMboxes = true
		}
	}

	if !hasMboxes {
		idxByLen := make([]int, len(paths))
		for i := range paths {
			idxByLen[i] = i
		}
		sort.SliceStable(idxByLen, func(a, b int) bool {
			return paths[idxByLen[a]].Len() < paths[idxByLen[b]].Len()
		})
		t.buckets[plainBucketKey] = idxByLen
		t.keys = []int{plainBucketKey}
		t.perBucket[plainBucketKey] = 0

		return t, nil
	}

	for i, p := range paths {
		for _, mbox := range p.Middleboxes() {
			t.buckets[mbox] = append(t.buckets[mbox], i)
		}
	}
	t.keys = make([]int, 0, len(t.buckets))
	for k := range t.buckets {
		t.keys = append(t.keys, k)
	}
	sort.Ints(t.keys)
	for _, k := range t.keys {
		t.perBucket[k] = 0
	}

	return t, nil
}

// Next advances the outer (bucket) cursor by one bucket, then returns the
// next path index from that bucket's own cyclic cursor. Returns false if
// the tree has no buckets at all.
func (t *PathTree) Next() (int, bool) {
	if len(t.keys) == 0 {
		return 0, false
	}

	key := t.keys[t.keyCursor]
	t.keyCursor = (t.keyCursor + 1) % len(t.keys)

	bucket := t.buckets[key]
	if len(bucket) == 0 {
		return 0, false
	}

	cursor := t.perBucket[key]
	idx := bucket[cursor]
	t.perBucket[key] = (cursor + 1) % len(bucket)

	return idx, true
}

// NumBuckets returns how many buckets this tree holds.
func (t *PathTree) NumBuckets() int {
	return len(t.keys)
}
