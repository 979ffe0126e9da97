package pathtree

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pptc"
)

func TestBuildPlainSingleBucketSortedByLength(t *testing.T) {
	paths := []pptc.Path{
		pptc.PlainPath{NodeSeq: []int{0, 1, 2, 3, 4}}, // len 5, idx 0
		pptc.PlainPath{NodeSeq: []int{0, 1}},          // len 2, idx 1
		pptc.PlainPath{NodeSeq: []int{0, 1, 2}},       // len 3, idx 2
	}

	tree, err := Build(paths)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if tree.NumBuckets() != 1 {
		t.Fatalf("NumBuckets() = %d, want 1", tree.NumBuckets())
	}

	// round robin over a single bucket walks ascending length order.
	want := []int{1, 2, 0, 1, 2, 0}
	for _, w := range want {
		idx, ok := tree.Next()
		if !ok || idx != w {
			t.Fatalf("Next() = (%d, %v), want (%d, true)", idx, ok, w)
		}
	}
}

func TestBuildMiddleboxBuckets(t *testing.T) {
	paths := []pptc.Path{
		pptc.MiddleboxPath{NodeSeq: []int{0, 1, 2}, Mboxes: []int{10}},
		pptc.MiddleboxPath{NodeSeq: []int{0, 3, 2}, Mboxes: []int{20}},
		pptc.MiddleboxPath{NodeSeq: []int{0, 4, 2}, Mboxes: []int{10, 20}},
	}

	tree, err := Build(paths)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if tree.NumBuckets() != 2 {
		t.Fatalf("NumBuckets() = %d, want 2 (middlebox IDs 10, 20)", tree.NumBuckets())
	}

	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		idx, ok := tree.Next()
		if !ok {
			t.Fatalf("Next() returned ok=false unexpectedly")
		}
		seen[idx] = true
	}
	if len(seen) == 0 {
		t.Fatalf("Next() never produced any index")
	}
}

func TestBuildRejectsNilPath(t *testing.T) {
	_, err := Build([]pptc.Path{nil})
	if !errors.Is(err, pathselerr.ErrUnknownPathVariant) {
		t.Fatalf("Build([nil]) = %v, want ErrUnknownPathVariant", err)
	}
}

func TestNextOnEmptyTree(t *testing.T) {
	tree, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil) error: %v", err)
	}
	if _, ok := tree.Next(); ok {
		t.Fatalf("Next() on empty tree = ok=true, want false")
	}
}
