package score

import (
	"testing"

	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/topology"
)

// line4Topology builds a 4-node line 0-1-2-3.
func line4Topology() *topology.Topology {
	top := topology.New()
	for i := 0; i < 4; i++ {
		top.AddNode(i, map[string]float64{"bw": 10})
	}
	top.AddLink(0, 1, map[string]float64{"bw": 5})
	top.AddLink(1, 2, map[string]float64{"bw": 5})
	top.AddLink(2, 3, map[string]float64{"bw": 5})

	return top
}

func TestByLengthAscendingWithTiebreak(t *testing.T) {
	paths := []pptc.Path{
		pptc.PlainPath{NodeSeq: []int{0, 1, 2, 6, 3}},    // len 5
		pptc.PlainPath{NodeSeq: []int{0, 1, 2, 3}},       // len 4
		pptc.PlainPath{NodeSeq: []int{0, 1, 5, 2, 6, 3}}, // len 6
	}

	order := ByLength(paths)
	if len(order) != 3 || order[0] != 1 || order[1] != 0 || order[2] != 2 {
		t.Fatalf("ByLength() = %v, want [1 0 2]", order)
	}
}

func TestByLengthTieBreaksByOriginalIndex(t *testing.T) {
	paths := []pptc.Path{
		pptc.PlainPath{NodeSeq: []int{0, 1}},
		pptc.PlainPath{NodeSeq: []int{2, 3}},
	}
	order := ByLength(paths)
	if order[0] != 0 || order[1] != 1 {
		t.Fatalf("ByLength() tie order = %v, want [0 1]", order)
	}
}

func TestByResourceDescending(t *testing.T) {
	top := line4Topology()
	w := map[string]float64{"bw": 1}

	short := pptc.PlainPath{NodeSeq: []int{0, 1}}
	long := pptc.PlainPath{NodeSeq: []int{0, 1, 2, 3}}

	order := ByResource([]pptc.Path{long, short}, top, w)
	if order[0] != 1 {
		t.Fatalf("ByResource() = %v, want the shorter path first (less length penalty)", order)
	}
}

func TestResourceScoreZeroNormalizationSkipsTerm(t *testing.T) {
	top := topology.New()
	top.AddNode(0, nil)
	top.AddNode(1, nil)
	top.AddLink(0, 1, nil)

	p := pptc.PlainPath{NodeSeq: []int{0, 1}}
	got := ResourceScore(p, top, map[string]float64{"bw": 1}, top.Diameter())
	if got != -float64(p.Len())/float64(top.Diameter()) {
		t.Fatalf("ResourceScore() with zero total resource = %v, want only the length penalty", got)
	}
}

func TestPathScoreSyntheticLen(t *testing.T) {
	top := line4Topology()
	p := pptc.PlainPath{NodeSeq: []int{0, 1, 2, 3}}
	w := map[string]float64{"len": 2}

	got := PathScore(p, top, w)
	want := 2 * float64(p.Len())
	if got != want {
		t.Fatalf("PathScore() = %v, want %v", got, want)
	}
}

func TestByPathScoreDescending(t *testing.T) {
	top := line4Topology()
	w := map[string]float64{"len": 1}

	short := pptc.PlainPath{NodeSeq: []int{0, 1}}
	long := pptc.PlainPath{NodeSeq: []int{0, 1, 2, 3}}

	order := ByPathScore([]pptc.Path{short, long}, top, w)
	if order[0] != 1 {
		t.Fatalf("ByPathScore() = %v, want the longer path first (higher len score)", order)
	}
}
