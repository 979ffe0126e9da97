// Package score implements the pure scoring functions over candidate
// paths: shortest-length ordering, topology-resource-weighted scoring,
// and the SA replace-variant path-score. Small pure cost functions feed a
// sort, weighting several normalized components and penalizing path
// length.
package score

import (
	"sort"

	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/topology"
)

// Indexed pairs a candidate index with its original-index tiebreaker so
// every ordering function can sort stably without leaking sort.Slice
// closures into callers, using named, reusable helper types over ad hoc
// comparators.
type Indexed struct {
	Index int
	Value float64
}

// ByLength returns candidate indices ordered ascending by path length
// (node count), ties broken by original index.
func ByLength(paths []pptc.Path) []int {
	idx := make([]Indexed, len(paths))
	for i, p := range paths {
		idx[i] = Indexed{Index: i, Value: float64(p.Len())}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if idx[a].Value != idx[b].Value {
			return idx[a].Value < idx[b].Value
		}
		return idx[a].Index < idx[b].Index
	})

	return extractIndices(idx)
}

// ByResource returns candidate indices ordered descending by resource score,
// ties broken by original index.
//
//	score(p) = Σ_r (max_{n ∈ p.nodes ∪ p.links} t.resources(n).get(r,0) / N[r]) * W[r] − len(p)/d
//
// Path length is penalized once, with weight 1, uniformly across the
// resource sum — intentional, not a bug.
func ByResource(paths []pptc.Path, t *topology.Topology, w map[string]float64) []int {
	idx := make([]Indexed, len(paths))
	d := t.Diameter()
	for i, p := range paths {
		idx[i] = Indexed{Index: i, Value: ResourceScore(p, t, w, d)}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if idx[a].Value != idx[b].Value {
			return idx[a].Value > idx[b].Value // descending: higher score first
		}
		return idx[a].Index < idx[b].Index
	})

	return extractIndices(idx)
}

// ResourceScore computes score(p) for a single path. d is the
// topology diameter (passed in so callers computing many scores need not
// re-derive it per path).
func ResourceScore(p pptc.Path, t *topology.Topology, w map[string]float64, d int) float64 {
	var sum float64
	for r, weight := range w {
		n := float64(t.TotalResource(r))
		if n == 0 {
			continue
		}
		var maxCap float64
		for _, node := range p.Nodes() {
			if v := t.Resources(node)[r]; v > maxCap {
				maxCap = v
			}
		}
		nodes := p.Nodes()
		for i := 0; i+1 < len(nodes); i++ {
			if v := t.LinkResources(nodes[i], nodes[i+1])[r]; v > maxCap {
				maxCap = v
			}
		}
		sum += (maxCap / n) * weight
	}

	if d > 0 {
		sum -= float64(p.Len()) / float64(d)
	}

	return sum
}

// PathScore computes the SA replace-variant path-score:
// sum_r W[r] * min_{n in p} t.resources(n).get(r,0), with a synthetic
// resource "len" taking the path length. Used once at SA setup to sort
// candidate paths for the pathscore replace policy.
//
// Each resource accumulates from a fresh zero value, which a Go
// map[string]float64 gives for free (see DESIGN.md's open-question
// resolution for the historical source of ambiguity here).
func PathScore(p pptc.Path, t *topology.Topology, w map[string]float64) float64 {
	var sum float64
	for r, weight := range w {
		if r == "len" {
			sum += weight * float64(p.Len())
			continue
		}
		minCap := minOverNodes(p, t, r)
		sum += weight * minCap
	}

	return sum
}

func minOverNodes(p pptc.Path, t *topology.Topology, r string) float64 {
	nodes := p.Nodes()
	if len(nodes) == 0 {
		return 0
	}
	min := t.Resources(nodes[0])[r]
	for _, n := range nodes[1:] {
		if v := t.Resources(n)[r]; v < min {
			min = v
		}
	}

	return min
}

func extractIndices(idx []Indexed) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v.Index
	}

	return out
}

// ByPathScore returns candidate indices ordered descending by PathScore,
// ties broken by original index. Feeds the SA "pathscore" replace policy's
// one-time precomputed sort.
func ByPathScore(paths []pptc.Path, t *topology.Topology, w map[string]float64) []int {
	idx := make([]Indexed, len(paths))
	for i, p := range paths {
		idx[i] = Indexed{Index: i, Value: PathScore(p, t, w)}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if idx[a].Value != idx[b].Value {
			return idx[a].Value > idx[b].Value
		}
		return idx[a].Index < idx[b].Index
	})

	return extractIndices(idx)
}
