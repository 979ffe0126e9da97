// Diameter computation via a dense Floyd-Warshall all-pairs shortest path
// pass: fixed k->i->j loop order for deterministic accumulation, +Inf
// sentinel for "no path", O(1) extra space beyond the distance matrix
// itself.
package topology

import "math"

// Diameter returns the longest shortest-path hop count over all ordered
// pairs of nodes. Result is cached until the next AddNode/AddLink call.
//
// Complexity: O(n^3) time, O(n^2) space for the first call; O(1) afterward.
func (t *Topology) Diameter() int {
	t.muDiam.Lock()
	defer t.muDiam.Unlock()

	if t.diamValid {
		return t.diam
	}

	t.diam = t.computeDiameter()
	t.diamValid = true

	return t.diam
}

func (t *Topology) computeDiameter() int {
	t.muVert.RLock()
	ids := make([]int, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	t.muVert.RUnlock()

	n := len(ids)
	if n == 0 {
		return 0
	}

	idx := make(map[int]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	// dist[i][j] in hop count; unweighted since diameter is measured in hops,
	// and path length throughout this module is a node count, not a
	// weighted cost.
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
		}
	}

	t.muLink.RLock()
	for _, l := range t.links {
		fi, ok1 := idx[l.From]
		ti, ok2 := idx[l.To]
		if ok1 && ok2 && fi != ti {
			dist[fi][ti] = 1
		}
	}
	t.muLink.RUnlock()

	var k, i, j int
	var cand float64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if math.IsInf(dist[k][j], 1) {
					continue
				}
				cand = dist[i][k] + dist[k][j]
				if cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	var maxFinite float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !math.IsInf(dist[i][j], 1) && dist[i][j] > maxFinite {
				maxFinite = dist[i][j]
			}
		}
	}

	return int(maxFinite)
}
