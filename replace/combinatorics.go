// Combinatorics helpers for the next_sorted replace policy: lexicographic
// enumeration of r-subsets of an ordered universe, advanced one step at a
// time so the caller can test each candidate mask against the explored set
// before committing to it. Uses explicit, allocation-light index-array
// state over recursive generators.
package replace

// combinationIter enumerates r-combinations of positions [0, m) in
// strictly ascending lexicographic order. Call next() repeatedly; it
// returns (positions, true) for each combination, then (nil, false) once
// exhausted.
type combinationIter struct {
	m, r    int
	current []int
	started bool
	done    bool
}

func newCombinationIter(m, r int) *combinationIter {
	if r < 0 || r > m {
		return &combinationIter{m: m, r: r, done: true}
	}

	return &combinationIter{m: m, r: r}
}

func (c *combinationIter) next() ([]int, bool) {
	if c.done {
		return nil, false
	}

	if !c.started {
		c.started = true
		c.current = make([]int, c.r)
		for i := range c.current {
			c.current[i] = i
		}
		if c.r == 0 {
			c.done = true // only one (empty) combination exists; return it then stop
			return append([]int(nil), c.current...), true
		}

		return append([]int(nil), c.current...), true
	}

	// Find the rightmost index that can be incremented.
	i := c.r - 1
	for i >= 0 && c.current[i] == c.m-c.r+i {
		i--
	}
	if i < 0 {
		c.done = true
		return nil, false
	}

	c.current[i]++
	for j := i + 1; j < c.r; j++ {
		c.current[j] = c.current[j-1] + 1
	}

	return append([]int(nil), c.current...), true
}
