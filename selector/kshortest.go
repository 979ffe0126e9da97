package selector

import (
	"github.com/katalvlaran/pathsel/app"
	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/score"
)

// KShortestPaths computes, for each TC, the length ordering, masks all
// paths, then unmasks the first min(k, n) indices by length order.
// Returns the mutated PPTC and, per TC, the sort-order array the caller
// may reuse for incremental growth.
func KShortestPaths(apps []app.Application, k int, deps Deps) (*pptc.PPTC, map[pptc.TCID][]int, error) {
	p, err := buildPPTC(apps)
	if err != nil {
		return nil, nil, err
	}

	orders := make(map[pptc.TCID][]int, len(p.TCs()))
	for _, tc := range p.TCs() {
		paths, err := p.AllPaths(tc)
		if err != nil {
			return nil, nil, err
		}

		order := score.ByLength(paths)
		orders[tc] = order

		mask := make([]bool, len(paths))
		for i := range mask {
			mask[i] = true
		}
		limit := k
		if limit > len(order) {
			limit = len(order)
		}
		for _, idx := range order[:limit] {
			mask[idx] = false
		}

		if err := p.Mask(tc, mask); err != nil {
			return nil, nil, err
		}
	}

	return p, orders, nil
}
