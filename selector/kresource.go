package selector

import (
	"github.com/katalvlaran/pathsel/app"
	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/score"
	"github.com/katalvlaran/pathsel/topology"
)

// KResourcePaths behaves like KShortestPaths, but orders candidates by
// descending resource score instead of ascending length.
func KResourcePaths(apps []app.Application, k int, w map[string]float64, t *topology.Topology, deps Deps) (*pptc.PPTC, map[pptc.TCID][]int, error) {
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

		order := score.ByResource(paths, t, w)
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
