package selector

import (
	"github.com/katalvlaran/pathsel/app"
	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/rng"
)

// ChooseRand picks, for each TC with total count n: if n > k, k distinct
// indices uniformly at random without replacement, masking all others;
// otherwise it clears the mask entirely. Selection is uniform over the
// C(n,k) combinations of candidates.
//
// choose_rand is a pure mask mutator — it never invokes the solver — so it
// returns the built PPTC directly rather than the full selector.Result
// shape used by select_ilp/select_iterative/select_sa.
func ChooseRand(apps []app.Application, k int, deps Deps) (*pptc.PPTC, error) {
	p, err := buildPPTC(apps)
	if err != nil {
		return nil, err
	}

	r := deps.rng()
	for _, tc := range p.TCs() {
		n, err := p.NumPaths(tc, true)
		if err != nil {
			return nil, err
		}

		mask := make([]bool, n)
		if n > k {
			chosen := rng.ChooseK(n, k, r)
			for i := range mask {
				mask[i] = true
			}
			for _, idx := range chosen {
				mask[idx] = false
			}
		}
		// n <= k: mask stays all-false (fully visible).

		if err := p.Mask(tc, mask); err != nil {
			return nil, err
		}
	}

	return p, nil
}
