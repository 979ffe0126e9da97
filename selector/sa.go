package selector

import (
	"math"

	"github.com/katalvlaran/pathsel/app"
	"github.com/katalvlaran/pathsel/expel"
	"github.com/katalvlaran/pathsel/obslog"
	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pathtree"
	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/replace"
	"github.com/katalvlaran/pathsel/rng"
	"github.com/katalvlaran/pathsel/score"
	"github.com/katalvlaran/pathsel/solver"
	"github.com/katalvlaran/pathsel/topology"
)

const selectorNameSA = "sa"

// saTCState bundles the per-TC state select_sa needs across both phases:
// the candidate count, the replace preorder, the pathtree (only built for
// replace.PathTree), and the explored-set scoped to this one invocation —
// a fresh Explored is built per SelectSA call and never shared across runs.
type saTCState struct {
	numCandidates int
	order         []int
	tree          *pathtree.PathTree
	explored      *replace.Explored
}

// SelectSA runs simulated annealing over per-TC path masks: phase 0
// seeds a feasible k-shortest mask per TC (re-proposing with expel=all on
// failure, up to max_iter times), then phase 1 anneals by mutating each
// TC's mask via expel+replace and accepting under the hill-climbing rule
// P = 1 if old <= new else 0 — not the classical Metropolis form; the
// temperature t_start*c^k_iter is computed each iteration but this
// acceptance rule does not use it.
func SelectSA(
	apps []app.Application,
	t *topology.Topology,
	netcfg interface{},
	k int,
	maxIter int,
	tStart float64,
	c float64,
	fairness solver.Fairness,
	epochMode solver.EpochComposition,
	expelMode expel.Mode,
	replaceMode replace.Mode,
	w map[string]float64,
	compose solver.ComposeFunc,
	deps Deps,
) (Result, error) {
	p, err := buildPPTC(apps)
	if err != nil {
		return Result{}, err
	}

	sw := startStopwatch()
	r := deps.rng()

	tcs := p.TCs()
	states := make(map[pptc.TCID]*saTCState, len(tcs))
	bestPaths := make(map[pptc.TCID][]bool, len(tcs))

	for _, tc := range tcs {
		paths, err := p.AllPaths(tc)
		if err != nil {
			return Result{}, err
		}

		st := &saTCState{
			numCandidates: len(paths),
			explored:      replace.NewExplored(),
		}
		if replaceMode == replace.PathScore {
			st.order = score.ByPathScore(paths, t, w)
		} else {
			st.order = score.ByLength(paths)
		}
		if replaceMode == replace.PathTree {
			tree, err := pathtree.Build(paths)
			if err != nil {
				return Result{}, err
			}
			st.tree = tree
		}
		states[tc] = st

		seedOrder := st.order
		if replaceMode == replace.PathScore {
			seedOrder = score.ByLength(paths)
		}

		mask := make([]bool, len(paths))
		for i := range mask {
			mask[i] = true
		}
		limit := k
		if limit > len(seedOrder) {
			limit = len(seedOrder)
		}
		for _, idx := range seedOrder[:limit] {
			mask[idx] = false
		}

		if err := p.Mask(tc, mask); err != nil {
			return Result{}, err
		}
		st.explored.Append(mask)
		bestPaths[tc] = append([]bool(nil), mask...)
	}

	var (
		bestOpt    solver.Opt
		solverTime float64
	)

	// Phase 0 — feasibility.
	opt, err := compose(apps, t, netcfg, fairness, epochMode)
	if err != nil {
		return Result{}, err
	}
	if err := opt.Solve(); err == nil && opt.IsSolved() {
		bestOpt = opt
		solverTime += opt.GetTime()
	} else {
		feasible := false
		for attempt := 0; attempt < maxIter; attempt++ {
			for _, tc := range tcs {
				st := states[tc]
				mask, err := p.GetMask(tc)
				if err != nil {
					return Result{}, err
				}
				newMask := append([]bool(nil), mask...)

				var xps *solver.XPS
				if opt != nil {
					xps = opt.GetXPS()
				}
				if err := expel.Apply(expel.All, newMask, xps, tc, rng.Derive(r, uint64(tc))); err != nil {
					return Result{}, err
				}
				if err := replace.Apply(replaceMode, newMask, k, st.explored, st.order, st.tree, rng.Derive(r, uint64(tc))); err != nil {
					return Result{}, err
				}
				if err := p.Mask(tc, newMask); err != nil {
					return Result{}, err
				}
				st.explored.Append(newMask)
				bestPaths[tc] = append([]bool(nil), newMask...)
			}

			opt, err = compose(apps, t, netcfg, fairness, epochMode)
			if err != nil {
				return Result{}, err
			}
			if err := opt.Solve(); err == nil && opt.IsSolved() {
				bestOpt = opt
				solverTime += opt.GetTime()
				feasible = true
				break
			}
		}
		if !feasible {
			return Result{}, pathselerr.ErrUnsolvable
		}
	}

	// Phase 1 — annealing.
	for kIter := 1; kIter <= maxIter; kIter++ {
		temperature := tStart * math.Pow(c, float64(kIter))

		lastMasks := make(map[pptc.TCID][]bool, len(tcs))
		var lastXPS *solver.XPS
		if bestOpt != nil {
			lastXPS = bestOpt.GetXPS()
		}

		for _, tc := range tcs {
			st := states[tc]
			if k >= st.numCandidates {
				continue
			}

			newMask := append([]bool(nil), bestPaths[tc]...)
			if err := expel.Apply(expelMode, newMask, lastXPS, tc, rng.Derive(r, uint64(tc))); err != nil {
				return Result{}, err
			}
			if err := replace.Apply(replaceMode, newMask, k, st.explored, st.order, st.tree, rng.Derive(r, uint64(tc))); err != nil {
				return Result{}, err
			}
			if err := p.Mask(tc, newMask); err != nil {
				return Result{}, err
			}
			st.explored.Append(newMask)
			lastMasks[tc] = newMask
		}

		if len(lastMasks) == 0 {
			continue
		}

		candidate, err := compose(apps, t, netcfg, fairness, epochMode)
		if err != nil {
			return Result{}, err
		}
		if err := candidate.Solve(); err != nil || !candidate.IsSolved() {
			continue
		}
		solverTime += candidate.GetTime()

		oldObj := bestOpt.GetSolvedObjective()
		newObj := candidate.GetSolvedObjective()

		var acceptProb float64
		if oldObj <= newObj {
			acceptProb = 1
		}
		_ = temperature // documented future hyperparameter, unused by the hill-climbing rule.

		u := r.Float64()
		accepted := u <= acceptProb
		if accepted {
			bestOpt = candidate
			for tc, m := range lastMasks {
				bestPaths[tc] = m
			}
			deps.Telemetry.Accept()
		} else {
			deps.Telemetry.Reject()
		}

		deps.observer().Observe(obslog.Event{
			Stage:    selectorNameSA,
			Iter:     kIter,
			K:        k,
			DeltaObj: newObj - oldObj,
			Accepted: accepted,
		})
	}

	for _, tc := range tcs {
		if err := p.Mask(tc, bestPaths[tc]); err != nil {
			return Result{}, err
		}
	}

	wall := sw.elapsed()
	recordTelemetry(deps.Telemetry, selectorNameSA, wall, solverTime)

	return Result{
		Best:          bestOpt,
		Chosen:        p,
		WallSeconds:   wall,
		SolverSeconds: solverTime,
	}, nil
}
