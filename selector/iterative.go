package selector

import (
	"math"

	"github.com/katalvlaran/pathsel/app"
	"github.com/katalvlaran/pathsel/obslog"
	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/score"
	"github.com/katalvlaran/pathsel/solver"
	"github.com/katalvlaran/pathsel/topology"
)

const selectorNameIterative = "iterative"

// SortMode selects the preorder used by select_iterative.
type SortMode int

const (
	SortByLength SortMode = iota + 1
	SortByResource
)

// iterStartK is the initial per-TC visible-path budget.
const iterStartK = 5

// SelectIterative preorders each TC's candidates by sort_mode, then
// doubles k each round — unmasking the first min(k, n) of the preorder,
// composing and solving — until the iteration budget is exhausted, the
// objective stops improving by more than eps, or every path is enabled.
func SelectIterative(
	apps []app.Application,
	t *topology.Topology,
	netcfg interface{},
	maxIter int,
	eps float64,
	fairness solver.Fairness,
	epochMode solver.EpochComposition,
	sortMode SortMode,
	w map[string]float64,
	compose solver.ComposeFunc,
	deps Deps,
) (Result, error) {
	p, err := buildPPTC(apps)
	if err != nil {
		return Result{}, err
	}

	sw := startStopwatch()

	orders := make(map[pptc.TCID][]int, len(p.TCs()))
	numPaths := make(map[pptc.TCID]int, len(p.TCs()))
	maxPaths := 0
	for _, tc := range p.TCs() {
		paths, err := p.AllPaths(tc)
		if err != nil {
			return Result{}, err
		}

		var order []int
		switch sortMode {
		case SortByResource:
			order = score.ByResource(paths, t, w)
		case SortByLength:
			order = score.ByLength(paths)
		default:
			return Result{}, pathselerr.ErrInvalidConfig
		}
		orders[tc] = order
		numPaths[tc] = len(paths)
		if len(paths) > maxPaths {
			maxPaths = len(paths)
		}
	}

	var (
		best       solver.Opt
		bestChosen *pptc.PPTC
		oldObj     float64
		deltaObj   = math.Inf(1)
		solverTime float64
		k          = iterStartK
	)

	for iter := 0; iter < maxIter && deltaObj > eps && k < maxPaths; iter++ {
		for _, tc := range p.TCs() {
			order := orders[tc]
			n := numPaths[tc]

			mask := make([]bool, n)
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
				return Result{}, err
			}
		}

		opt, err := compose(apps, t, netcfg, fairness, epochMode)
		if err != nil {
			return Result{}, err
		}

		if err := opt.Solve(); err == nil && opt.IsSolved() {
			obj := opt.GetSolvedObjective()
			deltaObj = obj - oldObj
			oldObj = obj
			solverTime += opt.GetTime()
			best = opt
			bestChosen = opt.GetChosenPaths(true)

			deps.observer().Observe(obslog.Event{
				Stage:    selectorNameIterative,
				Iter:     iter,
				K:        k,
				DeltaObj: deltaObj,
				Accepted: true,
			})
		}

		k *= 2
	}

	if best == nil {
		return Result{}, pathselerr.ErrUnsolvable
	}

	wall := sw.elapsed()
	recordTelemetry(deps.Telemetry, selectorNameIterative, wall, solverTime)

	return Result{
		Best:          best,
		Chosen:        bestChosen,
		WallSeconds:   wall,
		SolverSeconds: solverTime,
	}, nil
}
