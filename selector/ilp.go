package selector

import (
	"github.com/katalvlaran/pathsel/app"
	"github.com/katalvlaran/pathsel/obslog"
	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/solver"
	"github.com/katalvlaran/pathsel/topology"
)

const selectorNameILP = "ilp"

// SelectILP composes applications into a single optimization, adds a
// global cap equal to (num_nodes-1)^2 * k total chosen paths, solves, and
// propagates the solver's chosen-path mask into PPTC. Fails with
// ErrUnsolvable if the solver returns no solution.
func SelectILP(
	apps []app.Application,
	t *topology.Topology,
	netcfg interface{},
	k int,
	fairness solver.Fairness,
	epochMode solver.EpochComposition,
	compose solver.ComposeFunc,
	deps Deps,
) (Result, error) {
	if len(apps) == 0 {
		return Result{}, pathselerr.ErrNoApplications
	}

	sw := startStopwatch()

	opt, err := compose(apps, t, netcfg, fairness, epochMode)
	if err != nil {
		return Result{}, err
	}

	globalCap := (t.NumNodes() - 1) * (t.NumNodes() - 1) * k
	opt.CapNumPaths(globalCap)

	if err := opt.Solve(); err != nil {
		return Result{}, err
	}
	if !opt.IsSolved() {
		deps.observer().Observe(obslog.Event{Stage: selectorNameILP, K: k, Message: "solver returned no solution"})

		return Result{}, pathselerr.ErrUnsolvable
	}

	chosen := opt.GetChosenPaths(false)

	wall := sw.elapsed()
	solverTime := opt.GetTime()
	recordTelemetry(deps.Telemetry, selectorNameILP, wall, solverTime)
	deps.observer().Observe(obslog.Event{Stage: selectorNameILP, K: k, Accepted: true, Message: "ilp solved"})

	return Result{
		Best:          opt,
		Chosen:        chosen,
		WallSeconds:   wall,
		SolverSeconds: solverTime,
	}, nil
}
