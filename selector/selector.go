// Package selector implements the six top-level selection strategies:
// choose_rand, k_shortest_paths, k_resource_paths,
// select_ilp, select_iterative, select_sa. ChooseRand, KShortestPaths and
// KResourcePaths only set PPTC masks and never call the solver; SelectILP,
// SelectIterative and SelectSA drive the opaque solver contract in package
// solver and return (best Opt, chosen PPTC, wall time, solver time).
//
// Each strategy is its own exported function; they share the small
// helpers in this file (Deps, buildPPTC, stopwatch, recordTelemetry).
package selector

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/pathsel/app"
	"github.com/katalvlaran/pathsel/obslog"
	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/solver"
	"github.com/katalvlaran/pathsel/telemetry"
)

// Result is the common selector return shape.
type Result struct {
	Best          solver.Opt
	Chosen        *pptc.PPTC
	WallSeconds   float64
	SolverSeconds float64
}

// Deps bundles the ambient collaborators every selector accepts: a seeded
// RNG handle, an injectable observer, and an optional telemetry
// recorder. Zero-value Deps is usable: RNG defaults from Seed, Observer
// defaults to obslog.Noop, Telemetry defaults to nil (a documented no-op).
type Deps struct {
	Seed      int64
	Observer  obslog.Observer
	Telemetry *telemetry.Recorder
}

func (d Deps) rng() *rand.Rand {
	return rand.New(rand.NewSource(seedOrDefault(d.Seed)))
}

func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return 1
	}

	return seed
}

func (d Deps) observer() obslog.Observer {
	if d.Observer == nil {
		return obslog.Noop{}
	}

	return d.Observer
}

// buildPPTC constructs a PPTC from every application's traffic classes at
// selector entry. Returns ErrNoApplications if apps is empty.
func buildPPTC(apps []app.Application) (*pptc.PPTC, error) {
	if len(apps) == 0 {
		return nil, pathselerr.ErrNoApplications
	}

	return pptc.FromTrafficClasses(app.AllTrafficClasses(apps)), nil
}

// stopwatch measures wall time via time.Now/time.Since.
type stopwatch struct {
	start time.Time
}

func startStopwatch() stopwatch { return stopwatch{start: time.Now()} }

func (s stopwatch) elapsed() float64 { return time.Since(s.start).Seconds() }

// recordTelemetry reports wall/solver seconds for selectorName, tolerating
// a nil Recorder.
func recordTelemetry(t *telemetry.Recorder, selectorName string, wall, solverTime float64) {
	t.ObserveWall(selectorName, wall)
	t.ObserveSolver(selectorName, solverTime)
}
