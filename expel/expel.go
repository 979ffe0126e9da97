// Package expel implements the four expel policies of the Expel/Replace
// kernel: per-traffic-class mask mutators driven by the
// solver's flow-variable tensor, treating flow values as plain float64s
// and threading a *rand.Rand through every random decision rather than
// reaching for the process-wide generator.
package expel

import (
	"math/rand"

	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pptc"
	"github.com/katalvlaran/pathsel/solver"
)

// Mode is the closed ExpelMode enum: no_flow=1, inverse_flow=2,
// random=3, all=4.
type Mode int

const (
	NoFlow      Mode = 1
	InverseFlow Mode = 2
	Random      Mode = 3
	All         Mode = 4
)

func (m Mode) String() string {
	switch m {
	case NoFlow:
		return "no_flow"
	case InverseFlow:
		return "inverse_flow"
	case Random:
		return "random"
	case All:
		return "all"
	default:
		return "unknown_expel_mode"
	}
}

// Apply mutates mask in place according to mode, using xps for the
// flow-dependent policies (no_flow, inverse_flow). tc identifies the
// traffic class within xps.
//
// Invariant preserved: no_flow and inverse_flow index
// into xps by a running counter over CURRENTLY VISIBLE paths (mask[i] ==
// false before this call), not by raw mask index — visible paths map
// densely to solver variables.
func Apply(mode Mode, mask []bool, xps *solver.XPS, tcID pptc.TCID, r *rand.Rand) error {
	switch mode {
	case NoFlow, InverseFlow:
		return applyFlowBased(mode, mask, xps, tcID, r)
	case Random:
		applyRandom(mask, r)
		return nil
	case All:
		applyAll(mask)
		return nil
	default:
		return pathselerr.ErrInvalidConfig
	}
}

func applyAll(mask []bool) {
	for i := range mask {
		mask[i] = true
	}
}

func applyRandom(mask []bool, r *rand.Rand) {
	for i := range mask {
		if mask[i] {
			continue
		}
		if r.Float64() < 0.5 {
			mask[i] = true
		}
	}
}

func applyFlowBased(mode Mode, mask []bool, xps *solver.XPS, tcID pptc.TCID, r *rand.Rand) error {
	column := 0
	for i := range mask {
		if mask[i] {
			continue
		}
		row := xps.Row(tcID, column)
		column++

		switch mode {
		case NoFlow:
			if allZero(row) {
				mask[i] = true
			}
		case InverseFlow:
			f := meanDecisionFlow(row)
			if r.Float64() < 1-f {
				mask[i] = true
			}
		}
	}

	return nil
}

func allZero(row []solver.FlowVar) bool {
	for _, v := range row {
		if v.Value() != 0 {
			return false
		}
	}

	return true
}

func meanDecisionFlow(row []solver.FlowVar) float64 {
	if len(row) == 0 {
		return 0
	}
	var sum float64
	for _, v := range row {
		if v.IsDecision() {
			sum += v.Value()
		}
	}

	return sum / float64(len(row))
}
