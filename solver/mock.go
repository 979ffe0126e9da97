package solver

import (
	"github.com/katalvlaran/pathsel/pptc"
)

// MockOpt is a deterministic, in-memory stand-in for a real Opt, used by
// selector tests that need a solver returning configurable,
// reproducible objectives. It never touches the filesystem or an actual
// ILP backend; Write/WriteSolution are no-ops that always succeed,
// matching the best-effort, never-fails-selection debug write contract.
type MockOpt struct {
	// Objective is returned by GetSolvedObjective.
	Objective float64
	// Solved is returned by IsSolved; Solve itself always returns nil.
	Solved bool
	// Chosen is returned verbatim by GetChosenPaths.
	Chosen *pptc.PPTC
	// Xps is returned verbatim by GetXPS.
	Xps *XPS
	// TimeSeconds is returned by GetTime.
	TimeSeconds float64

	capped int
}

// NewMockOpt builds a MockOpt that reports the given objective and solved
// state, whether or not Solve has been called.
func NewMockOpt(objective float64, solved bool, chosen *pptc.PPTC, xps *XPS) *MockOpt {
	return &MockOpt{Objective: objective, Solved: solved, Chosen: chosen, Xps: xps}
}

func (m *MockOpt) CapNumPaths(n int) { m.capped = n }

func (m *MockOpt) Solve() error { return nil }

func (m *MockOpt) IsSolved() bool { return m.Solved }

func (m *MockOpt) GetTime() float64 { return m.TimeSeconds }

func (m *MockOpt) GetSolvedObjective() float64 { return m.Objective }

func (m *MockOpt) GetChosenPaths(_ bool) *pptc.PPTC { return m.Chosen }

func (m *MockOpt) GetXPS() *XPS { return m.Xps }

func (m *MockOpt) Write(_ string) error { return nil }

func (m *MockOpt) WriteSolution(_ string) error { return nil }

// Cap exposes the last value passed to CapNumPaths, for test assertions.
func (m *MockOpt) Cap() int { return m.capped }
