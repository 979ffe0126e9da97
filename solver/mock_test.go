package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockOptReportsConfiguredState(t *testing.T) {
	xps := NewXPS()

	m := NewMockOpt(42.0, true, nil, xps)
	m.CapNumPaths(8)

	require.NoError(t, m.Solve())
	assert.True(t, m.IsSolved())
	assert.Equal(t, 42.0, m.GetSolvedObjective())
	assert.Equal(t, 8, m.Cap())
	assert.Same(t, xps, m.GetXPS())
	assert.NoError(t, m.Write("/tmp/whatever"))
	assert.NoError(t, m.WriteSolution("/tmp/whatever"))
}

func TestFlowVarVariants(t *testing.T) {
	c := Const(3)
	assert.Equal(t, 3.0, c.Value())
	assert.False(t, c.IsDecision())

	d := Decision(7)
	assert.Equal(t, 7.0, d.Value())
	assert.True(t, d.IsDecision())
}

func TestXPSSetAndRow(t *testing.T) {
	xps := NewXPS()
	xps.Set(1, 2, []FlowVar{Decision(1), Decision(2)})

	row := xps.Row(1, 2)
	require.Len(t, row, 2)
	assert.Equal(t, 1.0, row[0].Value())

	assert.Nil(t, xps.Row(1, 99))
	assert.Nil(t, xps.Row(2, 0))
}

func TestFairnessAndEpochCompositionStrings(t *testing.T) {
	assert.Equal(t, "weighted", Weighted.String())
	assert.Equal(t, "proportional_fair", ProportionalFair.String())
	assert.Equal(t, "max_min", MaxMin.String())
	assert.Equal(t, "worst", Worst.String())
	assert.Equal(t, "average", Average.String())
	assert.Equal(t, "sum", Sum.String())
	assert.Equal(t, "unknown_fairness", Fairness(99).String())
}
