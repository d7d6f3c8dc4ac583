package tvreg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proxman/cppa"
	"github.com/katalvlaran/proxman/manifold"
	"github.com/katalvlaran/proxman/tvreg"
)

// TestFlatten_RoundTrip verifies Flatten/FromFlat preserve layout and
// values.
func TestFlatten_RoundTrip(t *testing.T) {
	e := line(t)
	g, err := tvreg.NewGrid(e, []int{2, 3}, points1D(0, 1, 2, 3, 4, 5))
	require.NoError(t, err)

	flat := tvreg.Flatten(g)
	assert.Equal(t, manifold.Point{0, 1, 2, 3, 4, 5}, flat)

	back, err := tvreg.FromFlat(e, []int{2, 3}, flat)
	require.NoError(t, err)
	assert.Equal(t, values1D(g), values1D(back))

	// The reconstruction owns its storage.
	flat[0] = 99
	assert.Equal(t, 0.0, back.At(0)[0])
}

// TestDataProxes_TouchOnlyTheirCell verifies each data prox updates a
// single block of the flattened iterate.
func TestDataProxes_TouchOnlyTheirCell(t *testing.T) {
	e := line(t)
	f, err := tvreg.NewGrid(e, []int{3}, points1D(10, 20, 30))
	require.NoError(t, err)

	proxes := tvreg.DataProxes(e, f)
	require.Len(t, proxes, 3)

	x := manifold.Point{0, 0, 0}
	got := proxes[1](1, x) // λ=1 ⇒ half way toward the observation
	assert.Equal(t, manifold.Point{0, 0, 0}, x, "input must not be mutated")
	assert.InDelta(t, 0, got[0], 1e-15)
	assert.InDelta(t, 10, got[1], 1e-15)
	assert.InDelta(t, 0, got[2], 1e-15)
}

// TestCouplingProxes_PairCount verifies one prox per (cell, axis)
// forward-neighbor pair: a 2×3 grid has 3 row pairs and 4 column pairs.
func TestCouplingProxes_PairCount(t *testing.T) {
	e := line(t)
	g, err := tvreg.NewGrid(e, []int{2, 3}, points1D(0, 0, 0, 0, 0, 0))
	require.NoError(t, err)

	proxes, err := tvreg.CouplingProxes(e, g, []float64{1})
	require.NoError(t, err)
	assert.Len(t, proxes, 7)

	_, err = tvreg.CouplingProxes(e, g, []float64{1, 2, 3})
	assert.ErrorIs(t, err, tvreg.ErrAlphaLength)
}

// TestNewProblem_GenericSolveDecreasesCost feeds the TV objective to
// the generic CPPA solver and checks the reported cost improves over
// the noisy start.
func TestNewProblem_GenericSolveDecreasesCost(t *testing.T) {
	e := line(t)
	f, err := tvreg.NewGrid(e, []int{4}, points1D(0, 10, 0, 10))
	require.NoError(t, err)

	prob, x0, err := tvreg.NewProblem(e, f, []float64{0.5})
	require.NoError(t, err)
	assert.Equal(t, 4+3, prob.NumProxes(), "4 data terms + 3 coupling terms")

	before, ok := prob.Cost(x0)
	require.True(t, ok)

	opts := cppa.DefaultOptions()
	opts.MaxIterations = 30
	opts.MinimalChange = 0
	x, err := cppa.CyclicProximalPoint(prob, x0, &opts)
	require.NoError(t, err)

	after, ok := prob.Cost(x)
	require.True(t, ok)
	assert.Less(t, after, before, "CPPA must reduce the TV objective")
}

// TestNewProblem_Validation covers the bridge's sentinels.
func TestNewProblem_Validation(t *testing.T) {
	e := line(t)
	f := grid1D(t, 1, 2)

	_, _, err := tvreg.NewProblem(nil, f, nil)
	assert.ErrorIs(t, err, tvreg.ErrNilManifold)

	_, _, err = tvreg.NewProblem(e, nil, nil)
	assert.ErrorIs(t, err, tvreg.ErrNilGrid)

	_, _, err = tvreg.NewProblem(e, f, []float64{1, 2})
	assert.ErrorIs(t, err, tvreg.ErrAlphaLength)
}
