package filtration_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phlite/core"
	"github.com/katalvlaran/phlite/filtration"
)

// pathGraph builds a-b-c.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	return g
}

// hubGraph builds a hub h joined to v1..v5 plus the rim edge v1-v2,
// giving the degree spread h:5, v1,v2:2, v3..v5:1.
func hubGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i <= 5; i++ {
		require.NoError(t, g.AddEdge("h", fmt.Sprintf("v%d", i)))
	}
	require.NoError(t, g.AddEdge("v1", "v2"))

	return g
}

// TestSweep_Errors verifies rejection of invalid inputs and options.
func TestSweep_Errors(t *testing.T) {
	_, err := filtration.Sweep(nil, nil)
	assert.ErrorIs(t, err, filtration.ErrGraphNil)

	g := pathGraph(t)
	deg := g.Degrees()

	_, err = filtration.Sweep(g, deg, filtration.WithStep(0))
	assert.ErrorIs(t, err, filtration.ErrInvalidStep, "step 0 must never be clamped")
	_, err = filtration.Sweep(g, deg, filtration.WithStep(-3))
	assert.ErrorIs(t, err, filtration.ErrInvalidStep)

	_, err = filtration.Sweep(g, deg, filtration.WithDirection(filtration.Direction(42)))
	assert.ErrorIs(t, err, filtration.ErrBadDirection)

	_, err = filtration.Sweep(g, map[string]int{"a": 1, "b": 2})
	assert.ErrorIs(t, err, filtration.ErrMissingDegree, "vertex c has no activation value")
}

// TestSweep_EmptyGraph runs zero iterations on the degenerate empty input.
func TestSweep_EmptyGraph(t *testing.T) {
	res, err := filtration.Sweep(core.NewGraph(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Points)
	assert.Equal(t, 0, res.Step)
}

// TestSweep_FullDegreeSource pins the degree-source invariant: membership
// must read the full-graph activation table, never the reduced graph's own
// degrees. Vertex a has reduced degree 1 but full degree 4, so it must
// survive the t=2 level.
func TestSweep_FullDegreeSource(t *testing.T) {
	reduced := pathGraph(t)
	full := map[string]int{"a": 4, "b": 2, "c": 1}

	res, err := filtration.Sweep(reduced, full)
	require.NoError(t, err)
	require.Len(t, res.Points, 2, "reduced degree range is [1,2]")

	assert.Equal(t, filtration.Point{Threshold: 2, Nodes: 2, Edges: 1}, res.Points[0],
		"a (full degree 4) and b survive at t=2; a's reduced degree 1 must not be consulted")
	assert.Equal(t, filtration.Point{Threshold: 1, Nodes: 3, Edges: 2}, res.Points[1])
}

// TestSweep_SubLevel checks the ascending orientation and its ≤ predicate.
func TestSweep_SubLevel(t *testing.T) {
	g := pathGraph(t)
	res, err := filtration.Sweep(g, g.Degrees(), filtration.WithDirection(filtration.SubLevel))
	require.NoError(t, err)
	require.Len(t, res.Points, 2)

	// t=1 keeps the two endpoints, which are no longer adjacent
	assert.Equal(t, filtration.Point{Threshold: 1, Nodes: 2, Edges: 0}, res.Points[0])
	assert.Equal(t, filtration.Point{Threshold: 2, Nodes: 3, Edges: 2}, res.Points[1])
}

// TestSweep_SuperLevelNesting verifies the nesting invariant: descending
// thresholds only ever grow the filtration graph.
func TestSweep_SuperLevelNesting(t *testing.T) {
	g := hubGraph(t)
	res, err := filtration.Sweep(g, g.Degrees())
	require.NoError(t, err)
	require.Len(t, res.Points, 5, "degree range [1,5] at step 1")

	for i := 1; i < len(res.Points); i++ {
		prev, cur := res.Points[i-1], res.Points[i]
		assert.Equal(t, prev.Threshold-res.Step, cur.Threshold)
		assert.GreaterOrEqual(t, cur.Nodes, prev.Nodes, "node sets must be nested")
		assert.GreaterOrEqual(t, cur.Edges, prev.Edges, "edge sets must be nested")
		assert.GreaterOrEqual(t, cur.Triangles, prev.Triangles)
	}
	last := res.Points[len(res.Points)-1]
	assert.Equal(t, 6, last.Nodes, "the minimum threshold admits every vertex")
	assert.Equal(t, 6, last.Edges)
	assert.Equal(t, 3, last.Triangles, "one triangle h-v1-v2, counted from each corner")
}

// TestSweep_AutoStepPolicy checks step=1 for narrow ranges and
// floor(range/100) once the spread exceeds 100.
func TestSweep_AutoStepPolicy(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 205; i++ {
		require.NoError(t, g.AddEdge("hub", fmt.Sprintf("leaf%03d", i)))
	}
	// degree range is [1, 205] → span 204 → auto step 2
	res, err := filtration.Sweep(g, g.Degrees())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Step)
	assert.Len(t, res.Points, 103)

	res, err = filtration.Sweep(g, g.Degrees(), filtration.WithStep(50))
	require.NoError(t, err)
	assert.Equal(t, 50, res.Step)
	assert.Len(t, res.Points, 5, "205,155,105,55,5")
}

// TestSweep_ParallelMatchesSequential runs the same sweep with a worker
// pool and expects identical, threshold-ordered points.
func TestSweep_ParallelMatchesSequential(t *testing.T) {
	g := hubGraph(t)
	deg := g.Degrees()

	seq, err := filtration.Sweep(g, deg)
	require.NoError(t, err)
	par, err := filtration.Sweep(g, deg, filtration.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seq.Points, par.Points)
}

// TestSweep_OnThresholdOrder asserts the hook observes points in sweep order.
func TestSweep_OnThresholdOrder(t *testing.T) {
	g := hubGraph(t)
	var seen []int
	_, err := filtration.Sweep(g, g.Degrees(),
		filtration.WithWorkers(3),
		filtration.WithOnThreshold(func(p filtration.Point) { seen = append(seen, p.Threshold) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, seen)
}

// TestSweep_Cancellation halts promptly on a cancelled context.
func TestSweep_Cancellation(t *testing.T) {
	g := hubGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := filtration.Sweep(g, g.Degrees(), filtration.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
