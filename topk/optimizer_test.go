package topk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldorsen/bondladder/action"
	"github.com/haldorsen/bondladder/returnmatrix"
	"github.com/haldorsen/bondladder/topk"
)

func mustMatrix(t *testing.T, tenors []int, numMonths int, grid []float64) *returnmatrix.Matrix {
	t.Helper()
	m, err := returnmatrix.Construct(tenors, numMonths, grid, "")
	require.NoError(t, err)
	return m
}

func TestOptimise_K0_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	r := mustMatrix(t, []int{3}, 3, []float64{0.01, 0.01, 0.01})
	res, err := topk.Optimise(r, 0)
	require.NoError(t, err)
	assert.Empty(t, res.CRFs)
	assert.Empty(t, res.Paths)
}

func TestOptimise_NegativeK_IsInvalidArgument(t *testing.T) {
	t.Parallel()

	r := mustMatrix(t, []int{3}, 3, []float64{0.01, 0.01, 0.01})
	_, err := topk.Optimise(r, -1)
	assert.ErrorIs(t, err, topk.ErrInvalidArgument)
}

// Boundary: k=1, n=1, M=tenors[0]: crfs=[1+R(0,0)], paths=[[Buy{0,tenors[0]}]].
func TestOptimise_SingleTenorExactHorizon(t *testing.T) {
	t.Parallel()

	r := mustMatrix(t, []int{3}, 3, []float64{0.05, 0.0, 0.0})
	res, err := topk.Optimise(r, 1)
	require.NoError(t, err)
	require.Len(t, res.CRFs, 1)
	assert.InDelta(t, 1.05, res.CRFs[0], 1e-12)

	require.Len(t, res.Paths[0], 1)
	want, err := action.NewBuy(0, 3)
	require.NoError(t, err)
	assert.Equal(t, want, res.Paths[0][0])
}

// All HPRs zero: crfs[0] == 1.0, and the chosen path is a feasible one.
func TestOptimise_AllZeroReturns(t *testing.T) {
	t.Parallel()

	r := mustMatrix(t, []int{2, 5}, 5, make([]float64, 10))
	res, err := topk.Optimise(r, 3)
	require.NoError(t, err)
	require.NotEmpty(t, res.CRFs)
	assert.InDelta(t, 1.0, res.CRFs[0], 1e-12)
}

// Repeatedly buying the same tenor should rank above waiting it out, with
// ranks descending all the way down to the pure-wait path.
func TestOptimise_RepeatedTenorOutranksWaiting(t *testing.T) {
	t.Parallel()

	r := mustMatrix(t, []int{2}, 4, []float64{0.1, 0.1, 0.1, 0.1})
	res, err := topk.Optimise(r, 5)
	require.NoError(t, err)
	require.Len(t, res.CRFs, 5)

	assert.InDelta(t, 1.21, res.CRFs[0], 1e-9)
	assert.InDelta(t, 1.1, res.CRFs[1], 1e-9)

	for i := 1; i < len(res.CRFs); i++ {
		assert.LessOrEqualf(t, res.CRFs[i], res.CRFs[i-1], "crfs must be non-increasing at rank %d", i)
	}

	last := res.CRFs[len(res.CRFs)-1]
	assert.InDelta(t, 1.0, last, 1e-9)
	lastPath := res.Paths[len(res.Paths)-1]
	require.Len(t, lastPath, 1)
	assert.Equal(t, action.Wait, lastPath[0].Kind)
	assert.Equal(t, 4, lastPath[0].WaitLength)
}

// Sustained doubling (1+HPR = 2 every month) overflows float64 at the month
// where 2^m first exceeds the largest finite double, i.e. month 1024.
func TestOptimise_SustainedDoublingOverflow(t *testing.T) {
	t.Parallel()

	grid := make([]float64, 2000)
	for i := range grid {
		grid[i] = 1.0 // factor = 1+1 = 2 every month
	}
	r := mustMatrix(t, []int{1}, 2000, grid)

	_, err := topk.Optimise(r, 1)
	require.Error(t, err)

	var of *topk.Overflow
	require.True(t, errors.As(err, &of), "expected *topk.Overflow, got %T: %v", err, err)
	assert.Equal(t, topk.Above, of.Direction)
	assert.Equal(t, 1024, of.Month)
}

// Two distinct paths tying for the best CRF must both surface in the
// frontier, each with its own reconstructed path.
func TestOptimise_TiedPathsBothSurface(t *testing.T) {
	t.Parallel()

	// tenor row 0 = tenor 3, tenor row 1 = tenor 6.
	tenor3 := []float64{0.10, 0.0, 0.0, 0.10, 0.0, 0.0}
	tenor6 := []float64{0.21, 0.0, 0.0, 0.0, 0.0, 0.0}
	grid := append(append([]float64{}, tenor3...), tenor6...)

	r := mustMatrix(t, []int{3, 6}, 6, grid)
	res, err := topk.Optimise(r, 3)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.CRFs), 2)

	assert.InDelta(t, 1.21, res.CRFs[0], 1e-6)
	assert.InDelta(t, 1.21, res.CRFs[1], 1e-6)

	forms := map[string]bool{}
	for _, p := range res.Paths[:2] {
		forms[action.RenderShortForm(p)] = true
	}
	assert.True(t, forms["b3,b3"], "expected b3,b3 among the tied top paths, got %v", forms)
	assert.True(t, forms["b6"], "expected b6 among the tied top paths, got %v", forms)
}

// Adjacent waits are always merged, never surfaced as two separate
// single-month Wait actions.
func TestOptimise_AdjacentWaitsCompressed(t *testing.T) {
	t.Parallel()

	grid := []float64{0.01, 0.01, 0.01, 0.01, 0.01}
	r := mustMatrix(t, []int{3}, 5, grid)
	res, err := topk.Optimise(r, 1)
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)

	path := res.Paths[0]
	for i := 1; i < len(path); i++ {
		if path[i-1].Kind == action.Wait && path[i].Kind == action.Wait {
			t.Fatalf("found two adjacent Wait actions in reconstructed path: %v", path)
		}
	}
}

// k=1 and k=K on the same input must produce bitwise-equal crfs[0].
func TestOptimise_K1VsLargerK_SameBestCRF(t *testing.T) {
	t.Parallel()

	r := mustMatrix(t, []int{3, 6, 12}, 12, makeRamp(3*12))
	small, err := topk.Optimise(r, 1)
	require.NoError(t, err)
	large, err := topk.Optimise(r, 10)
	require.NoError(t, err)

	require.NotEmpty(t, small.CRFs)
	require.NotEmpty(t, large.CRFs)
	assert.Equal(t, small.CRFs[0], large.CRFs[0])
}

// Invariant: the final frontier (the CRFs reported for month M) is
// non-increasing. Intermediate months are not inspected here.
func TestOptimise_FrontierNonIncreasing(t *testing.T) {
	t.Parallel()

	r := mustMatrix(t, []int{3, 6, 12}, 12, makeRamp(3*12))
	res, err := topk.Optimise(r, 10)
	require.NoError(t, err)
	require.NotEmpty(t, res.CRFs)

	for i := 1; i < len(res.CRFs); i++ {
		assert.LessOrEqual(t, res.CRFs[i], res.CRFs[i-1])
	}
}

func makeRamp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.01 + 0.001*float64(i%7)
	}
	return out
}
