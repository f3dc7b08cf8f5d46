package returnmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldorsen/bondladder/returnmatrix"
)

func TestConstruct_SortsTenorsAndPermutesGrid(t *testing.T) {
	t.Parallel()

	// Unsorted tenors [6,3]; row 0 belongs to tenor 6, row 1 to tenor 3.
	tenors := []int{6, 3}
	grid := []float64{
		0.10, 0.11, 0.12, 0.13, // tenor 6 row
		0.20, 0.21, 0.22, 0.23, // tenor 3 row
	}
	m, err := returnmatrix.Construct(tenors, 4, grid, "mem")
	require.NoError(t, err)

	assert.Equal(t, []int{3, 6}, m.Tenors())
	// After sort, row 0 (tenor 3) should be the original row 1.
	assert.InDelta(t, 0.20, m.At(0, 0), 1e-12)
	assert.InDelta(t, 0.10, m.At(1, 0), 1e-12)
	assert.Equal(t, "mem", m.SourcePath())
}

func TestConstruct_Errors(t *testing.T) {
	t.Parallel()

	_, err := returnmatrix.Construct(nil, 4, nil, "")
	assert.ErrorIs(t, err, returnmatrix.ErrEmpty)

	_, err = returnmatrix.Construct([]int{3}, 0, nil, "")
	assert.ErrorIs(t, err, returnmatrix.ErrEmpty)

	_, err = returnmatrix.Construct([]int{3}, 4, []float64{1, 2}, "")
	assert.ErrorIs(t, err, returnmatrix.ErrShapeMismatch)

	_, err = returnmatrix.Construct([]int{3, 3}, 4, make([]float64, 8), "")
	assert.ErrorIs(t, err, returnmatrix.ErrDuplicateTenor)

	_, err = returnmatrix.Construct([]int{6}, 3, make([]float64, 3), "")
	assert.ErrorIs(t, err, returnmatrix.ErrTooFewMonths)

	badGrid := []float64{math.Inf(-1)}
	_, err = returnmatrix.Construct([]int{1}, 1, badGrid, "")
	assert.ErrorIs(t, err, returnmatrix.ErrNonFiniteReturn)
}

func TestAtChecked_OutOfRange(t *testing.T) {
	t.Parallel()

	m, err := returnmatrix.Construct([]int{3}, 3, []float64{0.1, 0.1, 0.1}, "")
	require.NoError(t, err)

	_, err = m.AtChecked(1, 0)
	assert.ErrorIs(t, err, returnmatrix.ErrOutOfRange)

	_, err = m.AtChecked(0, 3)
	assert.ErrorIs(t, err, returnmatrix.ErrOutOfRange)

	v, err := m.AtChecked(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, v, 1e-12)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	m, err := returnmatrix.Construct([]int{3, 6}, 6, make([]float64, 12), "")
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumTenors())
	assert.Equal(t, 6, m.NumMonths())
	assert.Equal(t, 3, m.TenorAt(0))
	assert.Equal(t, 6, m.TenorAt(1))
}
