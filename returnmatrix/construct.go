package returnmatrix

import (
	"fmt"
	"math"
	"sort"
)

// Construct builds a Matrix from a possibly-unsorted tenor list, a horizon
// length M, and a row-major grid of len(tenors)*M holding-period returns
// (row i corresponds to tenors[i] before sorting).
//
// Construct sorts tenors into strictly ascending order and permutes the
// grid's rows in lock-step, so callers (e.g. csvsource) need not pre-sort.
// sourcePath is an opaque tag carried through untouched, typically the CSV
// file path that produced this matrix; pass "" when there is none.
//
// Errors: ErrEmpty if M==0 or len(tenors)==0; ErrShapeMismatch if
// len(grid) != len(tenors)*M; ErrDuplicateTenor if two tenors are equal;
// ErrTooFewMonths if M is smaller than the smallest tenor; ErrNonFiniteReturn
// if any entry g has 1+g non-finite.
func Construct(tenors []int, numMonths int, grid []float64, sourcePath string) (*Matrix, error) {
	n := len(tenors)
	if numMonths == 0 || n == 0 {
		return nil, ErrEmpty
	}
	if len(grid) != n*numMonths {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShapeMismatch, len(grid), n*numMonths)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return tenors[order[a]] < tenors[order[b]] })

	sortedTenors := make([]int, n)
	for i, src := range order {
		sortedTenors[i] = tenors[src]
		if i > 0 && sortedTenors[i] == sortedTenors[i-1] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTenor, sortedTenors[i])
		}
	}

	if numMonths < sortedTenors[0] {
		return nil, fmt.Errorf("%w: months=%d smallest tenor=%d", ErrTooFewMonths, numMonths, sortedTenors[0])
	}

	sortedGrid := make([]float64, len(grid))
	for dstRow, srcRow := range order {
		srcBase := srcRow * numMonths
		dstBase := dstRow * numMonths
		copy(sortedGrid[dstBase:dstBase+numMonths], grid[srcBase:srcBase+numMonths])
	}

	for i, g := range sortedGrid {
		onePlus := 1 + g
		if math.IsNaN(onePlus) || math.IsInf(onePlus, 0) {
			row, col := i/numMonths, i%numMonths
			return nil, fmt.Errorf("%w: tenor row %d month %d", ErrNonFiniteReturn, row, col)
		}
	}

	return &Matrix{
		tenors:     sortedTenors,
		numMonths:  numMonths,
		grid:       sortedGrid,
		sourcePath: sourcePath,
	}, nil
}
