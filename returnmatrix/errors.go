package returnmatrix

import "errors"

// Sentinel errors returned by Construct and AtChecked.
var (
	// ErrShapeMismatch indicates len(grid) != len(tenors)*numMonths.
	ErrShapeMismatch = errors.New("returnmatrix: grid length does not match tenors x months")

	// ErrEmpty indicates a zero-sized matrix was requested (no months or no tenors).
	ErrEmpty = errors.New("returnmatrix: matrix has zero months or zero tenors")

	// ErrTooFewMonths indicates numMonths is smaller than the smallest tenor,
	// making the smallest tenor unpurchasable even at month 0.
	ErrTooFewMonths = errors.New("returnmatrix: horizon shorter than smallest tenor")

	// ErrDuplicateTenor indicates the same tenor value appeared more than once.
	ErrDuplicateTenor = errors.New("returnmatrix: duplicate tenor")

	// ErrNonFiniteReturn indicates an entry g such that 1+g is not finite.
	ErrNonFiniteReturn = errors.New("returnmatrix: non-finite return")

	// ErrOutOfRange indicates a bounds-checked access fell outside [0,n) x [0,M).
	ErrOutOfRange = errors.New("returnmatrix: index out of range")
)
