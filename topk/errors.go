package topk

import (
	"errors"
	"fmt"
	"math"
)

// Direction classifies which way a CRF product overflowed.
type Direction string

const (
	// Above means the non-finite candidate's sign was non-negative.
	Above Direction = "above"
	// Below means the non-finite candidate's sign was negative.
	Below Direction = "below"
)

// Overflow reports that a candidate CRF product was not finite. Bound holds
// the signed max-finite-double the implementation substitutes when
// reporting the failure; Month is the first month at which this occurred.
type Overflow struct {
	Direction Direction
	Month     int
	Bound     float64
}

func (o *Overflow) Error() string {
	return fmt.Sprintf("topk: CRF overflow %s at month %d (bound %v)", o.Direction, o.Month, o.Bound)
}

func directionOf(v float64) Direction {
	if math.Signbit(v) {
		return Below
	}
	return Above
}

func newOverflow(v float64, month int) *Overflow {
	dir := directionOf(v)
	bound := math.MaxFloat64
	if dir == Below {
		bound = -math.MaxFloat64
	}
	return &Overflow{Direction: dir, Month: month, Bound: bound}
}

// Sentinel errors for the optimiser's public API.
var (
	// ErrInvalidArgument indicates a negative k or a matrix with zero
	// tenors/months was supplied directly to Optimise.
	ErrInvalidArgument = errors.New("topk: invalid argument")

	// ErrInternalInvariant indicates path reconstruction hit an unfilled
	// Decisions sentinel, which must not happen for any rank < results
	// at month M. This signals a bug in the optimiser, not bad input.
	ErrInternalInvariant = errors.New("topk: internal invariant violated during reconstruction")
)
