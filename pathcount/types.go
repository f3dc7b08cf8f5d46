package pathcount

import (
	"fmt"
	"math"
)

// Kind distinguishes the two Count variants.
type Kind uint8

const (
	// ExactKind means the count fits in an int64 without ever overflowing.
	ExactKind Kind = iota
	// ApproxKind means the count was promoted to float64 at some month.
	ApproxKind
)

// Count is the tagged-sum result of Compute: either an Exact int64 or an
// Approx float64, never both. Implementations should not collapse this
// into an untyped union; callers branch on IsExact (or on the ok result
// of Exact).
type Count struct {
	kind   Kind
	exact  int64
	approx float64
}

// ExactCount wraps an exact int64 result.
func ExactCount(v int64) Count { return Count{kind: ExactKind, exact: v} }

// ApproxCount wraps a promoted float64 result.
func ApproxCount(v float64) Count { return Count{kind: ApproxKind, approx: v} }

// IsExact reports whether this Count carries an exact int64 value.
func (c Count) IsExact() bool { return c.kind == ExactKind }

// Exact returns the exact int64 value and true, or (0, false) if this
// Count is an Approx.
func (c Count) Exact() (int64, bool) {
	if c.kind != ExactKind {
		return 0, false
	}
	return c.exact, true
}

// Float returns this Count's value as a float64 regardless of Kind,
// suitable for tolerance-based comparisons.
func (c Count) Float() float64 {
	if c.kind == ExactKind {
		return float64(c.exact)
	}
	return c.approx
}

// String renders the Count for logs and CLI output. An infinite Approx
// renders as "over max-finite-double".
func (c Count) String() string {
	if c.kind == ExactKind {
		return fmt.Sprintf("%d", c.exact)
	}
	if math.IsInf(c.approx, 1) {
		return "over max-finite-double"
	}
	return fmt.Sprintf("%g", c.approx)
}
