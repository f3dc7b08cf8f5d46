package returnmatrix

// Matrix is an immutable, row-major grid of holding-period returns indexed
// by (tenor-row, month). Once constructed via Construct, a Matrix is never
// mutated; it is shared read-only by every downstream consumer.
//
// Invariants (enforced by Construct, never re-checked on read):
//   - len(grid) == len(tenors) * numMonths
//   - tenors is strictly ascending with no duplicates
//   - every entry g such that 1+g is finite
//   - numMonths >= tenors[0]
type Matrix struct {
	tenors     []int
	numMonths  int
	grid       []float64
	sourcePath string
}

// NumTenors returns n, the number of distinct bond tenors in the matrix.
func (m *Matrix) NumTenors() int { return len(m.tenors) }

// NumMonths returns M, the horizon length in months.
func (m *Matrix) NumMonths() int { return m.numMonths }

// Tenors returns the strictly ascending tenor list. The returned slice is a
// copy; mutating it does not affect the Matrix.
func (m *Matrix) Tenors() []int {
	out := make([]int, len(m.tenors))
	copy(out, m.tenors)
	return out
}

// SourcePath returns the opaque source tag supplied by the loader, or "" if
// the matrix was constructed directly.
func (m *Matrix) SourcePath() string { return m.sourcePath }

// TenorAt returns the i-th smallest tenor. Callers in hot loops that have
// already range-checked i may use this instead of Tenors() to avoid the
// defensive copy.
func (m *Matrix) TenorAt(i int) int { return m.tenors[i] }
