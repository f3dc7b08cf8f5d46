// Package returnmatrix holds the Return Matrix: an immutable, row-major grid
// of per-month holding-period returns (HPRs), one row per bond tenor.
//
// A Matrix is built once via Construct, validated, and then shared
// read-only by the Top-K Optimiser (package topk) and the Path Counter
// (package pathcount) for the lifetime of a single run. Rows are kept in
// strictly ascending tenor order so that callers can break out of a tenor
// scan at the first tenor exceeding the current month.
package returnmatrix
