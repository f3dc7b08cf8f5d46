// Package csvsource loads a returnmatrix.Matrix from a CSV (or plain-text,
// comma-delimited) file on disk.
//
// The accepted layout is a header row ("Tenor", followed by the consecutive
// month indices 0..M-1) and one data row per bond tenor ("tenor", followed
// by M holding-period returns). Rows need not be pre-sorted by tenor; the
// loader delegates sorting and shape validation to returnmatrix.Construct.
// Row-level numeric parsing is fanned out across a small bounded worker
// pool, since rows are independent once the header has fixed M.
package csvsource
