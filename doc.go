// Package bondladder documents the module as a whole; the executable lives
// in cmd/bondladder. The package computes the top-k highest
// cumulative-return bond laddering sequences over a fixed horizon, given a
// CSV-supplied grid of per-tenor holding-period returns.
//
// The module is organized as a small pipeline of leaf packages:
//
//	returnmatrix/ — the immutable Return Matrix (tenors x months of HPRs)
//	action/       — the Buy/Wait action type and its short/verbose rendering
//	topk/         — the k-way-merge DP optimiser and path reconstruction
//	pathcount/    — the independent action-sequence counter
//	csvsource/    — the CSV loader that builds a Return Matrix from disk
//	prompt/       — the interactive console (readline-based) for k, paths, export
//	report/       — CSV and terminal result rendering
//	runlog/       — process-wide colourized logging
//	cmd/bondladder/ — the command-line entry point wiring all of the above
//
// Data flows CSV -> returnmatrix.Matrix -> topk.Optimise -> report, with
// pathcount running as an independent branch off the same tenor list and
// horizon.
package bondladder
