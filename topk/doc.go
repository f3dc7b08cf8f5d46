// Package topk implements the Top-K Optimiser: a dynamic-programming engine
// augmented with a k-way merge that, for every month m in [0,M], maintains
// the top-k cumulative return factors (CRFs) reachable at that month,
// together with back-pointers sufficient to reconstruct each contributing
// action sequence.
//
// Complexity: O(M*(n+k)*log(n+1)) time, O(M*k) back-pointer memory,
// O(k*(L+1)) rolling CRF memory, where n is the number of tenors and
// L = min(max(tenors), M).
//
// Optimise is the sole entry point. It is single-threaded and synchronous:
// no goroutines, no I/O, all memory allocated within the call and released
// on return.
package topk
