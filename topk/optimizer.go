package topk

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/haldorsen/bondladder/action"
	"github.com/haldorsen/bondladder/returnmatrix"
)

// Optimise runs the Top-K Optimiser over r for the given k, returning up to
// k CRFs in descending order together with their reconstructed,
// chronologically-ordered action paths.
//
// Edge cases: k == 0 returns an empty OptimalResults and a nil error. A
// negative k, or a matrix with zero tenors or zero months, is rejected with
// ErrInvalidArgument; in practice returnmatrix.Construct already forbids
// zero-sized matrices, so this only guards direct misuse of this API.
//
// Complexity: O(M*(n+k)*log(n+1)) time, O(M*k) back-pointer memory,
// O(k*(L+1)) rolling CRF memory (L = min(max(tenors), M)). The entire
// working set is allocated here and released when Optimise returns; there
// are no goroutines and no suspension points.
func Optimise(r *returnmatrix.Matrix, k int) (OptimalResults, error) {
	if k < 0 {
		return OptimalResults{}, fmt.Errorf("%w: k=%d must be >= 0", ErrInvalidArgument, k)
	}
	if r == nil || r.NumTenors() == 0 || r.NumMonths() == 0 {
		return OptimalResults{}, fmt.Errorf("%w: matrix has zero tenors or zero months", ErrInvalidArgument)
	}
	if k == 0 {
		return OptimalResults{}, nil
	}

	n := r.NumTenors()
	M := r.NumMonths()
	tenors := r.Tenors() // strictly ascending, per returnmatrix.Construct

	maxTenor := tenors[n-1]
	windowSpan := maxTenor
	if M < windowSpan {
		windowSpan = M
	}
	window := windowSpan + 1
	phase := func(m int) int { return m % window }

	crf := make([]float64, window*k)
	for i := range crf {
		crf[i] = negInf
	}
	crf[0] = 1.0 // CRF[phase(0), 0] = 1.0

	decisions := make([]decision, (M+1)*k)
	for i := range decisions {
		decisions[i] = decision{Tenor: unfilledTenor, PrevRank: sentinelPrevRank}
	}
	decisions[0] = decision{Tenor: 0, PrevRank: sentinelPrevRank}

	resultsAt := make([]int, M+1)
	resultsAt[0] = 1

	h := make(candidateHeap, 0, n+1)

	for m := 1; m <= M; m++ {
		base := phase(m) * k
		for rnk := 0; rnk < k; rnk++ {
			crf[base+rnk] = negInf
		}

		h = h[:0]

		prevMonth := m - 1
		waitCRF := crf[phase(prevMonth)*k+0]
		heap.Push(&h, &candidate{crf: waitCRF, tenor: 0, prevRank: 0, prevMonth: prevMonth, factor: 1.0})

		for i := 0; i < n; i++ {
			t := tenors[i]
			if t > m {
				break // tenors ascending: nothing further this month is feasible either
			}
			srcMonth := m - t
			factor := 1 + r.At(i, srcMonth)
			prevCRF := crf[phase(srcMonth)*k+0]
			candCRF := prevCRF * factor
			if !isFinite(candCRF) {
				return OptimalResults{}, newOverflow(candCRF, m)
			}
			heap.Push(&h, &candidate{crf: candCRF, tenor: t, prevRank: 0, prevMonth: srcMonth, factor: factor})
		}

		filled := 0
		for h.Len() > 0 && filled < k {
			top := heap.Pop(&h).(*candidate)
			crf[base+filled] = top.crf
			decisions[m*k+filled] = decision{Tenor: top.tenor, PrevRank: top.prevRank}

			nextRank := top.prevRank + 1
			if nextRank < k {
				nextCRF := crf[phase(top.prevMonth)*k+nextRank]
				if nextCRF != negInf {
					advCRF := nextCRF * top.factor
					if !isFinite(advCRF) {
						return OptimalResults{}, newOverflow(advCRF, m)
					}
					heap.Push(&h, &candidate{crf: advCRF, tenor: top.tenor, prevRank: nextRank, prevMonth: top.prevMonth, factor: top.factor})
				}
			}
			filled++
		}
		resultsAt[m] = filled
	}

	count := resultsAt[M]
	out := OptimalResults{
		CRFs:  make([]float64, count),
		Paths: make([][]action.Action, count),
	}
	finalBase := phase(M) * k
	for rnk := 0; rnk < count; rnk++ {
		out.CRFs[rnk] = crf[finalBase+rnk]
		path, err := reconstructPath(decisions, k, M, rnk)
		if err != nil {
			return OptimalResults{}, err
		}
		out.Paths[rnk] = path
	}
	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
