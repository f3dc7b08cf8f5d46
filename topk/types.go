package topk

import (
	"math"

	"github.com/haldorsen/bondladder/action"
)

// negInf is the sole sentinel for unfilled CRF ranks. Every genuine
// candidate is a product of finite positive factors, so the only way a
// true candidate equals negInf is via overflow, which is caught separately
// before it is ever written into the frontier.
var negInf = math.Inf(-1)

// sentinelPrevRank marks "no predecessor": the bottom of the backward walk.
const sentinelPrevRank = -1

// unfilledTenor marks a Decisions slot that was never written.
const unfilledTenor = -1

// OptimalResults is the output of Optimise: up to k CRFs in descending
// order, each paired with its reconstructed, chronologically-ordered
// Action sequence.
type OptimalResults struct {
	CRFs  []float64
	Paths [][]action.Action
}

// decision is a back-pointer: Tenor==0 means a Wait step was taken to reach
// this rank; Tenor>0 names the bond tenor that matured here. PrevRank
// indexes the frontier at the predecessor month this rank extends.
type decision struct {
	Tenor    int
	PrevRank int
}
