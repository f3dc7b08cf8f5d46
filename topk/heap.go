package topk

// candidate is one entry in the per-month k-way merge: a CRF reachable at
// the current month via either waiting or a bond of the given tenor
// maturing here, together with enough information to advance the merge
// (pull the next-best successor from the same per-tenor stream).
type candidate struct {
	crf       float64
	tenor     int // 0 = wait
	prevRank  int
	prevMonth int
	factor    float64 // 1.0 for wait; (1+R(row,start)) for a buy
}

// candidateHeap is a max-heap of *candidate ordered by crf descending. It
// implements container/heap.Interface; callers drive it with heap.Init,
// heap.Push, and heap.Pop. At most n+1 per-tenor streams feed this heap at
// any one time, so it never grows past size n+1+k in the steady state.
type candidateHeap []*candidate

func (h candidateHeap) Len() int { return len(h) }

// Less reports whether i should sort before j in a max-heap: i.e. whether
// i's crf is strictly greater than j's.
func (h candidateHeap) Less(i, j int) bool { return h[i].crf > h[j].crf }

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be of type *candidate.
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(*candidate)) }

// Pop is called by heap.Pop; returns the element with the largest crf.
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
