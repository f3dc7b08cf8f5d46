package pathcount

import (
	"math"
	"sort"
)

// Compute computes the number of distinct action sequences over a horizon
// of numMonths months given tenors, via P(m) = sum_{t in tenors U {1}} P(m-t),
// P(0)=1, P(m-t)=0 for t>m. The "U {1}" is a set union, not a second term:
// if 1 is itself a tenor, the single-month wait step and the 1-month bond
// are the same move and contribute once, not twice. Arithmetic starts in
// int64 and promotes, once, to float64 the first time an addition would
// overflow; it then stays in float64 for every subsequent month, including
// onward to +Inf if the count keeps growing past the largest finite double.
func Compute(tenors []int, numMonths int) Count {
	termSet := make(map[int]struct{}, len(tenors)+1)
	termSet[1] = struct{}{}
	for _, t := range tenors {
		termSet[t] = struct{}{}
	}
	terms := make([]int, 0, len(termSet))
	for t := range termSet {
		terms = append(terms, t)
	}
	sort.Ints(terms)

	ints := make([]int64, numMonths+1)
	ints[0] = 1
	var floats []float64
	promoted := false

	for m := 1; m <= numMonths; m++ {
		if !promoted {
			var sum int64
			overflowed := false
			for _, t := range terms {
				if t > m {
					continue
				}
				addend := ints[m-t]
				if addend > math.MaxInt64-sum {
					overflowed = true
					break
				}
				sum += addend
			}
			if !overflowed {
				ints[m] = sum
				continue
			}

			floats = make([]float64, numMonths+1)
			for i := 0; i < m; i++ {
				floats[i] = float64(ints[i])
			}
			promoted = true
		}

		var fsum float64
		for _, t := range terms {
			if t > m {
				continue
			}
			fsum += floats[m-t]
		}
		floats[m] = fsum
	}

	if !promoted {
		return ExactCount(ints[numMonths])
	}
	return ApproxCount(floats[numMonths])
}
