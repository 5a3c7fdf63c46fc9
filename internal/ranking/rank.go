// Package ranking computes result rankings, percentiles, aggregate
// statistics and data-integrity findings over in-memory academic snapshots.
// Every operation is pure and total: inputs are never mutated, and
// degenerate input yields empty output rather than an error.
package ranking

import "sort"

// DenseRanks assigns dense ranks to n items scored by score. The highest
// score receives rank 1, tied scores share a rank, and the next distinct
// score receives the previous rank plus one (1-1-2, never 1-1-3). The
// returned slice is aligned with the input order, not sorted order.
func DenseRanks(n int, score func(i int) float64) []int {
	if n == 0 {
		return nil
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return score(order[i]) > score(order[j])
	})

	ranks := make([]int, n)
	rank := 0
	var last float64
	for pos, idx := range order {
		s := score(idx)
		if pos == 0 || s != last {
			rank++
			last = s
		}
		ranks[idx] = rank
	}
	return ranks
}
