package engine

import "sort"

// downgrade shrinks each board to the smallest stock length that is shorter
// than its current length and still holds its cuts.
func downgrade(bins []*bin, lengths []float64) {
	asc := make([]float64, len(lengths))
	copy(asc, lengths)
	sort.Float64s(asc)

	for _, b := range bins {
		for _, l := range asc {
			if l < b.length && l+epsilon >= b.used {
				b.length = l
				break
			}
		}
	}
}
