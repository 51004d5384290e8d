package engine

import (
	"math"

	"github.com/piwi3910/TrimCut/internal/model"
)

// pairStrategyLimit is the largest number of distinct stock lengths for
// which every pair of lengths is also tried.
const pairStrategyLimit = 4

// enumerateStrategies builds the candidate stock-length sets in evaluation
// order: each single length, then all lengths, then every pair. The order is
// the final tie-break when two candidates waste the same and use as many boards.
func enumerateStrategies(lengths []float64) [][]float64 {
	candidates := make([][]float64, 0, len(lengths)+1)
	for _, l := range lengths {
		candidates = append(candidates, []float64{l})
	}

	all := make([]float64, len(lengths))
	copy(all, lengths)
	candidates = append(candidates, all)

	if len(lengths) <= pairStrategyLimit {
		for i := 0; i < len(lengths); i++ {
			for j := i + 1; j < len(lengths); j++ {
				candidates = append(candidates, []float64{lengths[i], lengths[j]})
			}
		}
	}
	return candidates
}

// selectBest packs every candidate and keeps the one with the least waste,
// then the fewest boards, then the earliest evaluated. A packing that left
// pieces unplaced always loses to one that placed more.
func selectBest(measurements []model.Measurement, candidates [][]float64, kerf float64) (*packing, int) {
	var best *packing
	bestIdx := -1
	for i, c := range candidates {
		p := pack(measurements, c, kerf)
		if best == nil || better(p, best) {
			best = p
			bestIdx = i
		}
	}
	return best, bestIdx
}

// better reports whether a strictly beats b.
func better(a, b *packing) bool {
	if len(a.unplaced) != len(b.unplaced) {
		return len(a.unplaced) < len(b.unplaced)
	}
	wa, wb := a.waste(), b.waste()
	if math.Abs(wa-wb) > epsilon {
		return wa < wb
	}
	return len(a.bins) < len(b.bins)
}
