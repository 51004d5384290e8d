package engine

import (
	"log/slog"
	"math"

	"github.com/piwi3910/TrimCut/internal/model"
)

// balancedPieces splits length into n = ceil(length/maxStock) pieces of
// equal size rounded to 1/16". The last piece absorbs the rounding residual
// so the pieces always add up to length. When that residual pushes a piece
// past maxStock, n is raised until every piece fits; nil means no split up to
// twice the minimum count fits.
func balancedPieces(length, maxStock float64) []float64 {
	if maxStock <= 0 || length <= 0 {
		return nil
	}
	least := max(int(math.Ceil(length/maxStock-epsilon)), 1)
	for n := least; n <= 2*least; n++ {
		base := model.SnapToSixteenth(length / float64(n))
		last := length - float64(n-1)*base
		if base > maxStock+epsilon || last > maxStock+epsilon || last <= epsilon {
			continue
		}
		pieces := make([]float64, n)
		for i := range pieces {
			pieces[i] = base
		}
		pieces[n-1] = last
		return pieces
	}
	return nil
}

// rebalance re-places oversize measurements that prefer an even split.
// Measurements are handled in input order; each one's greedy cuts are pulled
// off the boards (dropping boards left empty) and its balanced pieces are put
// back with the same best-fit search, opening boards from all stock lengths.
// A measurement with no fitting even split keeps its greedy cuts.
func rebalance(p *packing, measurements []model.Measurement, lengths []float64, log *slog.Logger) {
	maxStock := maxLength(lengths)
	p.lengths = lengths

	for _, m := range measurements {
		if !m.SplitBalanced || m.Length <= maxStock+epsilon {
			continue
		}
		pieces := balancedPieces(m.Length, maxStock)
		if pieces == nil {
			log.Warn("no even split fits the stock, keeping greedy split",
				"measurement", m.ID, "length", m.Length, "max_stock", maxStock)
			continue
		}
		p.remove(m.ID)
		for _, piece := range pieces {
			p.place(model.CutFor(m, piece))
		}
	}
}

// remove deletes every cut of the given measurement and drops empty boards.
func (p *packing) remove(measurementID string) {
	kept := p.bins[:0]
	for _, b := range p.bins {
		cuts := b.cuts[:0]
		for _, c := range b.cuts {
			if c.MeasurementID != measurementID {
				cuts = append(cuts, c)
			}
		}
		if len(cuts) == 0 {
			continue
		}
		if len(cuts) != len(b.cuts) {
			b.cuts = cuts
			b.recompute(p.kerf)
		}
		kept = append(kept, b)
	}
	p.bins = kept

	unplaced := p.unplaced[:0]
	for _, c := range p.unplaced {
		if c.MeasurementID != measurementID {
			unplaced = append(unplaced, c)
		}
	}
	p.unplaced = unplaced
}
