package engine

import (
	"sort"

	"github.com/piwi3910/TrimCut/internal/model"
)

// bin is a board being filled during packing.
type bin struct {
	length float64
	used   float64
	cuts   []model.Cut
}

// needed returns the used length after adding a piece of the given length.
func (b *bin) needed(length, kerf float64) float64 {
	if len(b.cuts) == 0 {
		return length
	}
	return b.used + kerf + length
}

func (b *bin) fits(length, kerf float64) bool {
	return b.needed(length, kerf) <= b.length+epsilon
}

func (b *bin) add(c model.Cut, kerf float64) {
	b.used = b.needed(c.Length, kerf)
	b.cuts = append(b.cuts, c)
}

// recompute rebuilds the used length from the current cuts.
func (b *bin) recompute(kerf float64) {
	b.used = 0
	cuts := b.cuts
	b.cuts = b.cuts[:0:0]
	for _, c := range cuts {
		b.add(c, kerf)
	}
}

// packing is the board list produced for one candidate set of stock lengths.
type packing struct {
	kerf     float64
	lengths  []float64 // stock lengths new boards may use
	bins     []*bin
	unplaced []model.Cut
}

// pack places every measurement using best-fit decreasing. Pieces longer
// than the largest candidate length are split greedily: full-length boards
// are peeled off until the remainder fits.
func pack(measurements []model.Measurement, lengths []float64, kerf float64) *packing {
	sorted := make([]model.Measurement, len(measurements))
	copy(sorted, measurements)
	// Stable: equal lengths keep input order so the plan is deterministic.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length > sorted[j].Length
	})

	p := &packing{kerf: kerf, lengths: lengths}
	largest := maxLength(lengths)

	for _, m := range sorted {
		if m.Length > largest+epsilon {
			p.placeOversize(m, largest)
			continue
		}
		p.place(model.CutFor(m, m.Length))
	}
	return p
}

// placeOversize splits m into full boards of the largest length followed by
// a remainder on the smallest board that holds it.
func (p *packing) placeOversize(m model.Measurement, largest float64) {
	remaining := m.Length
	for remaining > largest+epsilon {
		p.open(model.CutFor(m, largest), largest)
		remaining -= largest
	}
	p.openNew(model.CutFor(m, remaining))
}

// place puts c on the existing board it fits tightest, or on a new board.
func (p *packing) place(c model.Cut) {
	if idx := p.bestFit(c.Length); idx >= 0 {
		p.bins[idx].add(c, p.kerf)
		return
	}
	p.openNew(c)
}

// bestFit returns the index of the board that would have the least space
// left after adding a piece of the given length, or -1 if none fits.
// Boards are searched in creation order and the first wins on ties.
func (p *packing) bestFit(length float64) int {
	bestIdx := -1
	bestRemaining := 0.0
	for i, b := range p.bins {
		if !b.fits(length, p.kerf) {
			continue
		}
		remaining := b.length - b.needed(length, p.kerf)
		if bestIdx < 0 || remaining < bestRemaining {
			bestIdx = i
			bestRemaining = remaining
		}
	}
	return bestIdx
}

// openNew starts a board of the stock length that wastes least for c.
func (p *packing) openNew(c model.Cut) {
	length, ok := smallestHolding(p.lengths, c.Length)
	if !ok {
		p.unplaced = append(p.unplaced, c)
		return
	}
	p.open(c, length)
}

func (p *packing) open(c model.Cut, length float64) {
	b := &bin{length: length}
	b.add(c, p.kerf)
	p.bins = append(p.bins, b)
}

// waste returns the total unused length across all boards.
func (p *packing) waste() float64 {
	var total float64
	for _, b := range p.bins {
		total += b.length - b.used
	}
	return total
}

// boards converts the packing into named model boards.
func (p *packing) boards() []model.Board {
	boards := make([]model.Board, len(p.bins))
	for i, b := range p.bins {
		cuts := make([]model.Cut, len(b.cuts))
		copy(cuts, b.cuts)
		boards[i] = model.Board{
			Name:   model.BoardName(i),
			Length: b.length,
			Cuts:   cuts,
		}
	}
	return boards
}

// smallestHolding returns the stock length with the least waste that can
// hold a piece of the given length on its own.
func smallestHolding(lengths []float64, length float64) (float64, bool) {
	best := 0.0
	found := false
	for _, l := range lengths {
		if !(l+epsilon >= length) {
			continue
		}
		if !found || l-length < best-length {
			best = l
			found = true
		}
	}
	return best, found
}
