package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/piwi3910/TrimCut/internal/model"
)

// MaxBoardsPerPiece caps how many boards a single measurement may be split
// across.
const MaxBoardsPerPiece = 1000

// ErrTooManyBoards is returned with an empty plan when a measurement would
// need more than MaxBoardsPerPiece boards of the longest stock length.
var ErrTooManyBoards = errors.New("measurement needs too many boards")

// boardsFor is the number of stock boards a piece of the given length spans.
// NaN lengths report NaN, which never exceeds the limit.
func boardsFor(length, stock float64) float64 {
	return math.Ceil(length/stock - epsilon)
}

func checkBoardLimit(measurements []model.Measurement, lengths []float64) error {
	longest := maxLength(lengths)
	for _, m := range measurements {
		if n := boardsFor(m.Length, longest); n > MaxBoardsPerPiece {
			return fmt.Errorf("%w: %s (%g\") spans %g boards of %g\", limit %d",
				ErrTooManyBoards, m.ID, m.Length, n, longest, MaxBoardsPerPiece)
		}
	}
	return nil
}

// withinBoardLimit drops candidates whose longest length would split some
// measurement across more than MaxBoardsPerPiece boards. The full set always
// survives once checkBoardLimit has passed, and order is kept.
func withinBoardLimit(candidates [][]float64, measurements []model.Measurement) [][]float64 {
	kept := candidates[:0:0]
	for _, c := range candidates {
		if checkBoardLimit(measurements, c) == nil {
			kept = append(kept, c)
		}
	}
	return kept
}
