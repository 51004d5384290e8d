package model

import "sort"

// Offcut represents a usable remnant left on a board after cutting.
type Offcut struct {
	BoardName   string  `json:"board_name"`
	BoardIndex  int     `json:"board_index"`
	BoardLength float64 `json:"board_length"`
	Length      float64 `json:"length"` // inches, after one kerf for the last cut
}

// DetectOffcuts lists board remnants at least minLength long, longest first.
// The remnant is measured after the saw takes one more kerf off the last cut.
func DetectOffcuts(result PlanResult, minLength float64) []Offcut {
	var offcuts []Offcut
	for i, b := range result.Boards {
		rem := b.Waste(result.Kerf)
		if len(b.Cuts) > 0 {
			rem -= result.Kerf
		}
		if rem <= 0 || rem < minLength {
			continue
		}
		offcuts = append(offcuts, Offcut{
			BoardName:   b.Name,
			BoardIndex:  i,
			BoardLength: b.Length,
			Length:      rem,
		})
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Length > offcuts[j].Length
	})
	return offcuts
}

// TotalOffcutLength returns the combined length of all offcuts.
func TotalOffcutLength(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Length
	}
	return total
}
