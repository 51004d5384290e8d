package model

import "math"

// PurchaseEstimate holds a quick linear-footage estimate for one stock length.
type PurchaseEstimate struct {
	TotalLinear       float64 `json:"total_linear"`        // Sum of measurements plus one kerf each (inches)
	TotalLinearFeet   float64 `json:"total_linear_feet"`   // TotalLinear / 12
	StockLength       float64 `json:"stock_length"`        // Length of one board (inches)
	BoardsNeededExact float64 `json:"boards_needed_exact"` // Exact fractional number of boards
	BoardsNeededMin   int     `json:"boards_needed_min"`   // Ceiling of exact
	BoardsWithWaste   int     `json:"boards_with_waste"`   // Recommended boards including waste factor
	WastePercent      float64 `json:"waste_percent"`       // Waste factor applied (e.g., 10 for 10%)
	Kerf              float64 `json:"kerf"`
}

// CalculatePurchaseEstimate computes a lower bound on boards to buy for a
// measurement list without running the packer. It ignores how pieces nest on
// boards, so it is only a sanity check against the real plan.
func CalculatePurchaseEstimate(measurements []Measurement, stockLength, kerf, wastePercent float64) PurchaseEstimate {
	var total float64
	for _, m := range measurements {
		total += m.Length + kerf
	}

	if stockLength <= 0 {
		return PurchaseEstimate{
			TotalLinear:     total,
			TotalLinearFeet: total / 12.0,
			WastePercent:    wastePercent,
			Kerf:            kerf,
		}
	}

	exact := total / stockLength
	minBoards := int(math.Ceil(exact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minBoards {
		withWaste = minBoards
	}

	return PurchaseEstimate{
		TotalLinear:       total,
		TotalLinearFeet:   total / 12.0,
		StockLength:       stockLength,
		BoardsNeededExact: exact,
		BoardsNeededMin:   minBoards,
		BoardsWithWaste:   withWaste,
		WastePercent:      wastePercent,
		Kerf:              kerf,
	}
}
