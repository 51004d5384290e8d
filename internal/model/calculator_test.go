package model

import (
	"math"
	"testing"
)

func TestCalculatePurchaseEstimate(t *testing.T) {
	ms := make([]Measurement, 9)
	for i := range ms {
		ms[i] = Measurement{ID: BoardName(i), Length: 50}
	}

	est := CalculatePurchaseEstimate(ms, 96, 0, 10)
	if est.TotalLinear != 450 {
		t.Errorf("expected 450 linear inches, got %f", est.TotalLinear)
	}
	if est.TotalLinearFeet != 37.5 {
		t.Errorf("expected 37.5 feet, got %f", est.TotalLinearFeet)
	}
	if math.Abs(est.BoardsNeededExact-4.6875) > 1e-9 {
		t.Errorf("expected 4.6875 boards, got %f", est.BoardsNeededExact)
	}
	if est.BoardsNeededMin != 5 {
		t.Errorf("expected 5 boards minimum, got %d", est.BoardsNeededMin)
	}
	if est.BoardsWithWaste != 6 {
		t.Errorf("expected 6 boards with waste, got %d", est.BoardsWithWaste)
	}
}

func TestCalculatePurchaseEstimateIncludesKerf(t *testing.T) {
	ms := []Measurement{{ID: "a", Length: 40}, {ID: "b", Length: 30}}
	est := CalculatePurchaseEstimate(ms, 96, 0.125, 0)
	if est.TotalLinear != 70.25 {
		t.Errorf("expected 70.25, got %f", est.TotalLinear)
	}
	if est.BoardsNeededMin != 1 || est.BoardsWithWaste != 1 {
		t.Errorf("expected 1 board, got %d/%d", est.BoardsNeededMin, est.BoardsWithWaste)
	}
}

func TestCalculatePurchaseEstimateNoStock(t *testing.T) {
	est := CalculatePurchaseEstimate([]Measurement{{ID: "a", Length: 40}}, 0, 0, 10)
	if est.BoardsNeededMin != 0 || est.BoardsWithWaste != 0 {
		t.Errorf("expected no board counts without stock, got %+v", est)
	}
	if est.TotalLinear != 40 {
		t.Errorf("expected linear total still computed, got %f", est.TotalLinear)
	}
}
