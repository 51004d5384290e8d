package model

import (
	"math"
	"testing"
)

func offcutResult() PlanResult {
	return PlanResult{
		Kerf: 0.125,
		Boards: []Board{
			{Name: "A", Length: 96, Cuts: []Cut{{Length: 40}, {Length: 30}}},
			{Name: "B", Length: 120, Cuts: []Cut{{Length: 110}}},
			{Name: "C", Length: 144, Cuts: []Cut{{Length: 100}}},
			{Name: "D", Length: 96, Cuts: []Cut{{Length: 96}}},
		},
	}
}

func TestDetectOffcutsLongestFirst(t *testing.T) {
	offcuts := DetectOffcuts(offcutResult(), 12)
	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}
	if offcuts[0].BoardName != "C" || offcuts[0].Length != 43.875 {
		t.Errorf("expected C with 43.875, got %s with %f", offcuts[0].BoardName, offcuts[0].Length)
	}
	if offcuts[1].BoardName != "A" || offcuts[1].Length != 25.75 {
		t.Errorf("expected A with 25.75, got %s with %f", offcuts[1].BoardName, offcuts[1].Length)
	}
	if offcuts[0].BoardIndex != 2 || offcuts[0].BoardLength != 144 {
		t.Errorf("unexpected board reference %+v", offcuts[0])
	}
}

func TestDetectOffcutsNoMinimum(t *testing.T) {
	offcuts := DetectOffcuts(offcutResult(), 0)
	if len(offcuts) != 3 {
		t.Fatalf("expected 3 offcuts, full board D has none, got %d", len(offcuts))
	}
	if math.Abs(TotalOffcutLength(offcuts)-79.5) > 1e-9 {
		t.Errorf("expected total 79.5, got %f", TotalOffcutLength(offcuts))
	}
}

func TestDetectOffcutsEmptyPlan(t *testing.T) {
	if got := DetectOffcuts(EmptyResult(0.125), 0); len(got) != 0 {
		t.Errorf("expected no offcuts, got %d", len(got))
	}
}
