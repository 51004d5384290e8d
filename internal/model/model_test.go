package model

import (
	"math"
	"reflect"
	"testing"
)

func TestBoardName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := BoardName(tt.index); got != tt.want {
			t.Errorf("BoardName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestBoardUsedLengthAppliesKerfBetweenCuts(t *testing.T) {
	b := Board{Length: 96, Cuts: []Cut{{Length: 40}, {Length: 30}}}
	if got := b.UsedLength(0.125); got != 70.125 {
		t.Errorf("expected used 70.125, got %f", got)
	}
	if got := b.Waste(0.125); got != 25.875 {
		t.Errorf("expected waste 25.875, got %f", got)
	}

	single := Board{Length: 96, Cuts: []Cut{{Length: 96}}}
	if got := single.Waste(0.125); got != 0 {
		t.Errorf("single full-length cut should not pay kerf, got waste %f", got)
	}

	empty := Board{Length: 96}
	if empty.UsedLength(0.125) != 0 {
		t.Error("empty board should use nothing")
	}
}

func TestBoardEfficiency(t *testing.T) {
	b := Board{Length: 100, Cuts: []Cut{{Length: 75}}}
	if got := b.Efficiency(0); got != 75 {
		t.Errorf("expected 75%% efficiency, got %f", got)
	}
	if got := (Board{}).Efficiency(0); got != 0 {
		t.Errorf("zero-length board should report 0, got %f", got)
	}
}

func TestSummarize(t *testing.T) {
	boards := []Board{
		{Name: "A", Length: 120, Cuts: []Cut{{Length: 120}}},
		{Name: "B", Length: 96, Cuts: []Cut{{Length: 80}}},
		{Name: "C", Length: 120, Cuts: []Cut{{Length: 50}, {Length: 50}}},
	}
	s := Summarize(boards, 0.125)

	if s.TotalBoards != 3 {
		t.Errorf("expected 3 boards, got %d", s.TotalBoards)
	}
	want := []BoardCount{{Length: 96, Count: 1}, {Length: 120, Count: 2}}
	if !reflect.DeepEqual(s.BoardCounts, want) {
		t.Errorf("expected counts %v, got %v", want, s.BoardCounts)
	}
	if math.Abs(s.TotalWaste-35.875) > 1e-9 {
		t.Errorf("expected waste 35.875, got %f", s.TotalWaste)
	}
	if s.CountFor(120) != 2 || s.CountFor(144) != 0 {
		t.Errorf("CountFor mismatch: %v", s.CountMap())
	}
	if m := s.CountMap(); m[96] != 1 || m[120] != 2 {
		t.Errorf("CountMap mismatch: %v", m)
	}

	again := Summarize(boards, 0.125)
	if !reflect.DeepEqual(s, again) {
		t.Error("Summarize should be idempotent")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 0.125)
	if s.TotalBoards != 0 || s.TotalWaste != 0 || len(s.BoardCounts) != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestEmptyResult(t *testing.T) {
	r := EmptyResult(0.125)
	if r.Boards == nil || len(r.Boards) != 0 {
		t.Error("expected empty non-nil board list")
	}
	if r.Summary.BoardCounts == nil {
		t.Error("expected non-nil board counts")
	}
	if r.Kerf != 0.125 {
		t.Errorf("expected kerf 0.125, got %f", r.Kerf)
	}
	if r.TotalEfficiency() != 0 || r.CutCount() != 0 {
		t.Error("empty result should have no efficiency and no cuts")
	}
}

func TestPlanResultTotals(t *testing.T) {
	r := PlanResult{
		Kerf: 0,
		Boards: []Board{
			{Length: 100, Cuts: []Cut{{Length: 50}, {Length: 25}}},
			{Length: 100, Cuts: []Cut{{Length: 75}}},
		},
	}
	if r.CutCount() != 3 {
		t.Errorf("expected 3 cuts, got %d", r.CutCount())
	}
	if r.TotalEfficiency() != 75 {
		t.Errorf("expected 75%% efficiency, got %f", r.TotalEfficiency())
	}
}

func TestKerfOrDefault(t *testing.T) {
	var cfg PlanConfig
	if cfg.KerfOrDefault() != DefaultKerf {
		t.Errorf("expected default kerf %f, got %f", DefaultKerf, cfg.KerfOrDefault())
	}

	zero := cfg.WithKerf(0)
	if zero.KerfOrDefault() != 0 {
		t.Errorf("explicit zero kerf should be kept, got %f", zero.KerfOrDefault())
	}
	if cfg.Kerf != nil {
		t.Error("WithKerf should not modify the receiver")
	}

	explicit := NewPlanConfig(nil, []float64{96}, 0.09375)
	if explicit.KerfOrDefault() != 0.09375 {
		t.Errorf("expected 0.09375, got %f", explicit.KerfOrDefault())
	}
}

func TestCutForCopiesTraceability(t *testing.T) {
	m := Measurement{ID: "m1", Length: 200, Room: "Hall", Wall: "East"}
	c := CutFor(m, 120)
	if c.MeasurementID != "m1" || c.Room != "Hall" || c.Wall != "East" || c.Length != 120 {
		t.Errorf("unexpected cut %+v", c)
	}
}

func TestNewMeasurement(t *testing.T) {
	a := NewMeasurement(50, "Kitchen", "North")
	b := NewMeasurement(50, "Kitchen", "North")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct generated IDs, got %q and %q", a.ID, b.ID)
	}
	if a.Label() != "Kitchen / North" {
		t.Errorf("unexpected label %q", a.Label())
	}
	if (Measurement{ID: "x"}).Label() != "x" {
		t.Error("label should fall back to ID")
	}
	if (Measurement{ID: "x", Room: "Den"}).Label() != "Den" {
		t.Error("label should use room alone")
	}
}

func TestNewProjectUsesDefaultStock(t *testing.T) {
	p := NewProject()
	if p.Name != "Untitled" {
		t.Errorf("expected Untitled, got %s", p.Name)
	}
	if !reflect.DeepEqual(p.Config.AvailableLengths, DefaultStockLengths) {
		t.Errorf("expected default stock lengths, got %v", p.Config.AvailableLengths)
	}
	p.Config.AvailableLengths[0] = 1
	if DefaultStockLengths[0] == 1 {
		t.Error("project stock lengths should not alias the defaults")
	}
}
