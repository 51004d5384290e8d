package model

import (
	"sort"

	"github.com/google/uuid"
)

// DefaultKerf is the saw blade allowance in inches used when a
// configuration does not specify one.
const DefaultKerf = 0.125

// Measurement represents a required piece of trim to be cut.
type Measurement struct {
	ID            string  `json:"id" validate:"required"`
	Length        float64 `json:"length" validate:"gt=0"` // inches
	Room          string  `json:"room,omitempty"`
	Wall          string  `json:"wall,omitempty"`
	SplitBalanced bool    `json:"splitBalanced,omitempty"` // Prefer even pieces when longer than any stock
}

func NewMeasurement(length float64, room, wall string) Measurement {
	return Measurement{
		ID:     uuid.New().String()[:8],
		Length: length,
		Room:   room,
		Wall:   wall,
	}
}

// Label returns a human-readable location for the measurement.
func (m Measurement) Label() string {
	switch {
	case m.Room != "" && m.Wall != "":
		return m.Room + " / " + m.Wall
	case m.Room != "":
		return m.Room
	case m.Wall != "":
		return m.Wall
	default:
		return m.ID
	}
}

// PlanConfig is the complete input to one planning run.
type PlanConfig struct {
	Measurements     []Measurement `json:"measurements" validate:"dive"`
	AvailableLengths []float64     `json:"availableLengths" validate:"dive,gt=0"`
	Kerf             *float64      `json:"kerf,omitempty" validate:"omitempty,gte=0"` // nil means DefaultKerf
}

// NewPlanConfig builds a configuration with an explicit kerf.
func NewPlanConfig(measurements []Measurement, lengths []float64, kerf float64) PlanConfig {
	return PlanConfig{
		Measurements:     measurements,
		AvailableLengths: lengths,
		Kerf:             &kerf,
	}
}

// KerfOrDefault returns the configured kerf, or DefaultKerf when unset.
func (c PlanConfig) KerfOrDefault() float64 {
	if c.Kerf == nil {
		return DefaultKerf
	}
	return *c.Kerf
}

// WithKerf returns a copy of the configuration using the given kerf.
func (c PlanConfig) WithKerf(kerf float64) PlanConfig {
	c.Kerf = &kerf
	return c
}

// Cut is a placed piece of a measurement on a board.
type Cut struct {
	MeasurementID string  `json:"measurementId"`
	Length        float64 `json:"length"`
	Room          string  `json:"room,omitempty"`
	Wall          string  `json:"wall,omitempty"`
}

// CutFor creates a cut of the given length traced back to m.
func CutFor(m Measurement, length float64) Cut {
	return Cut{
		MeasurementID: m.ID,
		Length:        length,
		Room:          m.Room,
		Wall:          m.Wall,
	}
}

// Board is one purchased stock board and the cuts assigned to it.
type Board struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Cuts   []Cut   `json:"cuts"`
}

// UsedLength returns the length consumed by cuts plus the kerf between them.
func (b Board) UsedLength(kerf float64) float64 {
	if len(b.Cuts) == 0 {
		return 0
	}
	var total float64
	for _, c := range b.Cuts {
		total += c.Length
	}
	return total + float64(len(b.Cuts)-1)*kerf
}

// Waste returns the unused length of the board.
func (b Board) Waste(kerf float64) float64 {
	return b.Length - b.UsedLength(kerf)
}

// Efficiency returns the usage percentage.
func (b Board) Efficiency(kerf float64) float64 {
	if b.Length == 0 {
		return 0
	}
	return (b.UsedLength(kerf) / b.Length) * 100.0
}

// BoardName returns the display name for the board at index:
// A..Z, AA..AZ, BA.. (bijective base 26).
func BoardName(index int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// BoardCount is the number of boards purchased at one stock length.
type BoardCount struct {
	Length float64 `json:"length"`
	Count  int     `json:"count"`
}

// Summary aggregates a finished plan.
type Summary struct {
	TotalBoards int          `json:"totalBoards"`
	BoardCounts []BoardCount `json:"boardCounts"` // sorted by length ascending
	TotalWaste  float64      `json:"totalWaste"`
}

// CountFor returns the number of boards bought at the given length.
func (s Summary) CountFor(length float64) int {
	for _, bc := range s.BoardCounts {
		if bc.Length == length {
			return bc.Count
		}
	}
	return 0
}

// CountMap returns the board counts keyed by stock length.
func (s Summary) CountMap() map[float64]int {
	m := make(map[float64]int, len(s.BoardCounts))
	for _, bc := range s.BoardCounts {
		m[bc.Length] = bc.Count
	}
	return m
}

// Summarize computes the summary of a final board list.
func Summarize(boards []Board, kerf float64) Summary {
	counts := make(map[float64]int)
	var waste float64
	for _, b := range boards {
		counts[b.Length]++
		waste += b.Waste(kerf)
	}

	bc := make([]BoardCount, 0, len(counts))
	for length, n := range counts {
		bc = append(bc, BoardCount{Length: length, Count: n})
	}
	sort.Slice(bc, func(i, j int) bool {
		return bc[i].Length < bc[j].Length
	})

	return Summary{
		TotalBoards: len(boards),
		BoardCounts: bc,
		TotalWaste:  waste,
	}
}

// PlanResult holds the full cutting plan.
type PlanResult struct {
	Boards   []Board `json:"boards"`
	Summary  Summary `json:"summary"`
	Kerf     float64 `json:"kerf"`
	Unplaced []Cut   `json:"unplaced,omitempty"`
}

// EmptyResult returns a plan with no boards and a zeroed summary.
func EmptyResult(kerf float64) PlanResult {
	return PlanResult{
		Boards:  []Board{},
		Summary: Summary{BoardCounts: []BoardCount{}},
		Kerf:    kerf,
	}
}

// TotalEfficiency returns overall material usage percentage.
func (r PlanResult) TotalEfficiency() float64 {
	var used, total float64
	for _, b := range r.Boards {
		used += b.UsedLength(r.Kerf)
		total += b.Length
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}

// CutCount returns the number of cuts across all boards.
func (r PlanResult) CutCount() int {
	n := 0
	for _, b := range r.Boards {
		n += len(b.Cuts)
	}
	return n
}

// Project ties a configuration and its last plan together for save/load.
type Project struct {
	Name   string      `json:"name"`
	Config PlanConfig  `json:"config"`
	Result *PlanResult `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name: "Untitled",
		Config: PlanConfig{
			Measurements:     []Measurement{},
			AvailableLengths: append([]float64(nil), DefaultStockLengths...),
		},
	}
}

// DefaultStockLengths are common retail baseboard lengths (8', 10', 12', 16').
var DefaultStockLengths = []float64{96, 120, 144, 192}
