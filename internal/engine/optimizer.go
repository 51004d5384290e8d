package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/piwi3910/TrimCut/internal/model"
)

// ErrNoStockLengths is returned together with an empty plan when the
// configuration has no usable stock lengths. Callers treat it as a warning.
var ErrNoStockLengths = errors.New("no stock lengths available")

// ErrUnplaceable marks a piece that no stock length can hold.
var ErrUnplaceable = errors.New("piece does not fit any stock length")

// UnplaceableError lists the cuts the optimizer had to leave out of the plan.
type UnplaceableError struct {
	Cuts []model.Cut
}

func (e *UnplaceableError) Error() string {
	if len(e.Cuts) == 0 {
		return ErrUnplaceable.Error()
	}
	first := e.Cuts[0]
	return fmt.Sprintf("%d piece(s) could not be placed: %s (%s) does not fit any stock length",
		len(e.Cuts), first.MeasurementID, model.FormatLength(first.Length))
}

func (e *UnplaceableError) Unwrap() error {
	return ErrUnplaceable
}

// epsilon absorbs binary floating point drift in fit comparisons.
const epsilon = 1e-9

// Optimizer runs the one-dimensional trim packing search.
type Optimizer struct {
	// Strict turns an unplaceable piece into an error. Without it the piece
	// is logged, reported in PlanResult.Unplaced and the plan still returned.
	Strict bool
	Logger *slog.Logger
}

func New() *Optimizer {
	return &Optimizer{}
}

// Plan computes a cutting plan with a default optimizer.
func Plan(cfg model.PlanConfig) (model.PlanResult, error) {
	return New().Optimize(cfg)
}

func (o *Optimizer) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Optimize takes measurements and stock lengths and returns a cutting plan.
// Each candidate set of stock lengths is packed independently and the
// lowest-waste packing wins. Balanced splits are then applied, boards are
// shrunk to the smallest stock length that still holds their cuts, and the
// final boards are named A, B, C...
func (o *Optimizer) Optimize(cfg model.PlanConfig) (model.PlanResult, error) {
	kerf := cfg.KerfOrDefault()
	log := o.logger()

	lengths := distinctLengths(cfg.AvailableLengths)
	if len(lengths) != len(cfg.AvailableLengths) {
		log.Debug("stock lengths deduplicated", "given", len(cfg.AvailableLengths), "distinct", len(lengths))
	}
	if len(lengths) == 0 {
		log.Warn("no stock lengths available", "measurements", len(cfg.Measurements))
		return model.EmptyResult(kerf), ErrNoStockLengths
	}
	if len(cfg.Measurements) == 0 {
		return model.EmptyResult(kerf), nil
	}

	if err := checkBoardLimit(cfg.Measurements, lengths); err != nil {
		log.Warn("plan rejected", "error", err)
		return model.EmptyResult(kerf), err
	}

	candidates := withinBoardLimit(enumerateStrategies(lengths), cfg.Measurements)
	best, bestIdx := selectBest(cfg.Measurements, candidates, kerf)
	log.Debug("packing strategy selected",
		"candidates", len(candidates),
		"index", bestIdx,
		"lengths", candidates[bestIdx],
		"boards", len(best.bins),
		"waste", best.waste())

	rebalance(best, cfg.Measurements, lengths, log)
	downgrade(best.bins, lengths)

	boards := best.boards()
	result := model.PlanResult{
		Boards:   boards,
		Summary:  model.Summarize(boards, kerf),
		Kerf:     kerf,
		Unplaced: best.unplaced,
	}

	if len(best.unplaced) > 0 {
		for _, c := range best.unplaced {
			log.Error("piece could not be placed on any stock length",
				"measurement", c.MeasurementID,
				"length", c.Length,
				"max_stock", maxLength(lengths))
		}
		if o.Strict {
			return result, &UnplaceableError{Cuts: best.unplaced}
		}
	}
	return result, nil
}

// distinctLengths removes duplicates and non-positive values, keeping the
// order of first appearance.
func distinctLengths(lengths []float64) []float64 {
	seen := make(map[float64]bool, len(lengths))
	out := make([]float64, 0, len(lengths))
	for _, l := range lengths {
		if !(l > 0) || math.IsInf(l, 0) || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func maxLength(lengths []float64) float64 {
	m := 0.0
	for _, l := range lengths {
		if l > m {
			m = l
		}
	}
	return m
}
