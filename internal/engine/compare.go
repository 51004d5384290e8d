package engine

import (
	"errors"

	"github.com/sourcegraph/conc"

	"github.com/piwi3910/TrimCut/internal/model"
)

// ComparisonScenario defines a named configuration variant to compare.
type ComparisonScenario struct {
	Name   string
	Config model.PlanConfig
}

// ComparisonResult holds the plan and computed statistics for a single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.PlanResult
	BoardsUsed    int
	TotalCuts     int
	TotalWaste    float64
	WastePercent  float64
	UnplacedCount int
	Warning       error // ErrNoStockLengths or an UnplaceableError, if any
}

// CompareScenarios plans each scenario and returns the results in scenario
// order, so alternatives (other stock, thinner blade, even splits) can be
// shown side by side. Scenarios are planned concurrently.
func CompareScenarios(opt *Optimizer, scenarios []ComparisonScenario) []ComparisonResult {
	if opt == nil {
		opt = New()
	}
	results := make([]ComparisonResult, len(scenarios))

	var wg conc.WaitGroup
	for i, scenario := range scenarios {
		wg.Go(func() {
			results[i] = compareOne(opt, scenario)
		})
	}
	wg.Wait()

	return results
}

func compareOne(opt *Optimizer, scenario ComparisonScenario) ComparisonResult {
	result, err := opt.Optimize(scenario.Config)

	var warning error
	if err != nil && (errors.Is(err, ErrNoStockLengths) || errors.Is(err, ErrUnplaceable) || errors.Is(err, ErrTooManyBoards)) {
		warning = err
	}

	wastePercent := 0.0
	if len(result.Boards) > 0 {
		wastePercent = 100.0 - result.TotalEfficiency()
	}

	return ComparisonResult{
		Scenario:      scenario,
		Result:        result,
		BoardsUsed:    result.Summary.TotalBoards,
		TotalCuts:     result.CutCount(),
		TotalWaste:    result.Summary.TotalWaste,
		WastePercent:  wastePercent,
		UnplacedCount: len(result.Unplaced),
		Warning:       warning,
	}
}

// BuildDefaultScenarios generates what-if variants of the given configuration.
func BuildDefaultScenarios(base model.PlanConfig) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:   "Current Settings",
			Config: base,
		},
	}

	// Scenario: every oversize wall split evenly
	lengths := distinctLengths(base.AvailableLengths)
	largest := maxLength(lengths)
	hasOversize := false
	balanced := make([]model.Measurement, len(base.Measurements))
	for i, m := range base.Measurements {
		balanced[i] = m
		if m.Length > largest && len(lengths) > 0 {
			hasOversize = true
			balanced[i].SplitBalanced = true
		}
	}
	if hasOversize {
		alt := base
		alt.Measurements = balanced
		scenarios = append(scenarios, ComparisonScenario{
			Name:   "Balanced Splits",
			Config: alt,
		})
	}

	// Scenario: no kerf allowance
	if base.KerfOrDefault() > 0 {
		scenarios = append(scenarios, ComparisonScenario{
			Name:   "Zero Kerf",
			Config: base.WithKerf(0),
		})
	}

	// Scenario: buy only one stock length
	if len(lengths) > 1 {
		for _, l := range lengths {
			alt := base
			alt.AvailableLengths = []float64{l}
			scenarios = append(scenarios, ComparisonScenario{
				Name:   "Only " + model.FormatLength(l),
				Config: alt,
			})
		}
	}

	return scenarios
}
