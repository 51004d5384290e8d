package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/TrimCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	base := config([]float64{96, 120}, 0.125, measure("long", 200), measure("short", 40))

	scenarios := BuildDefaultScenarios(base)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"Current Settings",
		"Balanced Splits",
		"Zero Kerf",
		`Only 96"`,
		`Only 120"`,
	}, names)

	assert.True(t, scenarios[1].Config.Measurements[0].SplitBalanced)
	assert.False(t, scenarios[1].Config.Measurements[1].SplitBalanced)
	assert.False(t, base.Measurements[0].SplitBalanced, "base config must not be modified")
	assert.Equal(t, 0.0, scenarios[2].Config.KerfOrDefault())
	assert.Equal(t, 0.125, base.KerfOrDefault())
}

func TestBuildDefaultScenarios_Minimal(t *testing.T) {
	base := config([]float64{96}, 0, measure("a", 40))

	scenarios := BuildDefaultScenarios(base)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
}

func TestCompareScenarios(t *testing.T) {
	base := config([]float64{96, 120}, 0.125, measure("long", 200), measure("short", 40))

	results := CompareScenarios(nil, BuildDefaultScenarios(base))
	require.Len(t, results, 5)

	for _, r := range results {
		assert.NoError(t, r.Warning, r.Scenario.Name)
		assert.Equal(t, r.Result.Summary.TotalBoards, r.BoardsUsed)
		assert.Equal(t, r.Result.CutCount(), r.TotalCuts)
		assert.Greater(t, r.BoardsUsed, 0)
		assert.GreaterOrEqual(t, r.WastePercent, 0.0)
	}

	zeroKerf := results[2]
	assert.LessOrEqual(t, zeroKerf.TotalWaste, results[0].TotalWaste)
}

func TestCompareScenarios_NoStockWarning(t *testing.T) {
	scenarios := []ComparisonScenario{
		{Name: "empty", Config: config(nil, 0.125, measure("a", 40))},
	}

	results := CompareScenarios(New(), scenarios)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Warning, ErrNoStockLengths)
	assert.Equal(t, 0, results[0].BoardsUsed)
	assert.Equal(t, 0.0, results[0].WastePercent)
}

func TestCompareScenarios_Unplaced(t *testing.T) {
	scenarios := []ComparisonScenario{
		{Name: "bad", Config: model.NewPlanConfig(
			[]model.Measurement{measure("ok", 40), measure("bad", math.NaN())}, []float64{96}, 0)},
	}

	results := CompareScenarios(strictOptimizer(), scenarios)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].UnplacedCount)
	assert.ErrorIs(t, results[0].Warning, ErrUnplaceable)
	assert.Equal(t, 1, results[0].BoardsUsed)
}

func TestCompareScenarios_TooManyBoards(t *testing.T) {
	scenarios := []ComparisonScenario{
		{Name: "huge", Config: config([]float64{1}, 0, measure("wall", 5000))},
		{Name: "fine", Config: config([]float64{96}, 0, measure("wall", 5000))},
	}

	results := CompareScenarios(New(), scenarios)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Warning, ErrTooManyBoards)
	assert.Equal(t, 0, results[0].BoardsUsed)
	assert.NoError(t, results[1].Warning)
	assert.Equal(t, 53, results[1].BoardsUsed)
}
