package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TrimCut/internal/model"
)

func TestWarnings(t *testing.T) {
	result := model.PlanResult{Unplaced: []model.Cut{{MeasurementID: "x", Length: 300}}}

	warnings, err := Warnings(result, &UnplaceableError{Cuts: result.Unplaced})
	require.NoError(t, err)
	assert.Equal(t, []string{`x (300") does not fit any stock length`}, warnings)

	warnings, err = Warnings(result, nil)
	require.NoError(t, err)
	assert.Len(t, warnings, 1, "unplaced pieces are reported even without strict mode")

	warnings, err = Warnings(model.EmptyResult(0), ErrNoStockLengths)
	require.NoError(t, err)
	assert.Equal(t, []string{ErrNoStockLengths.Error()}, warnings)

	_, err = Warnings(model.PlanResult{}, ErrTooManyBoards)
	assert.ErrorIs(t, err, ErrTooManyBoards)

	_, err = Warnings(model.PlanResult{}, assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)

	warnings, err = Warnings(model.PlanResult{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, warnings)
	assert.Empty(t, warnings)
}
