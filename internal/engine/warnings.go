package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/TrimCut/internal/model"
)

// Warnings turns the recoverable errors of Optimize into user messages: one
// for missing stock, or one per unplaced piece. Any other error, including
// ErrTooManyBoards, is returned unchanged. The slice is never nil on success.
func Warnings(result model.PlanResult, err error) ([]string, error) {
	warnings := []string{}
	switch {
	case err == nil, errors.Is(err, ErrUnplaceable):
	case errors.Is(err, ErrNoStockLengths):
		return append(warnings, ErrNoStockLengths.Error()), nil
	default:
		return nil, err
	}
	for _, c := range result.Unplaced {
		warnings = append(warnings, fmt.Sprintf("%s (%s) does not fit any stock length",
			c.MeasurementID, model.FormatLength(c.Length)))
	}
	return warnings, nil
}
