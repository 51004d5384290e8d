package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrDuplicateMeasurement is returned when two measurements share an ID.
var ErrDuplicateMeasurement = errors.New("duplicate measurement id")

// Validate checks that the configuration is well formed: positive lengths,
// a non-negative kerf and unique measurement IDs. An empty stock list is not
// a validation failure; the engine reports it as a warning instead.
func (c PlanConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	seen := make(map[string]bool, len(c.Measurements))
	for _, m := range c.Measurements {
		if seen[m.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateMeasurement, m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

// Validate checks the application config field constraints.
func (c AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid app config: %w", err)
	}
	return nil
}
