package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedConfig is a named configuration kept in the saved-configurations
// library. It captures the measurements, stock and kerf but not the plan,
// which is recomputed on load.
type SavedConfig struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Config      PlanConfig `json:"config"`
}

// NewSavedConfig creates a saved configuration from the given plan input.
func NewSavedConfig(name, description string, cfg PlanConfig) SavedConfig {
	now := time.Now().UTC().Truncate(time.Second)
	return SavedConfig{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Config:      copyConfig(cfg),
	}
}

// ToProject creates a new Project from this saved configuration.
func (s SavedConfig) ToProject() Project {
	return Project{
		Name:   s.Name,
		Config: copyConfig(s.Config),
	}
}

// copyConfig creates a deep copy of a plan configuration.
func copyConfig(c PlanConfig) PlanConfig {
	cp := PlanConfig{
		Measurements:     make([]Measurement, len(c.Measurements)),
		AvailableLengths: make([]float64, len(c.AvailableLengths)),
	}
	copy(cp.Measurements, c.Measurements)
	copy(cp.AvailableLengths, c.AvailableLengths)
	if c.Kerf != nil {
		kerf := *c.Kerf
		cp.Kerf = &kerf
	}
	return cp
}
