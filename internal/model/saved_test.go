package model

import "testing"

func TestNewSavedConfigCopiesInput(t *testing.T) {
	cfg := NewPlanConfig([]Measurement{{ID: "a", Length: 50}}, []float64{96, 120}, 0.125)
	saved := NewSavedConfig("Kitchen", "main floor", cfg)

	if saved.ID == "" {
		t.Error("expected generated ID")
	}
	if saved.Name != "Kitchen" || saved.Description != "main floor" {
		t.Errorf("unexpected saved config %+v", saved)
	}
	if !saved.CreatedAt.Equal(saved.UpdatedAt) {
		t.Error("new config should have matching timestamps")
	}

	cfg.Measurements[0].Length = 999
	cfg.AvailableLengths[0] = 1
	*cfg.Kerf = 5
	if saved.Config.Measurements[0].Length != 50 {
		t.Error("saved measurements should not alias the input")
	}
	if saved.Config.AvailableLengths[0] != 96 {
		t.Error("saved stock should not alias the input")
	}
	if saved.Config.KerfOrDefault() != 0.125 {
		t.Error("saved kerf should not alias the input")
	}
}

func TestSavedConfigToProject(t *testing.T) {
	saved := NewSavedConfig("Hall", "", PlanConfig{
		Measurements:     []Measurement{{ID: "h1", Length: 144}},
		AvailableLengths: []float64{144},
	})

	p := saved.ToProject()
	if p.Name != "Hall" {
		t.Errorf("expected project name Hall, got %s", p.Name)
	}
	if p.Result != nil {
		t.Error("project from saved config should not carry a plan")
	}
	if p.Config.Kerf != nil {
		t.Error("unset kerf should stay unset")
	}
	p.Config.Measurements[0].Length = 1
	if saved.Config.Measurements[0].Length != 144 {
		t.Error("project should not alias the saved config")
	}
}
