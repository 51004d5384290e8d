package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/TrimCut/internal/model"
)

// FileExtension is the extension used for saved project files.
const FileExtension = ".trimcut"

// SaveProject writes a project, its configuration and last plan, as JSON.
func SaveProject(path string, p model.Project) error {
	return writeJSON(path, p)
}

// LoadProject reads a project file written by SaveProject.
func LoadProject(path string) (model.Project, error) {
	var p model.Project
	if err := readJSON(path, &p); err != nil {
		return model.Project{}, err
	}
	if p.Config.Measurements == nil {
		p.Config.Measurements = []model.Measurement{}
	}
	return p, nil
}

// LoadPlanConfig reads a plan configuration from a JSON file. Both a bare
// PlanConfig and a full project file are accepted.
func LoadPlanConfig(path string) (model.PlanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PlanConfig{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return model.PlanConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, ok := fields["config"]; ok {
		var p model.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return model.PlanConfig{}, fmt.Errorf("parse project %s: %w", path, err)
		}
		return p.Config, nil
	}

	var cfg model.PlanConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.PlanConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
