package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/TrimCut/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hall"+FileExtension)

	p := model.NewProject()
	p.Name = "Hall"
	p.Config.Measurements = []model.Measurement{{ID: "h1", Length: 200, Room: "Hall", SplitBalanced: true}}
	result := model.EmptyResult(0.125)
	p.Result = &result

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if loaded.Name != "Hall" {
		t.Errorf("expected name Hall, got %s", loaded.Name)
	}
	if len(loaded.Config.Measurements) != 1 || !loaded.Config.Measurements[0].SplitBalanced {
		t.Errorf("unexpected measurements %+v", loaded.Config.Measurements)
	}
	if loaded.Result == nil || loaded.Result.Kerf != 0.125 {
		t.Error("expected saved plan result")
	}
}

func TestLoadPlanConfigAcceptsBothShapes(t *testing.T) {
	dir := t.TempDir()

	bare := filepath.Join(dir, "config.json")
	if err := os.WriteFile(bare, []byte(`{
		"measurements": [{"id": "a", "length": 50}],
		"availableLengths": [96, 120],
		"kerf": 0
	}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadPlanConfig(bare)
	if err != nil {
		t.Fatalf("LoadPlanConfig(bare) failed: %v", err)
	}
	if len(cfg.Measurements) != 1 || len(cfg.AvailableLengths) != 2 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Kerf == nil || *cfg.Kerf != 0 {
		t.Error("explicit zero kerf should survive loading")
	}

	proj := filepath.Join(dir, "p"+FileExtension)
	p := model.NewProject()
	p.Config.Measurements = []model.Measurement{{ID: "b", Length: 70}}
	if err := SaveProject(proj, p); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadPlanConfig(proj)
	if err != nil {
		t.Fatalf("LoadPlanConfig(project) failed: %v", err)
	}
	if len(cfg.Measurements) != 1 || cfg.Measurements[0].ID != "b" {
		t.Errorf("unexpected config from project %+v", cfg)
	}
	if cfg.Kerf != nil {
		t.Error("omitted kerf should stay unset")
	}
}

func TestLoadProjectErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadProject(filepath.Join(dir, "missing.trimcut")); err == nil {
		t.Error("expected error for missing project")
	}
	bad := filepath.Join(dir, "bad.trimcut")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(bad); err == nil {
		t.Error("expected error for invalid project")
	}
	if _, err := LoadPlanConfig(bad); err == nil {
		t.Error("expected error for invalid config")
	}
}
