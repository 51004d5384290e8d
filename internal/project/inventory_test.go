package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/TrimCut/internal/model"
)

func TestLoadInventoryCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(inv.Blades) == 0 || len(inv.Stocks) == 0 {
		t.Error("expected default blades and stock presets")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults to be written: %v", err)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	inv := model.Inventory{
		Blades: []model.BladeProfile{model.NewBladeProfile("Miter saw", 0.1)},
		Stocks: []model.StockPreset{model.NewStockPreset("Poplar", "Poplar", 96, 144)},
	}

	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}
	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	if len(loaded.Blades) != 1 || loaded.Blades[0].Kerf != 0.1 {
		t.Errorf("unexpected blades %+v", loaded.Blades)
	}
	if len(loaded.Stocks) != 1 || len(loaded.Stocks[0].Lengths) != 2 {
		t.Errorf("unexpected stocks %+v", loaded.Stocks)
	}
}

func TestImportInventoryMergesByID(t *testing.T) {
	dir := t.TempDir()
	shared := model.NewBladeProfile("Shared", 0.125)
	existing := model.Inventory{Blades: []model.BladeProfile{shared}}

	importPath := filepath.Join(dir, "import.json")
	imported := model.Inventory{
		Blades: []model.BladeProfile{shared, model.NewBladeProfile("New blade", 0.09)},
		Stocks: []model.StockPreset{model.NewStockPreset("MDF", "MDF", 192)},
	}
	if err := SaveInventory(importPath, imported); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportInventory(importPath, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}
	if len(merged.Blades) != 2 {
		t.Errorf("expected 2 blades after merge, got %d", len(merged.Blades))
	}
	if len(merged.Stocks) != 1 {
		t.Errorf("expected 1 stock preset after merge, got %d", len(merged.Stocks))
	}
}

func TestImportInventoryMissingFile(t *testing.T) {
	existing := model.DefaultInventory()
	got, err := ImportInventory(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(got.Blades) != len(existing.Blades) {
		t.Error("existing inventory should be returned unchanged")
	}
}
