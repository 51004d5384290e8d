package model

import (
	"reflect"
	"testing"
)

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Blades) != 3 {
		t.Errorf("expected 3 blades, got %d", len(inv.Blades))
	}
	if len(inv.Stocks) != 4 {
		t.Errorf("expected 4 stock presets, got %d", len(inv.Stocks))
	}
	for _, b := range inv.Blades {
		if b.ID == "" {
			t.Errorf("blade %q has no ID", b.Name)
		}
		if b.Kerf < 0 {
			t.Errorf("blade %q has negative kerf", b.Name)
		}
	}
}

func TestInventoryLookups(t *testing.T) {
	inv := DefaultInventory()

	blade := inv.FindBladeByName("Thin kerf 3/32\"")
	if blade == nil {
		t.Fatal("expected to find thin kerf blade")
	}
	if inv.FindBladeByID(blade.ID) != blade {
		t.Error("FindBladeByID should return the same entry")
	}
	if inv.FindBladeByName("missing") != nil || inv.FindBladeByID("missing") != nil {
		t.Error("expected nil for unknown blade")
	}

	stock := inv.FindStockByName("PVC 8'/16'")
	if stock == nil {
		t.Fatal("expected to find PVC preset")
	}
	if inv.FindStockByID(stock.ID) != stock {
		t.Error("FindStockByID should return the same entry")
	}
	if inv.FindStockByID("missing") != nil || inv.FindStockByName("missing") != nil {
		t.Error("expected nil for unknown stock")
	}

	if len(inv.BladeNames()) != len(inv.Blades) || len(inv.StockNames()) != len(inv.Stocks) {
		t.Error("name lists should match inventory size")
	}
}

func TestInventoryApplyToConfig(t *testing.T) {
	var cfg PlanConfig

	NewBladeProfile("Thin", 0.09375).ApplyToConfig(&cfg)
	if cfg.KerfOrDefault() != 0.09375 {
		t.Errorf("expected kerf 0.09375, got %f", cfg.KerfOrDefault())
	}

	preset := NewStockPreset("Oak", "Oak", 96, 144)
	preset.ApplyToConfig(&cfg)
	if !reflect.DeepEqual(cfg.AvailableLengths, []float64{96, 144}) {
		t.Errorf("unexpected lengths %v", cfg.AvailableLengths)
	}
	cfg.AvailableLengths[0] = 1
	if preset.Lengths[0] != 96 {
		t.Error("config lengths should not alias the preset")
	}
}
