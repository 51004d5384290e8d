package project

import (
	"errors"
	"io/fs"

	"github.com/piwi3910/TrimCut/internal/model"
)

// SaveInventory writes the blade and stock presets to path.
func SaveInventory(path string, inv model.Inventory) error {
	return writeJSON(path, inv)
}

// LoadInventory reads the presets at path. On first use, when the file is
// missing, the built-in presets are written there and returned.
func LoadInventory(path string) (model.Inventory, error) {
	var inv model.Inventory
	err := readJSON(path, &inv)
	if errors.Is(err, fs.ErrNotExist) {
		inv = model.DefaultInventory()
		return inv, SaveInventory(path, inv)
	}
	if err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

// MergeInventory appends the entries of extra whose IDs base lacks.
func MergeInventory(base, extra model.Inventory) model.Inventory {
	base.Blades = appendNew(base.Blades, extra.Blades, func(b model.BladeProfile) string { return b.ID })
	base.Stocks = appendNew(base.Stocks, extra.Stocks, func(s model.StockPreset) string { return s.ID })
	return base
}

func appendNew[T any](dst, src []T, id func(T) string) []T {
	seen := make(map[string]bool, len(dst)+len(src))
	for _, v := range dst {
		seen[id(v)] = true
	}
	for _, v := range src {
		if !seen[id(v)] {
			dst = append(dst, v)
			seen[id(v)] = true
		}
	}
	return dst
}

// ImportInventory merges the presets stored at path into existing.
// On error existing is returned unchanged.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	var extra model.Inventory
	if err := readJSON(path, &extra); err != nil {
		return existing, err
	}
	return MergeInventory(existing, extra), nil
}
