package model

import "github.com/google/uuid"

// BladeProfile represents a saw blade and the kerf it removes.
type BladeProfile struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kerf float64 `json:"kerf"` // inches
}

// NewBladeProfile creates a new BladeProfile with a generated ID.
func NewBladeProfile(name string, kerf float64) BladeProfile {
	return BladeProfile{
		ID:   uuid.New().String()[:8],
		Name: name,
		Kerf: kerf,
	}
}

// ApplyToConfig sets the configuration's kerf to this blade's kerf.
func (bp BladeProfile) ApplyToConfig(c *PlanConfig) {
	kerf := bp.Kerf
	c.Kerf = &kerf
}

// StockPreset represents a reusable set of purchasable board lengths,
// typically what one supplier stocks for one profile.
type StockPreset struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Material string    `json:"material"`
	Lengths  []float64 `json:"lengths"`
}

// NewStockPreset creates a new StockPreset with a generated ID.
func NewStockPreset(name, material string, lengths ...float64) StockPreset {
	return StockPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Material: material,
		Lengths:  lengths,
	}
}

// ApplyToConfig replaces the configuration's stock lengths with this preset's.
func (sp StockPreset) ApplyToConfig(c *PlanConfig) {
	c.AvailableLengths = append([]float64(nil), sp.Lengths...)
}

// Inventory holds the user's saved blade profiles and stock presets.
type Inventory struct {
	Blades []BladeProfile `json:"blades"`
	Stocks []StockPreset  `json:"stocks"`
}

// DefaultInventory returns an inventory populated with common defaults.
func DefaultInventory() Inventory {
	return Inventory{
		Blades: []BladeProfile{
			NewBladeProfile("Full kerf 1/8\"", 0.125),
			NewBladeProfile("Thin kerf 3/32\"", 0.09375),
			NewBladeProfile("Hand saw (no allowance)", 0),
		},
		Stocks: []StockPreset{
			NewStockPreset("MDF primed 8'/12'/16'", "MDF", 96, 144, 192),
			NewStockPreset("Finger-joint pine 8'-16'", "Pine", 96, 120, 144, 168, 192),
			NewStockPreset("Oak 8'/10'/12'", "Oak", 96, 120, 144),
			NewStockPreset("PVC 8'/16'", "PVC", 96, 192),
		},
	}
}

// FindBladeByID returns a pointer to the blade with the given ID, or nil.
func (inv *Inventory) FindBladeByID(id string) *BladeProfile {
	for i := range inv.Blades {
		if inv.Blades[i].ID == id {
			return &inv.Blades[i]
		}
	}
	return nil
}

// FindStockByID returns a pointer to the stock preset with the given ID, or nil.
func (inv *Inventory) FindStockByID(id string) *StockPreset {
	for i := range inv.Stocks {
		if inv.Stocks[i].ID == id {
			return &inv.Stocks[i]
		}
	}
	return nil
}

// BladeNames returns a list of blade profile names.
func (inv *Inventory) BladeNames() []string {
	names := make([]string, len(inv.Blades))
	for i, b := range inv.Blades {
		names[i] = b.Name
	}
	return names
}

// StockNames returns a list of stock preset names.
func (inv *Inventory) StockNames() []string {
	names := make([]string, len(inv.Stocks))
	for i, s := range inv.Stocks {
		names[i] = s.Name
	}
	return names
}

// FindBladeByName returns a pointer to the first blade with the given name, or nil.
func (inv *Inventory) FindBladeByName(name string) *BladeProfile {
	for i := range inv.Blades {
		if inv.Blades[i].Name == name {
			return &inv.Blades[i]
		}
	}
	return nil
}

// FindStockByName returns a pointer to the first stock preset with the given name, or nil.
func (inv *Inventory) FindStockByName(name string) *StockPreset {
	for i := range inv.Stocks {
		if inv.Stocks[i].Name == name {
			return &inv.Stocks[i]
		}
	}
	return nil
}
