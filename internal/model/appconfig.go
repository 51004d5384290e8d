package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new configurations
	DefaultKerf         float64   `json:"default_kerf" mapstructure:"default_kerf" validate:"gte=0"`
	DefaultStockLengths []float64 `json:"default_stock_lengths" mapstructure:"default_stock_lengths" validate:"dive,gt=0"`
	MinOffcutLength     float64   `json:"min_offcut_length" mapstructure:"min_offcut_length" validate:"gte=0"` // inches

	// Logging
	LogLevel  string `json:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" mapstructure:"log_format" validate:"oneof=text json"`
	LogFile   string `json:"log_file" mapstructure:"log_file"` // empty = stderr

	// Storage and server
	DatabasePath string  `json:"database_path" mapstructure:"database_path"` // empty = ~/.trimcut/trimcut.db
	ListenAddr   string  `json:"listen_addr" mapstructure:"listen_addr" validate:"required"`
	RateLimit    float64 `json:"rate_limit" mapstructure:"rate_limit" validate:"gte=0"` // requests/s, 0 = unlimited
	RateBurst    int     `json:"rate_burst" mapstructure:"rate_burst" validate:"gte=0"`
	PlanCacheTTL int     `json:"plan_cache_ttl" mapstructure:"plan_cache_ttl" validate:"gte=0"` // seconds, 0 = no cache

	RecentProjects []string `json:"recent_projects" mapstructure:"recent_projects"`
}

// DefaultMinOffcutLength is the shortest remnant (inches) worth keeping.
const DefaultMinOffcutLength = 12.0

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultKerf:         DefaultKerf,
		DefaultStockLengths: append([]float64(nil), DefaultStockLengths...),
		MinOffcutLength:     DefaultMinOffcutLength,
		LogLevel:            "info",
		LogFormat:           "text",
		ListenAddr:          ":8080",
		RateLimit:           20,
		RateBurst:           40,
		PlanCacheTTL:        600,
		RecentProjects:      []string{},
	}
}

// ApplyToConfig fills in the defaults a new plan configuration inherits.
// Stock lengths are only copied when the configuration has none.
func (c AppConfig) ApplyToConfig(pc *PlanConfig) {
	kerf := c.DefaultKerf
	pc.Kerf = &kerf
	if len(pc.AvailableLengths) == 0 {
		pc.AvailableLengths = append([]float64(nil), c.DefaultStockLengths...)
	}
}

// AddRecentProject moves path to the front of the recent list, capped at 10.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentProjects = recent
}
