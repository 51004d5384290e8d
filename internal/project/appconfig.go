package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/piwi3910/TrimCut/internal/model"
)

// EnvPrefix is the prefix for environment overrides, e.g. TRIMCUT_DEFAULT_KERF.
const EnvPrefix = "TRIMCUT"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.trimcut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".trimcut")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultDatabasePath returns the default location of the saved-configurations database.
func DefaultDatabasePath() string {
	return filepath.Join(DefaultConfigDir(), "trimcut.db")
}

// DatabasePath returns the configured database path, or the default one.
func DatabasePath(cfg model.AppConfig) string {
	if cfg.DatabasePath != "" {
		return cfg.DatabasePath
	}
	return DefaultDatabasePath()
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from the given path, layered over
// DefaultAppConfig and overridden by TRIMCUT_* environment variables.
// If the file does not exist, the defaults (plus environment) are returned
// with no error. The result is validated before it is returned.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := viper.New()
	setDefaults(v, model.DefaultAppConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return model.AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return model.AppConfig{}, err
		}
	}

	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// Ensure RecentProjects is never nil
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	if err := config.Validate(); err != nil {
		return model.AppConfig{}, err
	}
	return config, nil
}

// setDefaults registers every AppConfig key so environment overrides apply
// even when the key is absent from the file.
func setDefaults(v *viper.Viper, d model.AppConfig) {
	v.SetDefault("default_kerf", d.DefaultKerf)
	v.SetDefault("default_stock_lengths", d.DefaultStockLengths)
	v.SetDefault("min_offcut_length", d.MinOffcutLength)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("database_path", d.DatabasePath)
	v.SetDefault("listen_addr", d.ListenAddr)
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("rate_burst", d.RateBurst)
	v.SetDefault("plan_cache_ttl", d.PlanCacheTTL)
	v.SetDefault("recent_projects", d.RecentProjects)
}
