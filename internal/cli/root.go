// Package cli implements the trimcut command tree.
package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/logging"
	"github.com/piwi3910/TrimCut/internal/model"
	"github.com/piwi3910/TrimCut/internal/project"
	"github.com/piwi3910/TrimCut/internal/store"
)

// appState is loaded once per invocation by the root pre-run hook.
type appState struct {
	configPath string
	config     model.AppConfig
	logger     *slog.Logger
}

var app = appState{
	config: model.DefaultAppConfig(),
	logger: slog.Default(),
}

// Setup installs the persistent flags shared by every command and the hook
// that loads the app config and logger before a command runs.
func Setup(root *cobra.Command) {
	root.PersistentFlags().String("config", "", "config file (default ~/.trimcut/config.json)")
	root.PersistentFlags().String("log-level", "", "override the configured log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadApp(cmd)
	}
}

func loadApp(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	app.configPath = path
	app.config = cfg
	app.logger = logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Output: cmd.ErrOrStderr(),
	})
	app.logger.Debug("config loaded", "path", path)
	return nil
}

func (a appState) configDir() string {
	if a.configPath == "" {
		return project.DefaultConfigDir()
	}
	return filepath.Dir(a.configPath)
}

// databasePath resolves the SQLite file, defaulting to the config directory.
func (a appState) databasePath() string {
	if a.config.DatabasePath != "" {
		return a.config.DatabasePath
	}
	return filepath.Join(a.configDir(), "trimcut.db")
}

func (a appState) inventoryPath() string {
	return filepath.Join(a.configDir(), "inventory.json")
}

func openStore() (*store.Store, error) {
	st, err := store.Open(app.databasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open saved configurations: %w", err)
	}
	return st, nil
}
