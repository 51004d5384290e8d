package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/piwi3910/TrimCut/internal/model"
)

// BackupVersion identifies the backup file layout.
const BackupVersion = "1.0.0"

// ErrNotBackup is returned for JSON files that carry no backup version.
var ErrNotBackup = errors.New("not a trimcut backup: missing version")

// BackupData is everything a user would need to move to another machine:
// settings, presets and saved plan configurations.
type BackupData struct {
	Version      string              `json:"version"`
	CreatedAt    string              `json:"created_at"`
	Config       model.AppConfig     `json:"config"`
	Inventory    model.Inventory     `json:"inventory"`
	SavedConfigs []model.SavedConfig `json:"saved_configs"`
}

func (b *BackupData) fillNils() {
	if b.Config.RecentProjects == nil {
		b.Config.RecentProjects = []string{}
	}
	if b.SavedConfigs == nil {
		b.SavedConfigs = []model.SavedConfig{}
	}
}

// ExportAllData writes a backup of config, inv and saved to path.
func ExportAllData(path string, config model.AppConfig, inv model.Inventory, saved []model.SavedConfig) error {
	b := BackupData{
		Version:      BackupVersion,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Config:       config,
		Inventory:    inv,
		SavedConfigs: saved,
	}
	b.fillNils()
	if err := writeJSON(path, b); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ImportAllData loads a backup written by ExportAllData. Nothing is applied;
// the caller decides how to merge the contents.
func ImportAllData(path string) (BackupData, error) {
	var b BackupData
	if err := readJSON(path, &b); err != nil {
		return BackupData{}, fmt.Errorf("read backup: %w", err)
	}
	if b.Version == "" {
		return BackupData{}, ErrNotBackup
	}
	b.fillNils()
	return b, nil
}
