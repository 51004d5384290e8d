// Package store keeps the library of named plan configurations in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/piwi3910/TrimCut/internal/model"
)

// ErrNotFound is returned when no saved configuration has the requested name.
var ErrNotFound = errors.New("saved configuration not found")

// Store provides SQLite-backed persistence for saved configurations.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps :memory: shared.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// New returns a Store bound to an existing, migrated database handle.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts sc, or replaces the configuration stored under the same
// name. A replaced entry keeps its ID and creation time.
func (s *Store) Save(ctx context.Context, sc model.SavedConfig) (model.SavedConfig, error) {
	if s == nil || s.db == nil {
		return model.SavedConfig{}, fmt.Errorf("save config: store is closed")
	}
	if sc.Name == "" {
		return model.SavedConfig{}, fmt.Errorf("save config: name is empty")
	}
	if sc.ID == "" {
		sc.ID = uuid.New().String()[:8]
	}
	now := time.Now().UTC().Truncate(time.Second)
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = now
	}
	sc.UpdatedAt = now

	data, err := json.Marshal(sc.Config)
	if err != nil {
		return model.SavedConfig{}, fmt.Errorf("save config: encode: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_configs (id, name, description, config, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			config = excluded.config,
			updated_at = excluded.updated_at`,
		sc.ID, sc.Name, sc.Description, string(data),
		sc.CreatedAt.Format(time.RFC3339), sc.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return model.SavedConfig{}, fmt.Errorf("save config: upsert: %w", err)
	}

	return s.Get(ctx, sc.Name)
}

// Get returns the configuration saved under name.
func (s *Store) Get(ctx context.Context, name string) (model.SavedConfig, error) {
	if s == nil || s.db == nil {
		return model.SavedConfig{}, fmt.Errorf("get config: store is closed")
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, config, created_at, updated_at
		FROM saved_configs WHERE name = ?`, name)

	sc, err := scanConfig(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SavedConfig{}, fmt.Errorf("get config %q: %w", name, ErrNotFound)
		}
		return model.SavedConfig{}, fmt.Errorf("get config %q: %w", name, err)
	}
	return sc, nil
}

// List returns every saved configuration ordered by name.
func (s *Store) List(ctx context.Context) ([]model.SavedConfig, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("list configs: store is closed")
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, config, created_at, updated_at
		FROM saved_configs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list configs: query: %w", err)
	}
	defer rows.Close()

	configs := []model.SavedConfig{}
	for rows.Next() {
		sc, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("list configs: %w", err)
		}
		configs = append(configs, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list configs: rows: %w", err)
	}
	return configs, nil
}

// Delete removes the configuration saved under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("delete config: store is closed")
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_configs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete config %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete config %q: rows affected: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete config %q: %w", name, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConfig(row scanner) (model.SavedConfig, error) {
	var (
		sc                   model.SavedConfig
		data                 string
		createdAt, updatedAt string
	)
	if err := row.Scan(&sc.ID, &sc.Name, &sc.Description, &data, &createdAt, &updatedAt); err != nil {
		return model.SavedConfig{}, err
	}
	if err := json.Unmarshal([]byte(data), &sc.Config); err != nil {
		return model.SavedConfig{}, fmt.Errorf("decode config %q: %w", sc.Name, err)
	}
	var err error
	if sc.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return model.SavedConfig{}, fmt.Errorf("parse created_at: %w", err)
	}
	if sc.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return model.SavedConfig{}, fmt.Errorf("parse updated_at: %w", err)
	}
	if sc.Config.Measurements == nil {
		sc.Config.Measurements = []model.Measurement{}
	}
	return sc, nil
}
