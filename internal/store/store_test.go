package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TrimCut/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "trimcut.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func kitchenConfig() model.PlanConfig {
	return model.NewPlanConfig([]model.Measurement{
		{ID: "k1", Length: 144, Room: "Kitchen", Wall: "North"},
		{ID: "k2", Length: 200, Room: "Kitchen", Wall: "East", SplitBalanced: true},
	}, []float64{96, 120, 144}, 0.125)
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	saved, err := s.Save(ctx, model.NewSavedConfig("Kitchen", "ground floor", kitchenConfig()))
	require.NoError(t, err)

	got, err := s.Get(ctx, "Kitchen")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "ground floor", got.Description)
	assert.Equal(t, kitchenConfig(), got.Config)
	assert.True(t, got.Config.Measurements[1].SplitBalanced)
}

func TestSaveUpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first := model.NewSavedConfig("Hall", "v1", kitchenConfig())
	first.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	original, err := s.Save(ctx, first)
	require.NoError(t, err)

	second := model.NewSavedConfig("Hall", "v2", model.NewPlanConfig(
		[]model.Measurement{{ID: "h1", Length: 50}}, []float64{96}, 0))
	updated, err := s.Save(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(first.CreatedAt), "created time must survive an update")
	assert.Equal(t, "v2", updated.Description)
	require.Len(t, updated.Config.Measurements, 1)
	assert.Equal(t, 0.0, updated.Config.KerfOrDefault())

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListOrderedByName(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, name := range []string{"Stairs", "Attic", "Kitchen"} {
		_, err := s.Save(ctx, model.NewSavedConfig(name, "", kitchenConfig()))
		require.NoError(t, err)
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	names := []string{}
	for _, sc := range all {
		names = append(names, sc.Name)
	}
	assert.Equal(t, []string{"Attic", "Kitchen", "Stairs"}, names)
}

func TestListEmpty(t *testing.T) {
	all, err := openTestStore(t).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGetAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Save(ctx, model.NewSavedConfig("Den", "", kitchenConfig()))
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "Den"))

	_, err = s.Get(ctx, "Den")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRequiresName(t *testing.T) {
	_, err := openTestStore(t).Save(context.Background(), model.SavedConfig{Config: kitchenConfig()})
	assert.Error(t, err)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trimcut.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Save(ctx, model.NewSavedConfig("Porch", "", kitchenConfig()))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "Porch")
	require.NoError(t, err)
	assert.Equal(t, "Porch", got.Name)
}

func TestMigrateIdempotent(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, Migrate(s.db))
	require.NoError(t, Migrate(s.db))
	assert.Error(t, Migrate(nil))
}
