package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/shade/internal/theme"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.MigrateUp(context.Background())
	require.NoError(t, err)
	return database
}

func TestPreferenceRepositoryMode(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(openTestDB(t))

	_, err := repo.GetMode(ctx)
	require.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, repo.SaveMode(ctx, theme.Dark))
	mode, err := repo.GetMode(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.Dark, mode)

	require.NoError(t, repo.SaveMode(ctx, theme.Light))
	mode, err = repo.GetMode(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.Light, mode)
}

func TestPreferenceRepositoryOverrides(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(openTestDB(t))

	require.NoError(t, repo.SaveOverride(ctx, theme.Dark, theme.FillPrimary, theme.RGB(1, 2, 3)))
	require.NoError(t, repo.SaveOverride(ctx, theme.Dark, theme.FillPrimary, theme.RGB(4, 5, 6)))
	require.NoError(t, repo.SaveOverride(ctx, theme.Dark, theme.TextPrimary, theme.RGB(7, 8, 9)))
	require.NoError(t, repo.SaveOverride(ctx, theme.Light, theme.TextPrimary, theme.RGB(0, 0, 0)))

	overrides, err := repo.ListOverrides(ctx, theme.Dark)
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	require.Equal(t, theme.FillPrimary, overrides[0].Key)
	require.Equal(t, theme.RGB(4, 5, 6), overrides[0].Color)
	require.NotEmpty(t, overrides[0].ID)
	require.False(t, overrides[0].UpdatedAt.IsZero())

	deleted, err := repo.DeleteOverrides(ctx, theme.Dark)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	overrides, err = repo.ListOverrides(ctx, theme.Dark)
	require.NoError(t, err)
	require.Empty(t, overrides)

	overrides, err = repo.ListOverrides(ctx, theme.Light)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
}

func TestPreferenceRepositoryRejectsUnknownKey(t *testing.T) {
	repo := NewPreferenceRepository(openTestDB(t))
	err := repo.SaveOverride(context.Background(), theme.Dark, theme.ColorKey(42), theme.RGB(0, 0, 0))
	require.ErrorIs(t, err, theme.ErrUnknownColorKey)
}

func TestPreferenceRepositoryRestore(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(openTestDB(t))

	require.NoError(t, repo.SaveMode(ctx, theme.Dark))
	require.NoError(t, repo.SaveOverride(ctx, theme.Dark, theme.ScopeBackground, theme.RGB(0x22, 0x22, 0x22)))

	store, err := theme.NewStore(theme.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.NoError(t, repo.Restore(ctx, store))

	require.Equal(t, theme.Dark, store.ActiveMode())
	c, err := store.ActiveColor(theme.ScopeBackground)
	require.NoError(t, err)
	require.Equal(t, theme.RGB(0x22, 0x22, 0x22), c)

	light := store.Palette(theme.Light)
	require.True(t, light.Equal(theme.DefaultPalette(theme.Light)))
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shade.db")
	database, err := Open(path)
	require.NoError(t, err)
	defer database.Close()

	n, err := database.MigrateUp(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(migrations), n)
}
