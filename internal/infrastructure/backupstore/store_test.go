package backupstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCreateAndRestore_ByteIdentical(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	gtkCSS := filepath.Join(work, "gtk-3.0", "gtk.css")
	qtConf := filepath.Join(work, "qt5ct", "colors.conf")
	writeFile(t, gtkCSS, "@define-color theme_bg_color #2e3440;\n")
	writeFile(t, qtConf, "[ColorScheme]\nactive_colors=#ffffff\n")

	backup, err := store.Create(ctx, "nord", []string{gtkCSS, qtConf})
	require.NoError(t, err)
	require.Len(t, backup.Files, 2)

	// Mutate both files, then restore.
	writeFile(t, gtkCSS, "@define-color theme_bg_color #000000;\n")
	require.NoError(t, os.Remove(qtConf))

	require.NoError(t, store.Restore(ctx, backup.ID))

	got, err := os.ReadFile(gtkCSS)
	require.NoError(t, err)
	assert.Equal(t, "@define-color theme_bg_color #2e3440;\n", string(got))

	got, err = os.ReadFile(qtConf)
	require.NoError(t, err)
	assert.Equal(t, "[ColorScheme]\nactive_colors=#ffffff\n", string(got))
}

func TestRestore_RemovesFilesAbsentAtBackupTime(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	missing := filepath.Join(work, "gtk-4.0", "gtk.css")

	backup, err := store.Create(ctx, "nord", []string{missing})
	require.NoError(t, err)
	require.Len(t, backup.Files, 1)
	assert.False(t, backup.Files[0].Present, "non-existent path is recorded as absent, not an error")

	// The file appears after the backup; restore must remove it again.
	writeFile(t, missing, "created later")
	require.NoError(t, store.Restore(ctx, backup.ID))

	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err), "restore must reproduce the pre-backup absence")
}

func TestRestore_IsRepeatable(t *testing.T) {
	// Restore never mutates the backup it reads from, so restoring twice
	// gives the same state.
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	target := filepath.Join(work, "settings.ini")
	writeFile(t, target, "original")

	backup, err := store.Create(ctx, "a", []string{target})
	require.NoError(t, err)

	writeFile(t, target, "changed once")
	require.NoError(t, store.Restore(ctx, backup.ID))
	writeFile(t, target, "changed twice")
	require.NoError(t, store.Restore(ctx, backup.ID))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

func TestCreate_RapidSuccessionDistinctIDs(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	target := filepath.Join(work, "f")
	writeFile(t, target, "x")

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		b, err := store.Create(ctx, "same-theme", []string{target})
		require.NoError(t, err)
		require.False(t, seen[b.ID], "duplicate backup id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	target := filepath.Join(work, "f")
	writeFile(t, target, "x")

	first, err := store.Create(ctx, "one", []string{target})
	require.NoError(t, err)
	second, err := store.Create(ctx, "two", []string{target})
	require.NoError(t, err)

	backups, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, second.ID, backups[0].ID)
	assert.Equal(t, first.ID, backups[1].ID)
}

func TestList_EmptyStoreIsNotAnError(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))
	backups, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestPrune_KeepsMostRecent(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	target := filepath.Join(work, "f")
	writeFile(t, target, "x")

	var ids []string
	for i := 0; i < 5; i++ {
		b, err := store.Create(ctx, "theme", []string{target})
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	require.NoError(t, store.Prune(ctx, 2))

	backups, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, ids[4], backups[0].ID)
	assert.Equal(t, ids[3], backups[1].ID)

	// Pruned directories are gone from disk too.
	_, err = os.Stat(filepath.Join(store.Root(), ids[0]))
	assert.True(t, os.IsNotExist(err))
}

func TestPrune_UnderRetentionIsNoop(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	target := filepath.Join(work, "f")
	writeFile(t, target, "x")

	_, err := store.Create(ctx, "theme", []string{target})
	require.NoError(t, err)

	require.NoError(t, store.Prune(ctx, 10))
	backups, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestCreate_SanitizesThemeName(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	b, err := store.Create(ctx, "My Theme/v2", nil)
	require.NoError(t, err)
	assert.NotContains(t, b.ID, "/")
	assert.NotContains(t, b.ID, " ")
	assert.Equal(t, "My Theme/v2", b.ThemeName, "metadata keeps the original name")
}

func TestCreate_DeduplicatesPaths(t *testing.T) {
	ctx := context.Background()
	work := t.TempDir()
	store := New(filepath.Join(work, "backups"))

	target := filepath.Join(work, "f")
	writeFile(t, target, "x")

	b, err := store.Create(ctx, "theme", []string{target, target, ""})
	require.NoError(t, err)
	assert.Len(t, b.Files, 1)
}
