package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolut/themectl/internal/domain/entity"
)

func TestLoad_Defaults(t *testing.T) {
	m := NewManagerWithPath(t.TempDir())

	cfg, err := m.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.EnabledTargets)
	assert.Equal(t, 10, cfg.BackupRetention)
	assert.Equal(t, 10*time.Second, cfg.HandlerTimeout())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
enabled_targets = ["gtk", "qt"]
backup_retention = 5
handler_timeout_seconds = 30

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	m := NewManagerWithPath(dir)
	cfg, err := m.Load()
	require.NoError(t, err)

	targets, err := cfg.Targets()
	require.NoError(t, err)
	assert.Equal(t, []entity.ToolkitID{entity.ToolkitGTK, entity.ToolkitQt}, targets)
	assert.Equal(t, 5, cfg.BackupRetention)
	assert.Equal(t, 30*time.Second, cfg.HandlerTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte(`enabled_targets = ["gtk", "cocoa"]`), 0o644))

	m := NewManagerWithPath(dir)
	_, err := m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cocoa")
}

func TestLoad_RejectsZeroRetention(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte(`backup_retention = 0`), 0o644))

	m := NewManagerWithPath(dir)
	_, err := m.Load()
	require.Error(t, err)
}

func TestGet_BeforeLoadIsNil(t *testing.T) {
	m := NewManagerWithPath(t.TempDir())
	assert.Nil(t, m.Get())
}
