package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avolut/themectl/internal/domain/color"
)

func TestBackupID_MicrosecondPrecision(t *testing.T) {
	// Two timestamps inside the same millisecond must produce distinct IDs.
	base := time.Date(2025, 6, 1, 12, 30, 45, 123_000_000, time.UTC)
	a := BackupID("nord", base)
	b := BackupID("nord", base.Add(250*time.Microsecond))

	assert.Equal(t, "backup_nord_20250601_123045_123000", a)
	assert.Equal(t, "backup_nord_20250601_123045_123250", b)
	assert.NotEqual(t, a, b)
}

func TestBackupID_DistinctThemesSameInstant(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 45, 123_456_000, time.UTC)
	assert.NotEqual(t, BackupID("nord", ts), BackupID("dracula", ts))
}

func TestApplicationResult_SuccessRate(t *testing.T) {
	tests := []struct {
		name      string
		succeeded int
		failed    int
		want      float64
	}{
		{"all succeed", 3, 0, 1.0},
		{"two thirds", 2, 1, 2.0 / 3.0},
		{"exactly half", 1, 1, 0.5},
		{"all fail", 0, 2, 0.0},
		{"nothing invoked", 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r ApplicationResult
			for i := 0; i < tt.succeeded; i++ {
				r.Results = append(r.Results, HandlerResult{Success: true})
			}
			for i := 0; i < tt.failed; i++ {
				r.Results = append(r.Results, HandlerResult{Success: false})
			}
			assert.InDelta(t, tt.want, r.SuccessRate(), 1e-9)
			assert.Equal(t, tt.succeeded, r.Succeeded())
			assert.Equal(t, tt.failed, r.Failed())
		})
	}
}

func TestThemeData_CloneIsDeep(t *testing.T) {
	orig := ThemeData{
		ThemeName: "nord",
		Toolkit:   ToolkitGTK,
		Colors:    map[string]color.Value{"theme_bg_color": color.New(1, 2, 3)},
		Targets:   []string{"/tmp/a"},
	}

	clone := orig.Clone()
	clone.Colors["theme_bg_color"] = color.New(9, 9, 9)
	clone.Targets[0] = "/tmp/b"

	assert.Equal(t, color.New(1, 2, 3), orig.Colors["theme_bg_color"])
	assert.Equal(t, "/tmp/a", orig.Targets[0])
}

func TestSchema_UnsetRolesAbsent(t *testing.T) {
	s := NewSchema("partial")
	s.Set(RoleAccentPrimary, color.New(0x35, 0x84, 0xe4))

	_, ok := s.Get(RoleSurfacePrimary)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []SemanticRole{RoleAccentPrimary}, s.Roles())
}

func TestToolkitValid(t *testing.T) {
	assert.True(t, ToolkitGTK.Valid())
	assert.True(t, ToolkitSnap.Valid())
	assert.False(t, ToolkitID("win32").Valid())
}
