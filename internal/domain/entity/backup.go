package entity

import (
	"fmt"
	"time"
)

// BackupFile records one captured path. Absent paths are captured too:
// restore removes them so the pre-backup state comes back byte-identical.
type BackupFile struct {
	Path    string `json:"path"`
	Present bool   `json:"present"`
	Mode    uint32 `json:"mode,omitempty"`
}

// Backup is an immutable snapshot of the mutable configuration surface taken
// before a theme apply. ID is derived from the theme name and a
// microsecond-precision timestamp; two backups in the same millisecond must
// not collide.
type Backup struct {
	ID        string       `json:"id"`
	ThemeName string       `json:"theme_name"`
	CreatedAt time.Time    `json:"created_at"`
	Files     []BackupFile `json:"files"`
}

// BackupID formats the canonical identifier
// backup_<theme>_<YYYYMMDD>_<HHMMSS>_<microseconds>.
func BackupID(themeName string, ts time.Time) string {
	return fmt.Sprintf("backup_%s_%s_%06d",
		themeName, ts.Format("20060102_150405"), ts.Nanosecond()/1000)
}
