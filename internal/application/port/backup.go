package port

import (
	"context"
	"fmt"

	"github.com/avolut/themectl/internal/domain/entity"
)

// BackupError reports a failed backup store operation. Create failures abort
// an apply before any handler runs; restore failures are escalated by the
// orchestrator as requiring manual recovery.
type BackupError struct {
	Op  string // "create", "restore", "list", "prune"
	ID  string // backup identifier when known
	Err error
}

func (e *BackupError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("backup %s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("backup %s: %v", e.Op, e.Err)
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

// BackupStore snapshots and restores the mutable configuration surface.
// Backups are immutable once created; restore never mutates the backup it
// reads from.
type BackupStore interface {
	// Create captures the current byte content of every path. Paths that do
	// not exist are recorded as absent, not treated as errors.
	Create(ctx context.Context, themeName string, paths []string) (entity.Backup, error)

	// Restore writes back the exact snapshot bytes for present entries and
	// removes paths recorded as absent, reproducing the pre-backup state
	// byte-identically.
	Restore(ctx context.Context, id string) error

	// Get loads one backup's metadata.
	Get(ctx context.Context, id string) (entity.Backup, error)

	// List returns all backups, most recent first.
	List(ctx context.Context) ([]entity.Backup, error)

	// Prune deletes all but the keep most recent backups. Individual delete
	// failures are logged and skipped, never propagated.
	Prune(ctx context.Context, keep int) error
}
