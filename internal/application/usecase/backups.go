package usecase

import (
	"context"
	"fmt"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/entity"
	"github.com/avolut/themectl/internal/logging"
)

// ListBackupsUseCase lists stored configuration backups, most recent first.
type ListBackupsUseCase struct {
	store port.BackupStore
}

// NewListBackupsUseCase creates a new ListBackupsUseCase.
func NewListBackupsUseCase(store port.BackupStore) *ListBackupsUseCase {
	return &ListBackupsUseCase{store: store}
}

// Execute returns all backups.
func (uc *ListBackupsUseCase) Execute(ctx context.Context) ([]entity.Backup, error) {
	backups, err := uc.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	return backups, nil
}

// RestoreBackupUseCase restores one backup by identifier. It shares the
// apply gate: restore and backup touch the same files, so they must never
// overlap.
type RestoreBackupUseCase struct {
	store port.BackupStore
	gate  *Gate
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase.
func NewRestoreBackupUseCase(store port.BackupStore, gate *Gate) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{store: store, gate: gate}
}

// Execute restores the identified backup.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context, id string) error {
	if !uc.gate.TryAcquire() {
		return ErrApplyInProgress
	}
	defer uc.gate.Release()

	log := logging.FromContext(ctx)
	if err := uc.store.Restore(ctx, id); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	log.Info().Str("backup_id", id).Msg("backup restored")
	return nil
}

// PruneBackupsUseCase trims the backup store down to a retention count.
type PruneBackupsUseCase struct {
	store port.BackupStore
}

// NewPruneBackupsUseCase creates a new PruneBackupsUseCase.
func NewPruneBackupsUseCase(store port.BackupStore) *PruneBackupsUseCase {
	return &PruneBackupsUseCase{store: store}
}

// Execute deletes all but the keep most recent backups.
func (uc *PruneBackupsUseCase) Execute(ctx context.Context, keep int) error {
	if keep <= 0 {
		keep = 10
	}
	if err := uc.store.Prune(ctx, keep); err != nil {
		return fmt.Errorf("prune backups: %w", err)
	}
	return nil
}
