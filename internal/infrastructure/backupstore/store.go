// Package backupstore persists configuration snapshots on the filesystem.
//
// Layout: one directory per backup under the store root, named by the backup
// identifier. Captured file content lives in numbered blob files; a
// metadata.json written last records the theme, timestamp, and the
// path-to-blob mapping including absent paths.
package backupstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/entity"
	"github.com/avolut/themectl/internal/logging"
)

const (
	metadataFile = "metadata.json"
	idPrefix     = "backup_"
)

// Store implements port.BackupStore on a local directory.
type Store struct {
	root string
}

// New creates a store rooted at dir. The directory is created lazily on the
// first Create.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// Create implements port.BackupStore. Non-existent paths are recorded as
// absent, not errors. The metadata file is written last so a half-written
// backup directory is never mistaken for a complete one.
func (s *Store) Create(ctx context.Context, themeName string, paths []string) (entity.Backup, error) {
	fail := func(err error) (entity.Backup, error) {
		return entity.Backup{}, &port.BackupError{Op: "create", Err: err}
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fail(err)
	}

	now := time.Now()
	backup := entity.Backup{
		ID:        entity.BackupID(sanitizeName(themeName), now),
		ThemeName: themeName,
		CreatedAt: now,
	}

	dir := filepath.Join(s.root, backup.ID)
	if err := os.Mkdir(dir, 0o755); err != nil {
		// Same theme within the same microsecond. The caller may retry;
		// colliding silently would overwrite an immutable backup.
		return fail(fmt.Errorf("backup id collision: %w", err))
	}

	for i, path := range dedupe(paths) {
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				backup.Files = append(backup.Files, entity.BackupFile{Path: path, Present: false})
				continue
			}
			return fail(fmt.Errorf("read %s: %w", path, err))
		}

		mode := fs.FileMode(0o644)
		if st, err := os.Stat(path); err == nil {
			mode = st.Mode().Perm()
		}

		blob := filepath.Join(dir, blobName(i))
		if err := os.WriteFile(blob, content, 0o600); err != nil {
			return fail(fmt.Errorf("write snapshot of %s: %w", path, err))
		}
		backup.Files = append(backup.Files, entity.BackupFile{
			Path:    path,
			Present: true,
			Mode:    uint32(mode),
		})
	}

	meta, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fail(err)
	}
	if err := os.WriteFile(filepath.Join(dir, metadataFile), meta, 0o600); err != nil {
		return fail(err)
	}

	logging.FromContext(ctx).Debug().
		Str("backup_id", backup.ID).
		Int("files", len(backup.Files)).
		Msg("backup created")
	return backup, nil
}

// Restore implements port.BackupStore. Present entries are written back
// byte-identically with their original permissions; absent entries are
// removed so files created after the backup disappear again. The backup
// itself is read-only throughout.
func (s *Store) Restore(ctx context.Context, id string) error {
	fail := func(err error) error {
		return &port.BackupError{Op: "restore", ID: id, Err: err}
	}

	backup, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	dir := filepath.Join(s.root, id)

	// Blob slots follow capture order: entry i owns blob i, absent entries
	// hold an empty slot.
	for i, f := range backup.Files {
		if !f.Present {
			if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fail(fmt.Errorf("remove %s: %w", f.Path, err))
			}
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, blobName(i)))
		if err != nil {
			return fail(fmt.Errorf("read snapshot of %s: %w", f.Path, err))
		}

		mode := fs.FileMode(0o644)
		if f.Mode != 0 {
			mode = fs.FileMode(f.Mode)
		}
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return fail(fmt.Errorf("recreate parent of %s: %w", f.Path, err))
		}
		if err := os.WriteFile(f.Path, content, mode); err != nil {
			return fail(fmt.Errorf("write %s: %w", f.Path, err))
		}
	}

	logging.FromContext(ctx).Info().
		Str("backup_id", id).
		Int("files", len(backup.Files)).
		Msg("backup restored")
	return nil
}

// Get implements port.BackupStore.
func (s *Store) Get(ctx context.Context, id string) (entity.Backup, error) {
	raw, err := os.ReadFile(filepath.Join(s.root, id, metadataFile))
	if err != nil {
		return entity.Backup{}, &port.BackupError{Op: "get", ID: id, Err: err}
	}
	var backup entity.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return entity.Backup{}, &port.BackupError{Op: "get", ID: id, Err: fmt.Errorf("corrupt metadata: %w", err)}
	}
	return backup, nil
}

// List implements port.BackupStore, most recent first. Directories without a
// readable metadata file (interrupted creates) are ignored.
func (s *Store) List(ctx context.Context) ([]entity.Backup, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &port.BackupError{Op: "list", Err: err}
	}

	var backups []entity.Backup
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), idPrefix) {
			continue
		}
		backup, err := s.Get(ctx, e.Name())
		if err != nil {
			logging.FromContext(ctx).Warn().Str("backup_id", e.Name()).Err(err).
				Msg("skipping unreadable backup")
			continue
		}
		backups = append(backups, backup)
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Prune implements port.BackupStore. Deletion is best-effort: a backup that
// cannot be removed is logged and skipped, never fatal.
func (s *Store) Prune(ctx context.Context, keep int) error {
	backups, err := s.List(ctx)
	if err != nil {
		return &port.BackupError{Op: "prune", Err: err}
	}
	if keep < 0 {
		keep = 0
	}
	if len(backups) <= keep {
		return nil
	}

	log := logging.FromContext(ctx)
	for _, b := range backups[keep:] {
		if err := os.RemoveAll(filepath.Join(s.root, b.ID)); err != nil {
			log.Warn().Str("backup_id", b.ID).Err(err).Msg("could not delete backup")
			continue
		}
		log.Debug().Str("backup_id", b.ID).Msg("backup pruned")
	}
	return nil
}

func blobName(i int) string {
	return fmt.Sprintf("file_%04d", i)
}

// sanitizeName keeps theme names filesystem-safe inside backup identifiers.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, name)
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

var _ port.BackupStore = (*Store)(nil)
