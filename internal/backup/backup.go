// Package backup implements the rename-based safety protocol around a
// file rewrite.
//
// Acquire renames the original aside, the caller rewrites into the
// original path, then exactly one of Commit or Rollback resolves the
// guard. At every observation point after resolution at most one of
// {original, backup} exists, so a failed rewrite never leaves zero valid
// files or a corrupt partial behind.
package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Suffix is appended to the original path to form the backup path.
const Suffix = ".bak"

// ErrBackupExists indicates a stale backup from a previous interrupted
// run. The file is skipped rather than risking that backup's contents.
var ErrBackupExists = errors.New("backup file already exists")

// State tracks how a guard was resolved.
type State int

const (
	StatePending State = iota
	StateCommitted
	StateRolledBack
)

// Guard holds one file's backup while a rewrite is in flight.
type Guard struct {
	original string
	backup   string
	state    State
}

// Acquire renames path aside to its backup location. It fails with
// ErrBackupExists when a backup is already present and leaves the
// original untouched on any error.
func Acquire(path string) (*Guard, error) {
	backupPath := path + Suffix
	if _, err := os.Lstat(backupPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrBackupExists, backupPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("inspect backup path: %w", err)
	}
	if err := os.Rename(path, backupPath); err != nil {
		return nil, fmt.Errorf("rename to backup: %w", err)
	}
	return &Guard{original: path, backup: backupPath, state: StatePending}, nil
}

// OriginalPath returns the path the rewrite must produce.
func (g *Guard) OriginalPath() string { return g.original }

// BackupPath returns where the original content currently lives.
func (g *Guard) BackupPath() string { return g.backup }

// State returns how the guard has been resolved so far.
func (g *Guard) State() State { return g.state }

// Commit discards the backup after a verified successful rewrite.
func (g *Guard) Commit() error {
	if g.state != StatePending {
		return fmt.Errorf("guard for %s already resolved", g.original)
	}
	if err := os.Remove(g.backup); err != nil {
		return fmt.Errorf("remove backup: %w", err)
	}
	g.state = StateCommitted
	return nil
}

// Rollback deletes any partial output at the original path and restores
// the backup. Safe to call when the rewrite never produced output.
func (g *Guard) Rollback() error {
	if g.state != StatePending {
		return fmt.Errorf("guard for %s already resolved", g.original)
	}
	if err := os.Remove(g.original); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove partial output: %w", err)
	}
	if err := os.Rename(g.backup, g.original); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	g.state = StateRolledBack
	return nil
}
