// Package report accumulates per-file outcomes for one run and flushes
// them to a pair of timestamped JSON documents at the end of the walk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Success records one committed remux.
type Success struct {
	Path        string `json:"path"`
	RenamedFrom string `json:"renamed_from,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// Warning records one file that was skipped or failed.
type Warning struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Reporter collects outcomes in memory. It is not safe for concurrent
// use; the scan processes one file at a time.
type Reporter struct {
	runID     string
	startedAt time.Time
	dir       string
	successes []Success
	warnings  []Warning
}

// New returns a Reporter writing its documents into dir, stamped with a
// fresh run identifier and the run's start time.
func New(dir string) *Reporter {
	return &Reporter{
		runID:     uuid.NewString(),
		startedAt: time.Now(),
		dir:       dir,
	}
}

// RunID returns the unique identifier for this run.
func (r *Reporter) RunID() string { return r.runID }

// StartedAt returns the run's start time, which also names the output files.
func (r *Reporter) StartedAt() time.Time { return r.startedAt }

// RecordSuccess appends a committed remux. renamedFrom is the backup path
// the original briefly lived at.
func (r *Reporter) RecordSuccess(path, renamedFrom string) {
	r.successes = append(r.successes, Success{
		Path:        path,
		RenamedFrom: renamedFrom,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// RecordWarning appends a skipped or failed file with its reason.
func (r *Reporter) RecordWarning(path, reason string) {
	r.warnings = append(r.warnings, Warning{Path: path, Reason: reason})
}

// Counts returns the number of successes and warnings recorded so far.
func (r *Reporter) Counts() (successes, warnings int) {
	return len(r.successes), len(r.warnings)
}

// Successes returns the recorded successes in order.
func (r *Reporter) Successes() []Success { return r.successes }

// Warnings returns the recorded warnings in order.
func (r *Reporter) Warnings() []Warning { return r.warnings }

// Flush writes both documents, named with the run's start timestamp, and
// returns their paths. Both files are always written, even when empty,
// so a run always leaves a complete pair behind.
func (r *Reporter) Flush() (successPath, warningsPath string, err error) {
	stamp := r.startedAt.Format("20060102-150405")
	successPath = filepath.Join(r.dir, fmt.Sprintf("success-%s.json", stamp))
	warningsPath = filepath.Join(r.dir, fmt.Sprintf("warnings-%s.json", stamp))

	if err := writeJSON(successPath, r.successes); err != nil {
		return "", "", err
	}
	if err := writeJSON(warningsPath, r.warnings); err != nil {
		return "", "", err
	}
	return successPath, warningsPath, nil
}

func writeJSON[T any](path string, entries []T) error {
	if entries == nil {
		entries = []T{}
	}
	blob, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(blob, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
