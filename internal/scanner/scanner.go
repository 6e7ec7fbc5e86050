// Package scanner drives one library scan end to end: preflight, walk,
// per-file probe/classify/remux, and report flushing. Files are processed
// strictly one at a time; the only blocking calls are the external tool
// invocations.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"mkvswap/internal/config"
	"mkvswap/internal/history"
	"mkvswap/internal/logging"
	"mkvswap/internal/remux"
	"mkvswap/internal/report"
	"mkvswap/internal/walker"
)

// LockFileName is created inside the scan root to fence off concurrent
// runs over the same tree.
const LockFileName = ".mkvswap.lock"

// ErrAlreadyRunning indicates another scan holds the root's lock.
var ErrAlreadyRunning = errors.New("another scan is already running for this root")

// Scanner orchestrates a single run over one library root.
type Scanner struct {
	cfg      *config.Config
	logger   *slog.Logger
	executor *remux.Executor
	store    *history.Store
}

// Summary describes a completed run.
type Summary struct {
	RunID          string
	Root           string
	DryRun         bool
	FilesSeen      int
	Successes      int
	Warnings       int
	SuccessReport  string
	WarningsReport string
	Duration       time.Duration
}

// New constructs a Scanner. The history store may be nil when disabled.
func New(cfg *config.Config, logger *slog.Logger, store *history.Store) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := time.Duration(cfg.Tools.TimeoutSeconds) * time.Second
	return &Scanner{
		cfg:      cfg,
		logger:   logger.With(logging.Component("scanner")),
		executor: remux.NewExecutor(cfg.Tools.Mkvmerge, timeout, logger),
		store:    store,
	}
}

// Run scans the tree under root. Per-file failures become warnings; only
// preflight failures (missing binaries, unreadable root, concurrent run)
// abort before any file is processed.
func (s *Scanner) Run(ctx context.Context, root string) (*Summary, error) {
	root, err := config.ExpandPath(root)
	if err != nil {
		return nil, err
	}
	if err := s.preflight(root); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(root, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	reporter := report.New(s.cfg.Paths.ReportDir)
	s.logger.Info("scan started",
		logging.String("run_id", reporter.RunID()),
		logging.String("root", root),
		logging.Bool("dry_run", s.cfg.Scan.DryRun))

	if s.store != nil {
		if err := s.store.BeginRun(ctx, reporter.RunID(), root, s.cfg.Scan.DryRun, reporter.StartedAt()); err != nil {
			return nil, err
		}
	}

	filesSeen := 0
	walkErr := walker.Walk(root, s.cfg.IsCandidateExtension, func(path string) {
		if ctx.Err() != nil {
			return
		}
		filesSeen++
		s.processFile(ctx, reporter, path)
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	successPath, warningsPath, err := reporter.Flush()
	if err != nil {
		return nil, err
	}
	successes, warnings := reporter.Counts()
	if s.store != nil {
		if err := s.store.FinishRun(ctx, reporter.RunID(), filesSeen, successes, warnings); err != nil {
			return nil, err
		}
	}

	summary := &Summary{
		RunID:          reporter.RunID(),
		Root:           root,
		DryRun:         s.cfg.Scan.DryRun,
		FilesSeen:      filesSeen,
		Successes:      successes,
		Warnings:       warnings,
		SuccessReport:  successPath,
		WarningsReport: warningsPath,
		Duration:       time.Since(reporter.StartedAt()),
	}
	s.logger.Info("scan finished",
		logging.String("run_id", summary.RunID),
		logging.Int("files", summary.FilesSeen),
		logging.Int("successes", summary.Successes),
		logging.Int("warnings", summary.Warnings),
		logging.Duration("elapsed", summary.Duration))
	return summary, nil
}
