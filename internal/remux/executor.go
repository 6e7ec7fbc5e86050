// Package remux rewrites a Matroska container so one audio track becomes
// the default, following the backup/remux/verify/commit-or-rollback
// protocol that keeps exactly one valid container at the original path
// on every exit path.
package remux

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"mkvswap/internal/backup"
	"mkvswap/internal/logging"
	"mkvswap/internal/media/mkvmerge"
)

// ErrNoTrackMapping indicates the ffprobe audio position could not be
// paired with a mkvmerge track ID.
var ErrNoTrackMapping = errors.New("could not determine mkvmerge track id")

// ErrInsufficientSpace indicates the filesystem cannot hold the remux output.
var ErrInsufficientSpace = errors.New("insufficient free space for remux")

// Executor drives mkvmerge under the backup protocol.
type Executor struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewExecutor returns an Executor invoking the given mkvmerge binary with
// a per-invocation timeout.
func NewExecutor(binary string, timeout time.Duration, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		binary:  binary,
		timeout: timeout,
		logger:  logger.With(logging.Component("remux")),
	}
}

// Run makes the audio track at the given ffprobe position the default
// track of the container at path. No retry is attempted; any failure is
// terminal for this file and leaves the original container in place.
func (e *Executor) Run(ctx context.Context, path string, audioPosition int) error {
	size, err := fileSize(path)
	if err != nil {
		return err
	}
	if ok, spaceErr := hasFreeSpace(path, size); spaceErr != nil {
		e.logger.Debug("free space check skipped", logging.String("path", path), logging.Error(spaceErr))
	} else if !ok {
		return fmt.Errorf("%w: need %d bytes", ErrInsufficientSpace, size)
	}

	// Identification runs against the original before it moves aside.
	identifyCtx, cancel := context.WithTimeout(ctx, e.timeout)
	info, err := mkvmerge.Identify(identifyCtx, e.binary, path)
	cancel()
	if err != nil {
		return err
	}
	trackID, ok := info.MapAudioTrackID(audioPosition)
	if !ok {
		return fmt.Errorf("%w: audio position %d, container has %d audio tracks",
			ErrNoTrackMapping, audioPosition, len(info.AudioTrackIDs()))
	}

	guard, err := backup.Acquire(path)
	if err != nil {
		return err
	}

	remuxCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	remuxErr := mkvmerge.Remux(remuxCtx, e.binary, guard.BackupPath(), guard.OriginalPath(), trackID, info.AudioTrackIDs())
	if remuxErr == nil {
		remuxErr = verifyOutput(guard.OriginalPath())
	}
	if remuxErr != nil {
		if rollbackErr := guard.Rollback(); rollbackErr != nil {
			return errors.Join(remuxErr, rollbackErr)
		}
		e.logger.Debug("rolled back after failed remux", logging.String("path", path), logging.Error(remuxErr))
		return remuxErr
	}

	if err := guard.Commit(); err != nil {
		return err
	}
	e.logger.Debug("remux committed",
		logging.String("path", path),
		logging.Int("track_id", trackID),
		logging.Int64("size", size))
	return nil
}

func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("remux output missing: %w", err)
	}
	if info.Size() == 0 {
		return errors.New("remux output is empty")
	}
	return nil
}
