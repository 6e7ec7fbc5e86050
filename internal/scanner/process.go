package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mkvswap/internal/backup"
	"mkvswap/internal/classify"
	"mkvswap/internal/language"
	"mkvswap/internal/logging"
	"mkvswap/internal/media/ffprobe"
	"mkvswap/internal/remux"
	"mkvswap/internal/report"
)

const (
	outcomeProbeError = "probe-error"
	outcomeRemuxed    = "remuxed"
	outcomeRemuxError = "remux-error"
	outcomeDryRun     = "eligible-dry-run"
)

// processFile runs the probe/classify/remux pipeline for one file. Every
// failure is converted into a warning entry; nothing here aborts the run.
func (s *Scanner) processFile(ctx context.Context, reporter *report.Reporter, path string) {
	target := s.cfg.Scan.TargetLanguage

	var tracks []classify.Track
	// The extension rule has the highest precedence, so non-mkv
	// candidates are classified without ever probing the streams.
	if classify.Classify(path, nil, target).Outcome != classify.OutcomeNotMkv {
		probeCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Tools.TimeoutSeconds)*time.Second)
		result, err := ffprobe.Inspect(probeCtx, s.cfg.Tools.FFprobe, path)
		cancel()
		if err != nil {
			s.logger.Warn("probe failed", logging.String("path", path), logging.Error(err))
			s.record(ctx, reporter, path, outcomeProbeError, "Failed to probe audio streams")
			return
		}
		tracks = make([]classify.Track, 0, len(result.Streams))
		for position, stream := range result.Streams {
			tracks = append(tracks, classify.Track{
				Position: position,
				Language: stream.Language(),
				Default:  stream.IsDefault(),
			})
		}
	}

	decision := classify.Classify(path, tracks, target)
	if decision.Outcome != classify.OutcomeEligible {
		s.logger.Debug("file skipped",
			logging.String("path", path),
			logging.String("outcome", decision.Outcome.String()))
		s.record(ctx, reporter, path, decision.Outcome.String(), decision.Reason)
		return
	}

	if s.cfg.Scan.DryRun {
		s.logger.Info("dry run, remux skipped",
			logging.String("path", path),
			logging.Int("track", decision.Position))
		s.recordHistory(ctx, reporter, path, outcomeDryRun, "")
		return
	}

	if err := s.executor.Run(ctx, path, decision.Position); err != nil {
		s.logger.Warn("remux failed", logging.String("path", path), logging.Error(err))
		s.record(ctx, reporter, path, outcomeRemuxError, remuxFailureReason(err, target))
		return
	}

	s.logger.Info("remux committed", logging.String("path", path))
	reporter.RecordSuccess(path, path+backup.Suffix)
	s.recordHistory(ctx, reporter, path, outcomeRemuxed, "")
}

// record adds a warning to both the JSON report and the history store.
func (s *Scanner) record(ctx context.Context, reporter *report.Reporter, path, outcome, reason string) {
	reporter.RecordWarning(path, reason)
	s.recordHistory(ctx, reporter, path, outcome, reason)
}

func (s *Scanner) recordHistory(ctx context.Context, reporter *report.Reporter, path, outcome, reason string) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordOutcome(ctx, reporter.RunID(), path, outcome, reason); err != nil {
		s.logger.Warn("history record failed", logging.String("path", path), logging.Error(err))
	}
}

// remuxFailureReason maps executor errors onto the warning vocabulary.
func remuxFailureReason(err error, target string) string {
	switch {
	case errors.Is(err, backup.ErrBackupExists):
		return "Backup file already exists - manual review needed"
	case errors.Is(err, remux.ErrNoTrackMapping):
		return fmt.Sprintf("Could not determine mkvmerge track ID for %s track", language.DisplayName(target))
	case errors.Is(err, remux.ErrInsufficientSpace):
		return "Insufficient free space for remux"
	default:
		return "Failed to remux"
	}
}
