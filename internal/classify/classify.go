// Package classify decides what, if anything, to do with one media file.
//
// Classification is a pure function over the file path and its probed
// audio tracks; it performs no I/O. Rules are evaluated in a fixed
// precedence order and the first match wins.
package classify

import (
	"fmt"
	"path/filepath"
	"strings"

	"mkvswap/internal/language"
)

// Outcome is the terminal classification for one file.
type Outcome int

const (
	// OutcomeEligible marks a file whose sole target-language audio track
	// can safely be made the default.
	OutcomeEligible Outcome = iota
	// OutcomeNotMkv marks a candidate whose container format cannot be
	// rewritten safely.
	OutcomeNotMkv
	// OutcomeNoTargetTrack marks a file without any target-language audio.
	OutcomeNoTargetTrack
	// OutcomeMultipleTarget marks a file with several target-language
	// audio tracks; picking one automatically would be a guess.
	OutcomeMultipleTarget
	// OutcomeAlreadyDefault marks a file that needs no change.
	OutcomeAlreadyDefault
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEligible:
		return "eligible"
	case OutcomeNotMkv:
		return "not-mkv"
	case OutcomeNoTargetTrack:
		return "no-target-track"
	case OutcomeMultipleTarget:
		return "multiple-target"
	case OutcomeAlreadyDefault:
		return "already-default"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Track is one audio stream as the classifier sees it. Position counts
// audio streams only, in container order, starting at zero.
type Track struct {
	Position int
	Language string
	Default  bool
}

// Result pairs an outcome with the data its handler needs: the track to
// promote for eligible files, a human-readable reason for everything else.
type Result struct {
	Outcome  Outcome
	Position int
	Reason   string
}

// Classify applies the decision rules to one file. Rules, first match wins:
// non-mkv extension, zero target-language tracks, more than one, already
// default, otherwise eligible. The extension check runs first so stream
// contents are never consulted for containers that cannot be edited.
func Classify(path string, tracks []Track, target string) Result {
	if !strings.EqualFold(filepath.Ext(path), ".mkv") {
		return Result{Outcome: OutcomeNotMkv, Position: -1, Reason: "Not MKV - cannot safely edit defaults"}
	}

	display := language.DisplayName(target)
	var matches []Track
	for _, track := range tracks {
		if language.Matches(track.Language, target) {
			matches = append(matches, track)
		}
	}

	switch {
	case len(matches) == 0:
		return Result{Outcome: OutcomeNoTargetTrack, Position: -1, Reason: fmt.Sprintf("No %s audio track found", display)}
	case len(matches) > 1:
		return Result{Outcome: OutcomeMultipleTarget, Position: -1, Reason: fmt.Sprintf("Multiple %s audio tracks - manual review needed", display)}
	case matches[0].Default:
		return Result{Outcome: OutcomeAlreadyDefault, Position: -1, Reason: fmt.Sprintf("%s track already default", display)}
	default:
		return Result{Outcome: OutcomeEligible, Position: matches[0].Position}
	}
}
