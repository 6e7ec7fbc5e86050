package mkvmerge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Info represents the parsed output of mkvmerge JSON identification.
type Info struct {
	Tracks []Track `json:"tracks"`
}

// Track describes one track as mkvmerge sees it.
type Track struct {
	ID         int             `json:"id"`
	Type       string          `json:"type"`
	Properties TrackProperties `json:"properties"`
}

// TrackProperties carries the per-track metadata used for mapping.
type TrackProperties struct {
	Language     string `json:"language"`
	DefaultTrack bool   `json:"default_track"`
}

// Identify runs mkvmerge JSON identification against the provided path.
func Identify(ctx context.Context, binary string, path string) (Info, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "mkvmerge"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Info{}, errors.New("mkvmerge identify: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-J", path)
	output, err := cmd.Output()
	if err != nil {
		detail := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return Info{}, fmt.Errorf("mkvmerge identify: %w: %s", err, detail)
	}

	var info Info
	if err := json.Unmarshal(output, &info); err != nil {
		return Info{}, fmt.Errorf("mkvmerge identify parse: %w", err)
	}
	return info, nil
}

// AudioTrackIDs returns the mkvmerge IDs of all audio tracks in container order.
func (i Info) AudioTrackIDs() []int {
	var ids []int
	for _, track := range i.Tracks {
		if strings.EqualFold(track.Type, "audio") {
			ids = append(ids, track.ID)
		}
	}
	return ids
}

// MapAudioTrackID translates an ffprobe audio stream position (0-based,
// counting audio streams only) into a mkvmerge track ID. The second return
// value is false when the container has fewer audio tracks than expected.
func (i Info) MapAudioTrackID(audioPosition int) (int, bool) {
	if audioPosition < 0 {
		return 0, false
	}
	ids := i.AudioTrackIDs()
	if audioPosition >= len(ids) {
		return 0, false
	}
	return ids[audioPosition], true
}
