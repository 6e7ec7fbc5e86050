package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"mkvswap/internal/language"
)

// Result represents the parsed output from an ffprobe audio inspection.
type Result struct {
	Streams []Stream `json:"streams"`
}

// Stream describes a single audio stream in the media container.
type Stream struct {
	Index       int               `json:"index"`
	CodecName   string            `json:"codec_name"`
	Channels    int               `json:"channels"`
	Disposition Disposition       `json:"disposition"`
	Tags        map[string]string `json:"tags"`
}

// Disposition carries the container-level per-stream flags.
type Disposition struct {
	Default int `json:"default"`
	Forced  int `json:"forced"`
}

// Language returns the stream's normalized language tag, or
// language.Undetermined when the container carries none.
func (s Stream) Language() string {
	return language.Normalize(language.ExtractFromTags(s.Tags))
}

// IsDefault reports whether the stream carries the default disposition flag.
func (s Stream) IsDefault() bool {
	return s.Disposition.Default == 1
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response. Only audio streams are selected; container stream order is
// preserved.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index,codec_name,channels,disposition:stream_tags=language",
		"-of", "json",
		path)
	output, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, detail)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}
