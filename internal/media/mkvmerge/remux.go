package mkvmerge

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// RemuxArgs builds the mkvmerge argument list that rewrites input into
// output with defaultID as the only default audio track. Audio tracks are
// reordered so the default track comes first; video and subtitle tracks
// are copied untouched.
func RemuxArgs(input, output string, defaultID int, audioIDs []int) []string {
	ordered := make([]int, 0, len(audioIDs))
	ordered = append(ordered, defaultID)
	for _, id := range audioIDs {
		if id != defaultID {
			ordered = append(ordered, id)
		}
	}

	tracks := make([]string, len(ordered))
	for i, id := range ordered {
		tracks[i] = strconv.Itoa(id)
	}

	args := []string{
		"--output", output,
		"--audio-tracks", strings.Join(tracks, ","),
	}
	for _, id := range ordered {
		flag := "no"
		if id == defaultID {
			flag = "yes"
		}
		args = append(args, "--default-track", fmt.Sprintf("%d:%s", id, flag))
	}
	return append(args, input)
}

// Remux executes mkvmerge with the arguments produced by RemuxArgs.
func Remux(ctx context.Context, binary, input, output string, defaultID int, audioIDs []int) error {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "mkvmerge"
	}
	if strings.TrimSpace(input) == "" || strings.TrimSpace(output) == "" {
		return errors.New("mkvmerge remux: empty input or output path")
	}

	cmd := exec.CommandContext(ctx, binary, RemuxArgs(input, output, defaultID, audioIDs)...)
	if combined, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("mkvmerge remux: %w: %s", err, strings.TrimSpace(string(combined)))
	}
	return nil
}
