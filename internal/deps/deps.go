// Package deps verifies the external binaries mkvswap drives.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary mkvswap relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a required binary.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the binaries a scan needs, resolved from config values.
func Requirements(ffprobe, mkvmerge string) []Requirement {
	return []Requirement{
		{
			Name:        "FFprobe",
			Command:     ffprobe,
			Description: "Required for audio stream inspection",
		},
		{
			Name:        "mkvmerge",
			Command:     mkvmerge,
			Description: "Required for rewriting container defaults",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: req.Description,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Missing returns the names of unavailable binaries, or nil when all are present.
func Missing(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Available {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
