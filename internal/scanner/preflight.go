package scanner

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"mkvswap/internal/deps"
)

func (s *Scanner) preflight(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan root %s is not a directory", root)
	}
	if err := unix.Access(root, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("scan root %s: insufficient permissions: %w", root, err)
	}

	requirements := deps.Requirements(s.cfg.Tools.FFprobe, s.cfg.Tools.Mkvmerge)
	if s.cfg.Scan.DryRun {
		// A dry run only probes; mkvmerge is never invoked.
		requirements = requirements[:1]
	}
	if missing := deps.Missing(deps.CheckBinaries(requirements)); len(missing) > 0 {
		return fmt.Errorf("missing required binaries: %s", strings.Join(missing, ", "))
	}
	return nil
}
