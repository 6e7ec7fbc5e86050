package remux

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// hasFreeSpace reports whether the filesystem holding path can absorb a
// second copy of a file of the given size. The remux writes the whole
// container again before the backup is discarded, so peak usage is
// roughly double the file size. A statfs failure is not treated as a
// veto; the remux itself will surface a write error if space runs out.
func hasFreeSpace(path string, size int64) (bool, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(filepath.Dir(path), &stat); err != nil {
		return true, fmt.Errorf("statfs %s: %w", filepath.Dir(path), err)
	}
	free := int64(stat.Bavail) * int64(stat.Bsize)
	return free >= size, nil
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Size(), nil
}
