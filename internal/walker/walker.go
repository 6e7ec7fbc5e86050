// Package walker enumerates scan candidates under a library root.
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Walk calls visit for every candidate file under root, recursively, in
// traversal order. A missing or unreadable root aborts with an error
// before any visit; errors below the root skip the affected subtree so
// one unreadable directory cannot abort a library-wide run.
func Walk(root string, candidate func(name string) bool, visit func(path string)) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan root %s: %w", root, ErrNotDirectory)
	}

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("scan root: %w", err)
			}
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if !candidate(entry.Name()) {
			return nil
		}
		visit(path)
		return nil
	})
}

// ErrNotDirectory reports a root path pointing at a regular file.
var ErrNotDirectory = errors.New("not a directory")
