package walker

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"mkvswap/internal/testsupport"
)

func isVideo(name string) bool {
	switch filepath.Ext(name) {
	case ".mkv", ".mp4":
		return true
	}
	return false
}

func TestWalkFindsCandidatesRecursively(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.mkv"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "notes.txt"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "season1", "e01.mkv"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "season1", "extras", "clip.mp4"), 1)

	var found []string
	err := Walk(root, isVideo, func(path string) {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			t.Fatalf("rel: %v", relErr)
		}
		found = append(found, rel)
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	sort.Strings(found)
	want := []string{"a.mkv", filepath.Join("season1", "e01.mkv"), filepath.Join("season1", "extras", "clip.mp4")}
	if len(found) != len(want) {
		t.Fatalf("found %v, want %v", found, want)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Fatalf("found %v, want %v", found, want)
		}
	}
}

func TestWalkFailsOnMissingRoot(t *testing.T) {
	err := Walk(filepath.Join(t.TempDir(), "missing"), isVideo, func(string) {
		t.Fatal("visit must not run")
	})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestWalkRejectsFileRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file.mkv")
	testsupport.WriteFile(t, root, 1)

	err := Walk(root, isVideo, func(string) {})
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("err = %v, want ErrNotDirectory", err)
	}
}

func TestWalkEmptyTree(t *testing.T) {
	visited := 0
	if err := Walk(t.TempDir(), isVideo, func(string) { visited++ }); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if visited != 0 {
		t.Fatalf("visited = %d", visited)
	}
}
