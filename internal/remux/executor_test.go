package remux

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mkvswap/internal/backup"
	"mkvswap/internal/testsupport"
)

const identifyJSON = `{"tracks":[` +
	`{"id":0,"type":"video","properties":{}},` +
	`{"id":1,"type":"audio","properties":{"language":"jpn","default_track":true}},` +
	`{"id":2,"type":"audio","properties":{"language":"eng","default_track":false}}]}`

// stub handling both invocation modes: -J prints identification JSON,
// anything else behaves like a remux writing to the --output argument.
func remuxStub(t *testing.T, remuxBody string) string {
	t.Helper()
	script := `#!/bin/sh
if [ "$1" = "-J" ]; then
cat <<'EOF'
` + identifyJSON + `
EOF
exit 0
fi
out="$2"
` + remuxBody + `
`
	return testsupport.StubBinary(t, "mkvmerge", script)
}

func newExecutor(binary string) *Executor {
	return NewExecutor(binary, 10*time.Second, nil)
}

func TestRunCommitsOnSuccess(t *testing.T) {
	stub := remuxStub(t, "echo remuxed > \"$out\"\nexit 0")
	path := filepath.Join(t.TempDir(), "movie.mkv")
	testsupport.WriteFile(t, path, 64)

	if err := newExecutor(stub).Run(context.Background(), path, 1); err != nil {
		t.Fatalf("Run: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "remuxed\n" {
		t.Fatalf("output = %q", content)
	}
	if _, err := os.Stat(path + backup.Suffix); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("backup must be discarded after commit")
	}
}

func TestRunRollsBackOnRemuxFailure(t *testing.T) {
	stub := remuxStub(t, "echo partial > \"$out\"\nexit 2")
	path := filepath.Join(t.TempDir(), "movie.mkv")
	original := bytes.Repeat([]byte{0x42}, 64)
	testsupport.WriteFile(t, path, 64)

	err := newExecutor(stub).Run(context.Background(), path, 1)
	if err == nil {
		t.Fatal("expected remux failure")
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read restored original: %v", readErr)
	}
	if !bytes.Equal(content, original) {
		t.Fatal("original bytes not restored after rollback")
	}
	if _, statErr := os.Stat(path + backup.Suffix); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("no backup file may remain after rollback")
	}
}

func TestRunRollsBackOnEmptyOutput(t *testing.T) {
	stub := remuxStub(t, ": > \"$out\"\nexit 0")
	path := filepath.Join(t.TempDir(), "movie.mkv")
	testsupport.WriteFile(t, path, 64)

	err := newExecutor(stub).Run(context.Background(), path, 1)
	if err == nil {
		t.Fatal("empty output must count as failure")
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		t.Fatalf("stat restored original: %v", statErr)
	}
	if info.Size() != 64 {
		t.Fatalf("restored size = %d", info.Size())
	}
}

func TestRunFailsOnUnmappableTrack(t *testing.T) {
	stub := remuxStub(t, "exit 0")
	path := filepath.Join(t.TempDir(), "movie.mkv")
	testsupport.WriteFile(t, path, 64)

	err := newExecutor(stub).Run(context.Background(), path, 5)
	if !errors.Is(err, ErrNoTrackMapping) {
		t.Fatalf("err = %v, want ErrNoTrackMapping", err)
	}
	// Identification precedes the backup rename, so the original is untouched.
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("original missing: %v", statErr)
	}
}

func TestRunRefusesStaleBackup(t *testing.T) {
	stub := remuxStub(t, "exit 0")
	path := filepath.Join(t.TempDir(), "movie.mkv")
	testsupport.WriteFile(t, path, 64)
	testsupport.WriteFile(t, path+backup.Suffix, 8)

	err := newExecutor(stub).Run(context.Background(), path, 1)
	if !errors.Is(err, backup.ErrBackupExists) {
		t.Fatalf("err = %v, want ErrBackupExists", err)
	}
}

func TestRunFailsOnMissingFile(t *testing.T) {
	stub := remuxStub(t, "exit 0")
	err := newExecutor(stub).Run(context.Background(), filepath.Join(t.TempDir(), "gone.mkv"), 0)
	if err == nil {
		t.Fatal("expected stat error for missing file")
	}
}
