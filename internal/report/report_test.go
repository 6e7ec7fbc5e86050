package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFlushWritesTimestampedPair(t *testing.T) {
	dir := t.TempDir()
	reporter := New(dir)
	reporter.RecordSuccess("/lib/a.mkv", "/lib/a.mkv.bak")
	reporter.RecordWarning("/lib/b.mp4", "Not MKV - cannot safely edit defaults")
	reporter.RecordWarning("/lib/c.mkv", "Failed to remux")

	successPath, warningsPath, err := reporter.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}

	stamp := reporter.StartedAt().Format("20060102-150405")
	if filepath.Base(successPath) != "success-"+stamp+".json" {
		t.Fatalf("success file = %s", successPath)
	}
	if filepath.Base(warningsPath) != "warnings-"+stamp+".json" {
		t.Fatalf("warnings file = %s", warningsPath)
	}

	var successes []Success
	blob, err := os.ReadFile(successPath)
	if err != nil {
		t.Fatalf("read successes: %v", err)
	}
	if err := json.Unmarshal(blob, &successes); err != nil {
		t.Fatalf("unmarshal successes: %v", err)
	}
	if len(successes) != 1 || successes[0].Path != "/lib/a.mkv" || successes[0].RenamedFrom != "/lib/a.mkv.bak" {
		t.Fatalf("successes = %+v", successes)
	}
	if successes[0].Timestamp == "" {
		t.Fatal("success entry missing timestamp")
	}

	var warnings []Warning
	blob, err = os.ReadFile(warningsPath)
	if err != nil {
		t.Fatalf("read warnings: %v", err)
	}
	if err := json.Unmarshal(blob, &warnings); err != nil {
		t.Fatalf("unmarshal warnings: %v", err)
	}
	if len(warnings) != 2 || warnings[1].Reason != "Failed to remux" {
		t.Fatalf("warnings = %+v", warnings)
	}
}

func TestFlushEmptyRunWritesEmptyArrays(t *testing.T) {
	reporter := New(t.TempDir())

	successPath, warningsPath, err := reporter.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	for _, path := range []string{successPath, warningsPath} {
		blob, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if strings.TrimSpace(string(blob)) != "[]" {
			t.Fatalf("%s = %q, want empty array", path, blob)
		}
	}
}

func TestWarningOrderPreserved(t *testing.T) {
	reporter := New(t.TempDir())
	for _, path := range []string{"/1.mkv", "/2.mkv", "/3.mkv"} {
		reporter.RecordWarning(path, "English track already default")
	}
	warnings := reporter.Warnings()
	for i, want := range []string{"/1.mkv", "/2.mkv", "/3.mkv"} {
		if warnings[i].Path != want {
			t.Fatalf("warnings[%d] = %+v", i, warnings[i])
		}
	}
	if s, w := reporter.Counts(); s != 0 || w != 3 {
		t.Fatalf("Counts = %d, %d", s, w)
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	dir := t.TempDir()
	if New(dir).RunID() == New(dir).RunID() {
		t.Fatal("run ids must differ")
	}
}
