package ffprobe

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffprobe")
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return stub
}

func TestInspectParsesAudioStreams(t *testing.T) {
	payload := Result{Streams: []Stream{
		{Index: 1, CodecName: "dts", Channels: 6, Tags: map[string]string{"language": "jpn"}, Disposition: Disposition{Default: 1}},
		{Index: 2, CodecName: "ac3", Channels: 2, Tags: map[string]string{"language": "eng"}},
	}}
	blob, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	stub := writeStub(t, "#!/bin/sh\ncat <<'EOF'\n"+string(blob)+"\nEOF\n")

	result, err := Inspect(context.Background(), stub, "/lib/movie.mkv")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(result.Streams) != 2 {
		t.Fatalf("got %d streams", len(result.Streams))
	}
	first := result.Streams[0]
	if first.Language() != "jpn" || !first.IsDefault() {
		t.Fatalf("unexpected first stream: %+v", first)
	}
	second := result.Streams[1]
	if second.Language() != "eng" || second.IsDefault() {
		t.Fatalf("unexpected second stream: %+v", second)
	}
}

func TestInspectNormalizesMissingLanguage(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho '{\"streams\":[{\"index\":1}]}'\n")

	result, err := Inspect(context.Background(), stub, "/lib/movie.mkv")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if got := result.Streams[0].Language(); got != "und" {
		t.Fatalf("Language() = %q, want und", got)
	}
}

func TestInspectFailsOnNonZeroExit(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho 'no such file' >&2\nexit 1\n")

	if _, err := Inspect(context.Background(), stub, "/lib/missing.mkv"); err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestInspectFailsOnGarbageOutput(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho 'not json'\n")

	if _, err := Inspect(context.Background(), stub, "/lib/movie.mkv"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
