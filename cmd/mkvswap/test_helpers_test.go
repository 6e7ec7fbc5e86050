package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mkvswap/internal/testsupport"
)

const testFFprobeScript = `#!/bin/sh
for a in "$@"; do p="$a"; done
case "$p" in
*eligible.mkv)
cat <<'EOF'
{"streams":[{"index":1,"codec_name":"ac3","channels":6,"disposition":{"default":0},"tags":{"language":"eng"}},{"index":2,"codec_name":"dts","channels":6,"disposition":{"default":1},"tags":{"language":"jpn"}}]}
EOF
;;
*already.mkv)
echo '{"streams":[{"index":1,"codec_name":"aac","channels":2,"disposition":{"default":1},"tags":{"language":"eng"}}]}'
;;
*)
echo '{"streams":[{"index":1,"codec_name":"aac","channels":2,"disposition":{"default":1},"tags":{"language":"jpn"}}]}'
;;
esac
`

const testMkvmergeScript = `#!/bin/sh
if [ "$1" = "-J" ]; then
echo '{"tracks":[{"id":0,"type":"video","properties":{}},{"id":1,"type":"audio","properties":{"language":"eng"}},{"id":2,"type":"audio","properties":{"language":"jpn","default_track":true}}]}'
exit 0
fi
echo remuxed > "$2"
exit 0
`

type cliTestEnv struct {
	baseDir    string
	configPath string
	historyDB  string
	reportDir  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	ffprobe := testsupport.StubBinary(t, "ffprobe", testFFprobeScript)
	mkvmerge := testsupport.StubBinary(t, "mkvmerge", testMkvmergeScript)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(homeDir, ".config", "mkvswap", "config.toml"),
		historyDB:  filepath.Join(base, "history.db"),
		reportDir:  filepath.Join(base, "reports"),
	}
	if err := os.MkdirAll(filepath.Dir(env.configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}

	content := fmt.Sprintf(`[paths]
report_dir = %q
log_dir = %q

[scan]
target_language = "eng"

[tools]
ffprobe = %q
mkvmerge = %q
timeout_seconds = 10

[history]
enabled = true
path = %q

[logging]
format = "console"
level = "error"
`, env.reportDir, filepath.Join(base, "logs"), ffprobe, mkvmerge, env.historyDB)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
