package testsupport

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// StubBinary writes an executable shell script with the given name into a
// fresh directory and prepends that directory to PATH for the remainder
// of the test. It returns the absolute path of the stub.
func StubBinary(t testing.TB, name, script string) string {
	t.Helper()

	binDir := t.TempDir()
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return target
}

// ExitStub returns a script that ignores its arguments and exits with code.
func ExitStub(code int) string {
	return "#!/bin/sh\nexit " + strconv.Itoa(code) + "\n"
}

// EchoJSONStub returns a script that prints the given JSON document on
// stdout and exits 0, regardless of arguments.
func EchoJSONStub(payload string) string {
	return "#!/bin/sh\ncat <<'EOF'\n" + payload + "\nEOF\n"
}
