package testsupport

import (
	"path/filepath"
	"testing"

	"mkvswap/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per
// test. History is pointed at a temp database and enabled.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ReportDir = filepath.Join(base, "reports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "history.db")
	cfg.Tools.TimeoutSeconds = 10

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithTargetLanguage overrides the scan target language.
func WithTargetLanguage(tag string) ConfigOption {
	return func(c *config.Config) {
		c.Scan.TargetLanguage = tag
	}
}

// WithDryRun enables dry-run mode on the test config.
func WithDryRun() ConfigOption {
	return func(c *config.Config) {
		c.Scan.DryRun = true
	}
}

// WithHistoryDisabled turns the run history store off.
func WithHistoryDisabled() ConfigOption {
	return func(c *config.Config) {
		c.History.Enabled = false
	}
}
