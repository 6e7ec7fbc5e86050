package config

import (
	"errors"
	"fmt"
	"strings"

	"mkvswap/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one extension")
	}
	if c.Scan.TargetLanguage == "" {
		return errors.New("scan.target_language must be set")
	}
	if language.Normalize(c.Scan.TargetLanguage) == language.Undetermined {
		return fmt.Errorf("scan.target_language %q is not a recognized language tag", c.Scan.TargetLanguage)
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.FFprobe == "" {
		return errors.New("tools.ffprobe must be set")
	}
	if c.Tools.Mkvmerge == "" {
		return errors.New("tools.mkvmerge must be set")
	}
	if c.Tools.TimeoutSeconds <= 0 {
		return errors.New("tools.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported", c.Logging.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	return nil
}
