package config

import (
	"errors"
	"fmt"
)

// Validate checks settings that normalization cannot repair.
func (c *Config) Validate() error {
	if c.Warmup.DelaySeconds < 0 {
		return fmt.Errorf("warmup.delay_seconds must not be negative, got %v", c.Warmup.DelaySeconds)
	}
	if c.Warmup.PacingMillis < 0 {
		return fmt.Errorf("warmup.pacing_millis must not be negative, got %d", c.Warmup.PacingMillis)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if c.Paths.LockFile == "" {
		return errors.New("paths.lock_file must not be empty")
	}
	return nil
}
