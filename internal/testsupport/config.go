// Package testsupport provides shared fixtures for axwarm tests: a scripted
// accessibility binding and a config builder seeded with per-test temp paths.
package testsupport

import (
	"path/filepath"
	"testing"

	"axwarm/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose lock file and log directory live under a
// unique temp directory, with pacing tightened so batch tests stay fast. Any
// provided options are applied on top.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Warmup.PacingMillis = 1
	cfg.Paths.LockFile = filepath.Join(base, "axwarm.lock")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithHelperMarkers replaces the helper exclusion markers on the test config.
func WithHelperMarkers(markers ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Targets.HelperMarkers = markers
	}
}

// WithFragments replaces the default target fragments on the test config.
func WithFragments(fragments ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Targets.DefaultFragments = fragments
	}
}
