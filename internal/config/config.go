package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Targets configures candidate matching and helper exclusion.
type Targets struct {
	DefaultFragments []string `toml:"default_fragments"`
	HelperMarkers    []string `toml:"helper_markers"`
}

// Warmup configures attempt pacing.
type Warmup struct {
	// DelaySeconds is the pre-attempt delay applied before each target's
	// bootstrap read, for freshly launched applications whose accessibility
	// subsystem has not attached yet.
	DelaySeconds float64 `toml:"delay_seconds"`
	// PacingMillis is the fixed delay between successive targets so
	// accessibility calls are not issued in a tight loop.
	PacingMillis int `toml:"pacing_millis"`
}

// Logging configures log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Paths contains filesystem locations.
type Paths struct {
	// LogDir receives axwarm.log in addition to console output. Empty
	// disables file logging.
	LogDir   string `toml:"log_dir"`
	LockFile string `toml:"lock_file"`
}

// Config is the root configuration document.
type Config struct {
	Targets Targets `toml:"targets"`
	Warmup  Warmup  `toml:"warmup"`
	Logging Logging `toml:"logging"`
	Paths   Paths   `toml:"paths"`
}

// Delay returns the configured pre-attempt delay.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Warmup.DelaySeconds * float64(time.Second))
}

// Pacing returns the configured inter-target delay.
func (c *Config) Pacing() time.Duration {
	return time.Duration(c.Warmup.PacingMillis) * time.Millisecond
}

// Load reads the configuration from path, or from the default locations
// when path is empty. A missing file is not an error: defaults apply.
// Returns the config, the resolved path, and whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("axwarm.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// DefaultConfigPath returns the primary config file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/axwarm/config.toml")
}

// WriteSample writes the annotated sample configuration to path.
func WriteSample(path string, overwrite bool) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(expanded); err == nil {
			return fmt.Errorf("config file already exists at %s", expanded)
		}
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
