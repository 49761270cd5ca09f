package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/namelessrealms/launchcore/pkg/parameters"
	"github.com/namelessrealms/launchcore/pkg/paths"
)

// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
var ErrInvalidConfig = errors.New("❌ invalid config")

type (
	// Config holds the launcher configuration.
	Config struct {
		// RootDir is the launcher root; common/ and instances/ live beneath it.
		RootDir string `koanf:"root_dir" json:"root_dir"`
		// Instance names the game directory under instances/.
		Instance string         `koanf:"instance" json:"instance"`
		LogLevel string         `koanf:"log_level" json:"log_level"`
		Launcher LauncherConfig `koanf:"launcher" json:"launcher"`
		Memory   MemoryConfig   `koanf:"memory" json:"memory"`
		Player   PlayerConfig   `koanf:"player" json:"player"`
	}

	// LauncherConfig is the brand stamped into launch properties.
	LauncherConfig struct {
		Brand   string `koanf:"brand" json:"brand"`
		Version string `koanf:"version" json:"version"`
	}

	// MemoryConfig is the requested heap range and the fallbacks used when a
	// bound is zero, all in megabytes.
	MemoryConfig struct {
		MaxMB        int `koanf:"max_mb" json:"max_mb"`
		MinMB        int `koanf:"min_mb" json:"min_mb"`
		DefaultMaxMB int `koanf:"default_max_mb" json:"default_max_mb"`
		DefaultMinMB int `koanf:"default_min_mb" json:"default_min_mb"`
	}

	// PlayerConfig is the offline identity used when no session is supplied.
	PlayerConfig struct {
		Name        string `koanf:"name" json:"name"`
		UUID        string `koanf:"uuid" json:"uuid"`
		AccessToken string `koanf:"access_token" json:"access_token"`
		UserType    string `koanf:"user_type" json:"user_type"`
		VersionType string `koanf:"version_type" json:"version_type"`
	}

	// InvalidConfigError collects field-level validation failures.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate checks the configuration for values no launch could use.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.RootDir) == "" {
		errs = append(errs, errors.New("root_dir must not be empty"))
	}
	if strings.TrimSpace(c.Instance) == "" {
		errs = append(errs, errors.New("instance must not be empty"))
	}
	if strings.TrimSpace(c.Launcher.Brand) == "" {
		errs = append(errs, errors.New("launcher.brand must not be empty"))
	}
	if strings.TrimSpace(c.Launcher.Version) == "" {
		errs = append(errs, errors.New("launcher.version must not be empty"))
	}

	m := c.Memory
	for _, f := range []struct {
		key   string
		value int
	}{
		{"memory.max_mb", m.MaxMB},
		{"memory.min_mb", m.MinMB},
		{"memory.default_max_mb", m.DefaultMaxMB},
		{"memory.default_min_mb", m.DefaultMinMB},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", f.key, f.value))
		}
	}
	if m.MaxMB > 0 && m.MinMB > m.MaxMB {
		errs = append(errs, fmt.Errorf("memory.min_mb (%d) exceeds memory.max_mb (%d)", m.MinMB, m.MaxMB))
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Layout returns the path layout rooted at RootDir.
func (c *Config) Layout() *paths.Layout {
	return paths.NewLayout(c.RootDir)
}

// ParametersConfig projects the launcher settings onto the builder's config.
func (c *Config) ParametersConfig() parameters.Config {
	return parameters.Config{
		LauncherBrand:      c.Launcher.Brand,
		LauncherVersion:    c.Launcher.Version,
		DefaultMaxMemoryMB: c.Memory.DefaultMaxMB,
		DefaultMinMemoryMB: c.Memory.DefaultMinMB,
	}
}

// MemoryRange returns the requested heap range.
func (c *Config) MemoryRange() parameters.Memory {
	return parameters.Memory{MaxMB: c.Memory.MaxMB, MinMB: c.Memory.MinMB}
}

// PlayerIdentity returns the configured player for game-argument substitution.
func (c *Config) PlayerIdentity() parameters.Player {
	return parameters.Player{
		Name:        c.Player.Name,
		UUID:        c.Player.UUID,
		AccessToken: c.Player.AccessToken,
		UserType:    c.Player.UserType,
		VersionType: c.Player.VersionType,
	}
}
