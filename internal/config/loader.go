package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/namelessrealms/launchcore/pkg/parameters"
	"github.com/namelessrealms/launchcore/pkg/paths"
	"github.com/spf13/pflag"
)

const (
	// FileName is the config file looked up when no explicit path is given.
	FileName = "launchcore.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LAUNCHCORE_"

	DefaultInstance = "main-server"
	DefaultLogLevel = "warn"
	DefaultMaxMB    = 4096
	DefaultMinMB    = 1024
	// DefaultPlayerUUID is the nil UUID used for offline launches.
	DefaultPlayerUUID = "00000000-0000-0000-0000-000000000000"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"root-dir":    "root_dir",
	"instance":    "instance",
	"log-level":   "log_level",
	"max-memory":  "memory.max_mb",
	"min-memory":  "memory.min_mb",
	"player-name": "player.name",
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFile forces loading from a specific file when set.
	ConfigFile string
	// Flags contributes explicitly set flags as the highest-precedence layer.
	Flags *pflag.FlagSet
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"root_dir":              paths.DefaultRoot(),
		"instance":              DefaultInstance,
		"log_level":             DefaultLogLevel,
		"launcher.brand":        parameters.DefaultLauncherBrand,
		"launcher.version":      parameters.DefaultLauncherVersion,
		"memory.max_mb":         DefaultMaxMB,
		"memory.min_mb":         DefaultMinMB,
		"memory.default_max_mb": parameters.DefaultMaxMemoryMB,
		"memory.default_min_mb": parameters.DefaultMinMemoryMB,
		"player.name":           "Player",
		"player.uuid":           DefaultPlayerUUID,
		"player.access_token":   "null_token",
		"player.user_type":      "mojang",
		"player.version_type":   "release",
	}
}

// Load reads the layered configuration and validates it.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path := findConfigFile(opts.ConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else if opts.ConfigFile != "" {
		return nil, fmt.Errorf("config file %s: %w", opts.ConfigFile, os.ErrNotExist)
	}

	// 3. Environment: LAUNCHCORE_MEMORY__MAX_MB -> memory.max_mb
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// findConfigFile returns the explicit path if it exists, otherwise the first
// launchcore.yaml found in the working directory or the default root.
func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{FileName, filepath.Join(paths.DefaultRoot(), FileName)}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
