// ABOUTME: Configuration loading
// ABOUTME: Reads the TOML config file and applies defaults and environment overrides
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix starts every environment override
const EnvPrefix = "TUNELOOP_"

// Load reads configuration from the standard location with environment overrides.
// Search order: $XDG_CONFIG_HOME/tuneloop/config.toml, ~/.config/tuneloop/config.toml
func Load() (*Config, error) {
	path := findConfigFile()
	if path == "" {
		cfg := &Config{}
		cfg.ApplyDefaults()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from a specific file path
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	cfg.volumeSet = md.IsDefined("playback", "volume")

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Path returns the config file Load would read, or "" when none exists
func Path() string {
	return findConfigFile()
}

// findConfigFile returns the first existing config file path
func findConfigFile() string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "tuneloop", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tuneloop", "config.toml"))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
// Values that fail to parse are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "LIBRARY_DIR"); v != "" {
		cfg.Library.Dir = v
	}

	if v := os.Getenv(EnvPrefix + "VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SetVolume(f)
		}
	}
	if v := os.Getenv(EnvPrefix + "TICK_MS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Playback.TickMS = i
		}
	}
	if v := os.Getenv(EnvPrefix + "SAMPLE_RATE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Playback.SampleRate = i
		}
	}

	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
