// ABOUTME: Configuration file schema
// ABOUTME: TOML sections for the library, playback and logging
package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config is the root configuration structure
type Config struct {
	Library  LibraryConfig  `toml:"library"`
	Playback PlaybackConfig `toml:"playback"`
	Log      LogConfig      `toml:"log"`

	// volumeSet records an explicit volume, since 0 is a valid setting
	volumeSet bool
}

// LibraryConfig holds music discovery settings
type LibraryConfig struct {
	Dir string `toml:"dir"`
}

// PlaybackConfig holds engine settings
type PlaybackConfig struct {
	Volume     float64 `toml:"volume"`
	TickMS     int     `toml:"tick_ms"`
	SampleRate int     `toml:"sample_rate"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Tick is the engine and UI tick interval
func (p PlaybackConfig) Tick() time.Duration {
	return time.Duration(p.TickMS) * time.Millisecond
}

// SetVolume sets the starting volume, including zero
func (c *Config) SetVolume(v float64) {
	c.Playback.Volume = v
	c.volumeSet = true
}

// SlogLevel maps the configured level name to a slog level
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
