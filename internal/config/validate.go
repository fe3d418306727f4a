// ABOUTME: Configuration validation
// ABOUTME: Rejects volumes, tick intervals, rates and levels the player cannot use
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// SupportedSampleRates are the device rates the output can be opened at
var SupportedSampleRates = []int{22050, 32000, 44100, 48000, 88200, 96000}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	var errs []error

	if err := c.Library.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("library: %w", err))
	}
	if err := c.Playback.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("playback: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Validate checks library settings
func (l LibraryConfig) Validate() error {
	if strings.TrimSpace(l.Dir) == "" {
		return errors.New("dir must not be empty")
	}
	return nil
}

// Validate checks playback settings
func (p PlaybackConfig) Validate() error {
	var errs []error

	if p.Volume < 0 || p.Volume > 2 {
		errs = append(errs, fmt.Errorf("volume must be between 0 and 2, got %g", p.Volume))
	}
	if p.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", p.TickMS))
	}
	if !slices.Contains(SupportedSampleRates, p.SampleRate) {
		errs = append(errs, fmt.Errorf("sample_rate %d not supported (supported: %v)", p.SampleRate, SupportedSampleRates))
	}

	return errors.Join(errs...)
}

// Validate checks logging settings
func (l LogConfig) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level %q must be one of debug, info, warn, error", l.Level)
	}
	return nil
}
