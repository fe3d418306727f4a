// ABOUTME: Default configuration values
// ABOUTME: Fills unset fields after the file has been decoded
package config

// Default returns a Config populated with defaults
func Default() *Config {
	return &Config{
		Library: LibraryConfig{
			Dir: ".",
		},
		Playback: PlaybackConfig{
			Volume:     1.0,
			TickMS:     200,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Level: "info",
			File:  "tuneloop.log",
		},
		volumeSet: true,
	}
}

// ApplyDefaults fills in zero values with defaults
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.Library.Dir == "" {
		c.Library.Dir = d.Library.Dir
	}

	if !c.volumeSet {
		c.Playback.Volume = d.Playback.Volume
		c.volumeSet = true
	}
	if c.Playback.TickMS == 0 {
		c.Playback.TickMS = d.Playback.TickMS
	}
	if c.Playback.SampleRate == 0 {
		c.Playback.SampleRate = d.Playback.SampleRate
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}
}
