// ABOUTME: Application controller owning the player UI state
// ABOUTME: Folds engine events into state, turns keys into commands and renders frames
package ui

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/tuneloop/internal/layout"
	"github.com/harperreed/tuneloop/internal/library"
	"github.com/harperreed/tuneloop/internal/protocol"
	"github.com/samber/lo"
)

const (
	// WaveLength is the number of samples kept for the visualization
	WaveLength = 80

	// MaxVolume is the highest gain the volume keys reach
	MaxVolume = 2.0

	// VolumeStep is the change per volume key press
	VolumeStep = 0.05

	// noTrack marks the absence of a playing index
	noTrack = -1
)

// Options configure a Controller
type Options struct {
	// Volume is the starting gain, it should match the engine's
	Volume float64
	Logger *slog.Logger
	Theme  *Theme
}

// Controller owns UI state. It is not safe for concurrent use; the
// bubbletea goroutine is its only caller.
type Controller struct {
	tracks   []library.Track
	selected int
	playing  int
	status   protocol.PlaybackStatus
	position time.Duration
	total    time.Duration
	hasTotal bool
	volume   float64
	wave     []uint64
	lastErr  string

	commands *protocol.CommandQueue
	events   *protocol.EventQueue

	layout layout.Cache
	keys   keyMap
	theme  Theme
	bar    progress.Model
	logger *slog.Logger
}

// NewController creates a controller over tracks talking to the engine
// through commands and events
func NewController(tracks []library.Track, commands *protocol.CommandQueue, events *protocol.EventQueue, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	return &Controller{
		tracks:   tracks,
		playing:  noTrack,
		status:   protocol.StatusStopped,
		volume:   opts.Volume,
		wave:     make([]uint64, WaveLength),
		commands: commands,
		events:   events,
		keys:     defaultKeyMap(),
		theme:    theme,
		bar: progress.New(
			progress.WithSolidFill(string(theme.Progress)),
			progress.WithoutPercentage(),
		),
		logger: opts.Logger.With("component", "controller"),
	}
}

// DrainEvents folds every pending engine event into the UI state
func (c *Controller) DrainEvents() {
	for _, ev := range c.events.Drain() {
		c.applyEvent(ev)
	}
}

func (c *Controller) applyEvent(ev protocol.Event) {
	switch e := ev.(type) {
	case protocol.TrackStarted:
		if e.Index < 0 || e.Index >= len(c.tracks) {
			c.logger.Warn("ignoring event for unknown track", "index", e.Index)
			return
		}
		c.playing = e.Index
		c.status = protocol.StatusPlaying
		c.position = 0
		c.total = e.Duration
		c.hasTotal = e.HasDuration
		c.lastErr = ""
		c.logger.Info("track started", "index", e.Index, "title", c.tracks[e.Index].DisplayTitle())

	case protocol.Progress:
		if c.playing != noTrack {
			c.position = e.Position
		}

	case protocol.PauseChanged:
		if c.playing == noTrack {
			return
		}
		c.status = protocol.StatusPlaying
		if e.Paused {
			c.status = protocol.StatusPaused
		}

	case protocol.TrackEnded:
		c.advance()

	case protocol.Error:
		c.logger.Error("playback error", "message", e.Message)
		c.lastErr = e.Message
		c.stopMirror()
	}
}

// advance plays the track after the one that ended, or stops at the end of
// the list
func (c *Controller) advance() {
	if c.playing == noTrack {
		return
	}

	next := c.playing + 1
	if next >= len(c.tracks) {
		c.logger.Info("end of track list")
		c.stopMirror()
		return
	}

	c.selected = next
	c.play(next)
}

func (c *Controller) stopMirror() {
	c.playing = noTrack
	c.status = protocol.StatusStopped
	c.position = 0
	c.total = 0
	c.hasTotal = false
}

func (c *Controller) play(index int) {
	c.commands.Push(protocol.Play{Index: index, Path: c.tracks[index].Path})
}

// HandleKey applies one key press and reports whether the program should quit
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, c.keys.Quit):
		return true

	case key.Matches(msg, c.keys.Down):
		if c.selected+1 < len(c.tracks) {
			c.selected++
		}

	case key.Matches(msg, c.keys.Up):
		if c.selected > 0 {
			c.selected--
		}

	case key.Matches(msg, c.keys.Play):
		if len(c.tracks) > 0 {
			c.play(c.selected)
		}

	case key.Matches(msg, c.keys.Toggle):
		c.commands.Push(protocol.TogglePlayPause{})

	case key.Matches(msg, c.keys.Next):
		if len(c.tracks) > 0 {
			c.selected = min(c.selected+1, len(c.tracks)-1)
			c.play(c.selected)
		}

	case key.Matches(msg, c.keys.Previous):
		if len(c.tracks) > 0 {
			c.selected = max(c.selected-1, 0)
			c.play(c.selected)
		}

	case key.Matches(msg, c.keys.VolumeUp):
		c.setVolume(c.volume + VolumeStep)

	case key.Matches(msg, c.keys.VolumeDown):
		c.setVolume(c.volume - VolumeStep)
	}
	return false
}

// setVolume clamps to [0, MaxVolume] on hundredths and tells the engine
func (c *Controller) setVolume(v float64) {
	c.volume = lo.Clamp(math.Round(v*100)/100, 0, MaxVolume)
	c.commands.Push(protocol.SetVolume{Level: c.volume})
}

// SampleWave appends one visualization sample derived from the position
// and volume, zero unless playing
func (c *Controller) SampleWave() {
	var sample uint64
	if c.status == protocol.StatusPlaying {
		t := c.position.Seconds()
		v := (math.Sin(t*6)*0.5 + 0.5) * 100 * math.Min(c.volume, 1)
		sample = uint64(lo.Clamp(v, 0, 100))
	}

	copy(c.wave, c.wave[1:])
	c.wave[len(c.wave)-1] = sample
}

// Render draws a full frame for a terminal of width by height cells
func (c *Controller) Render(width, height int) string {
	l := c.layout.Get(width, height)

	var track *library.Track
	if c.playing != noTrack {
		track = &c.tracks[c.playing]
	}

	lines := make([]string, 0, height)
	lines = append(lines, renderNowPlaying(c.theme, track, c.status, c.lastErr, l.NowPlaying)...)

	list := renderTrackList(c.theme, c.tracks, c.selected, c.playing, l.TrackList)
	if l.Visualization != nil {
		viz := renderVisualization(c.theme, c.wave, c.status == protocol.StatusPlaying, *l.Visualization)
		for i := range list {
			if i < len(viz) {
				list[i] += viz[i]
			}
		}
	}
	lines = append(lines, list...)

	lines = append(lines, renderPlaybackControl(c.theme, &c.bar, controlState{
		position: c.position,
		total:    c.total,
		hasTotal: c.hasTotal,
		volume:   c.volume,
		status:   c.status,
	}, l.PlaybackControl)...)

	lines = append(lines, renderStatusBar(c.theme, c.keys.statusHints(), l.StatusBar)...)

	return strings.Join(lines, "\n")
}

// Status is the mirrored playback status
func (c *Controller) Status() protocol.PlaybackStatus {
	return c.status
}

// Selected is the highlighted track index
func (c *Controller) Selected() int {
	return c.selected
}

// Playing is the index of the loaded track, ok is false when stopped
func (c *Controller) Playing() (index int, ok bool) {
	return c.playing, c.playing != noTrack
}

// Volume is the gain last sent to the engine
func (c *Controller) Volume() float64 {
	return c.volume
}
