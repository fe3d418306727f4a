// ABOUTME: Playback engine running on its own goroutine
// ABOUTME: Consumes Commands, drives the output device and emits Events
package player

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/tuneloop/internal/protocol"
	"github.com/harperreed/tuneloop/pkg/audio/decode"
	"github.com/harperreed/tuneloop/pkg/audio/output"
	"github.com/harperreed/tuneloop/pkg/audio/resample"
)

// ErrNoDevice is returned by Open when no audio output is available
var ErrNoDevice = output.ErrNoDevice

const (
	// DefaultTick is the interval between Progress reports
	DefaultTick = 200 * time.Millisecond

	// DefaultSampleRate is the device rate when none is configured
	DefaultSampleRate = 44100

	// DefaultChannels is the device channel count
	DefaultChannels = 2
)

// Config holds engine settings
type Config struct {
	SampleRate int
	Tick       time.Duration
	// Volume is the initial gain, 1.0 is unity
	Volume float64
	Logger *slog.Logger
	// Now is the clock used for elapsed time accounting
	Now func() time.Time
}

// Engine owns the output device and the currently loaded stream
type Engine struct {
	device   output.Device
	commands *protocol.CommandQueue
	events   *protocol.EventQueue
	tick     time.Duration
	volume   float64
	logger   *slog.Logger
	now      func() time.Time

	current *stream
}

// stream is the active track; nil means the engine is idle
type stream struct {
	loadID      string
	index       int
	reader      *pcmReader
	voice       output.Voice
	startedAt   time.Time
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
}

// Open opens the default audio device and creates an engine on it.
// Failure to open the device is fatal for the caller.
func Open(config Config) (*Engine, error) {
	rate := config.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}

	dev, err := output.NewOto(rate, DefaultChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	return New(dev, config), nil
}

// New creates an engine playing on device
func New(device output.Device, config Config) *Engine {
	if config.Tick <= 0 {
		config.Tick = DefaultTick
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &Engine{
		device:   device,
		commands: protocol.NewQueue[protocol.Command](),
		events:   protocol.NewQueue[protocol.Event](),
		tick:     config.Tick,
		volume:   config.Volume,
		logger:   config.Logger.With("component", "engine"),
		now:      config.Now,
	}
}

// Commands is the queue the controller pushes to
func (e *Engine) Commands() *protocol.CommandQueue {
	return e.commands
}

// Events is the queue the controller drains
func (e *Engine) Events() *protocol.EventQueue {
	return e.events
}

// Run processes commands and reports progress until ctx is cancelled.
// The loaded stream is stopped on return without draining.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()
	defer e.suspend()
	defer e.stop()

	e.logger.Info("engine started", "tick", e.tick,
		"sample_rate", e.device.SampleRate(), "channels", e.device.Channels())

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped")
			return
		case <-e.commands.Ready():
			e.processCommands()
		case <-ticker.C:
			e.step()
		}
	}
}

// step is one tick: apply pending commands then report on the stream
func (e *Engine) step() {
	e.processCommands()
	e.report()
}

func (e *Engine) processCommands() {
	for _, cmd := range e.commands.Drain() {
		switch c := cmd.(type) {
		case protocol.Play:
			e.play(c)
		case protocol.TogglePlayPause:
			e.togglePause()
		case protocol.SetVolume:
			e.setVolume(c.Level)
		default:
			e.logger.Warn("unknown command", "command", fmt.Sprintf("%T", cmd))
		}
	}
}

func (e *Engine) play(cmd protocol.Play) {
	e.stop()

	loadID := uuid.NewString()
	log := e.logger.With("load_id", loadID, "index", cmd.Index, "path", cmd.Path)

	src, err := decode.Open(cmd.Path)
	if err != nil {
		log.Error("failed to load track", "error", err)
		e.events.Push(protocol.Error{
			Message: fmt.Sprintf("cannot play %s: %v", filepath.Base(cmd.Path), err),
		})
		return
	}

	duration, hasDuration := src.Duration()
	converted := resample.NewSource(src, e.device.SampleRate(), e.device.Channels())

	reader := newPCMReader(converted, e.volume)
	voice := e.device.NewVoice(reader)
	voice.Play()

	e.current = &stream{
		loadID:    loadID,
		index:     cmd.Index,
		reader:    reader,
		voice:     voice,
		startedAt: e.now(),
	}

	log.Info("track started", "format", src.Format().Codec,
		"duration", duration, "has_duration", hasDuration)

	e.events.Push(protocol.TrackStarted{
		Index:       cmd.Index,
		Duration:    duration,
		HasDuration: hasDuration,
	})
}

func (e *Engine) togglePause() {
	s := e.current
	if s == nil {
		return
	}

	now := e.now()
	if s.paused {
		s.pausedTotal += now.Sub(s.pausedAt)
		s.paused = false
		s.voice.Play()
		e.logger.Debug("resumed", "load_id", s.loadID)
		e.events.Push(protocol.PauseChanged{Paused: false})
		return
	}

	s.paused = true
	s.pausedAt = now
	s.voice.Pause()
	e.logger.Debug("paused", "load_id", s.loadID)
	e.events.Push(protocol.PauseChanged{Paused: true})
}

func (e *Engine) setVolume(level float64) {
	e.volume = level
	if e.current != nil {
		e.current.reader.SetGain(level)
	}
	e.logger.Debug("volume set", "level", level)
}

// report emits Progress for a playing stream or TrackEnded once it has drained
func (e *Engine) report() {
	s := e.current
	if s == nil {
		return
	}

	if err := s.reader.Err(); err != nil {
		e.logger.Error("decode failed", "load_id", s.loadID, "index", s.index, "error", err)
		e.events.Push(protocol.Error{Message: fmt.Sprintf("playback failed: %v", err)})
		e.stop()
		return
	}

	if !s.paused && s.reader.Done() && !s.voice.IsPlaying() {
		e.logger.Info("track ended", "load_id", s.loadID, "index", s.index)
		e.events.Push(protocol.TrackEnded{})
		e.stop()
		return
	}

	e.events.Push(protocol.Progress{Position: s.elapsed(e.now())})
}

// stop silences and releases the current stream immediately
func (e *Engine) stop() {
	s := e.current
	if s == nil {
		return
	}
	e.current = nil

	// oto players keep mixing their buffer until paused; Close alone does not stop them
	s.voice.Pause()
	if err := s.voice.Close(); err != nil {
		e.logger.Warn("failed to close voice", "load_id", s.loadID, "error", err)
	}
	if err := s.reader.Close(); err != nil {
		e.logger.Warn("failed to close source", "load_id", s.loadID, "error", err)
	}
}

// suspend quiets devices that can be suspended once the engine exits
func (e *Engine) suspend() {
	d, ok := e.device.(interface{ Suspend() error })
	if !ok {
		return
	}
	if err := d.Suspend(); err != nil {
		e.logger.Warn("failed to suspend audio device", "error", err)
	}
}

// elapsed is wall time since start minus time spent paused
func (s *stream) elapsed(now time.Time) time.Duration {
	d := now.Sub(s.startedAt) - s.pausedTotal
	if s.paused {
		d -= now.Sub(s.pausedAt)
	}
	if d < 0 {
		return 0
	}
	return d
}
