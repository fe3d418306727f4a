// ABOUTME: Main player application orchestration
// ABOUTME: Coordinates library discovery, the playback engine and the UI
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harperreed/tuneloop/internal/library"
	"github.com/harperreed/tuneloop/internal/player"
	"github.com/harperreed/tuneloop/internal/ui"
	"github.com/harperreed/tuneloop/pkg/audio/output"
)

// Config holds player configuration
type Config struct {
	Dir        string
	Volume     float64
	Tick       time.Duration
	SampleRate int
	Logger     *slog.Logger

	// Device overrides the audio device, nil opens the default output
	Device output.Device
}

// engineStopTimeout bounds how long quitting waits for the engine goroutine
const engineStopTimeout = time.Second

// uiRunner owns the terminal until the user quits
type uiRunner func(ctx context.Context, controller *ui.Controller, tick time.Duration) error

// Player represents the main player application
type Player struct {
	config      Config
	logger      *slog.Logger
	runUI       uiRunner
	stopTimeout time.Duration
}

// New creates a new player
func New(config Config) *Player {
	if config.Tick <= 0 {
		config.Tick = player.DefaultTick
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Player{
		config:      config,
		logger:      config.Logger,
		runUI:       ui.Run,
		stopTimeout: engineStopTimeout,
	}
}

// Run scans the library, starts the engine and blocks in the UI until the
// user quits or ctx is cancelled. Startup failures are returned before the
// terminal is touched.
func (p *Player) Run(ctx context.Context) error {
	tracks, err := library.Scan(p.config.Dir, p.logger)
	if err != nil {
		return err
	}

	engine, err := p.openEngine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		engine.Run(ctx)
	}()

	controller := ui.NewController(tracks, engine.Commands(), engine.Events(), ui.Options{
		Volume: p.config.Volume,
		Logger: p.logger,
	})

	p.logger.Info("player started", "dir", p.config.Dir, "tracks", len(tracks), "volume", p.config.Volume)

	uiErr := p.runUI(ctx, controller, p.config.Tick)

	// Quitting does not drain the engine, and a stuck engine is left behind
	cancel()
	select {
	case <-engineDone:
	case <-time.After(p.stopTimeout):
		p.logger.Warn("engine did not stop, exiting without it", "timeout", p.stopTimeout)
	}

	p.logger.Info("player stopped")
	return uiErr
}

func (p *Player) openEngine() (*player.Engine, error) {
	cfg := player.Config{
		SampleRate: p.config.SampleRate,
		Tick:       p.config.Tick,
		Volume:     p.config.Volume,
		Logger:     p.logger,
	}

	if p.config.Device != nil {
		return player.New(p.config.Device, cfg), nil
	}

	engine, err := player.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot start playback: %w", err)
	}
	return engine, nil
}
