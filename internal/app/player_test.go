// ABOUTME: Tests for player application orchestration
// ABOUTME: Runs the full engine and controller with a scripted UI and a fake device
package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/tuneloop/internal/protocol"
	"github.com/harperreed/tuneloop/internal/testtone"
	"github.com/harperreed/tuneloop/internal/ui"
	"github.com/harperreed/tuneloop/pkg/audio/output"
)

type fakeVoice struct {
	mu      sync.Mutex
	playing bool
	closed  bool
}

func (v *fakeVoice) Play() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.playing = true
}

func (v *fakeVoice) Pause() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.playing = false
}

func (v *fakeVoice) IsPlaying() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

func (v *fakeVoice) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return nil
}

type fakeDevice struct {
	mu     sync.Mutex
	voices []*fakeVoice
}

func (d *fakeDevice) SampleRate() int {
	return 8000
}

func (d *fakeDevice) Channels() int {
	return 2
}

func (d *fakeDevice) NewVoice(r io.Reader) output.Voice {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := &fakeVoice{}
	d.voices = append(d.voices, v)
	return v
}

// hungDevice never returns a voice, like a backend stuck in the driver
type hungDevice struct {
	fakeDevice
	entered chan struct{}
}

func (d *hungDevice) NewVoice(r io.Reader) output.Voice {
	close(d.entered)
	select {}
}

func writeTone(t *testing.T, path string) {
	t.Helper()
	err := testtone.WriteWAV(path, testtone.Options{SampleRate: 8000, Channels: 2, Length: 2 * time.Second})
	if err != nil {
		t.Fatalf("failed to write tone: %v", err)
	}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := New(Config{Dir: "."})

	if p.config.Tick != 200*time.Millisecond {
		t.Errorf("expected default tick, got %v", p.config.Tick)
	}
	if p.logger == nil {
		t.Error("expected a logger")
	}
	if p.runUI == nil {
		t.Error("expected a UI runner")
	}
}

func TestRunFailsOnMissingDirectory(t *testing.T) {
	p := New(Config{Dir: filepath.Join(t.TempDir(), "missing"), Device: &fakeDevice{}})

	called := false
	p.runUI = func(ctx context.Context, c *ui.Controller, tick time.Duration) error {
		called = true
		return nil
	}

	if err := p.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing music directory")
	}
	if called {
		t.Error("expected UI not to start")
	}
}

func TestRunPlaysSelectedTrack(t *testing.T) {
	dir := t.TempDir()
	writeTone(t, filepath.Join(dir, "a.wav"))
	writeTone(t, filepath.Join(dir, "b.wav"))

	dev := &fakeDevice{}
	p := New(Config{Dir: dir, Volume: 1.0, Tick: 10 * time.Millisecond, Device: dev})

	p.runUI = func(ctx context.Context, c *ui.Controller, tick time.Duration) error {
		c.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
		c.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			c.DrainEvents()
			if idx, ok := c.Playing(); ok {
				if idx != 1 {
					return errors.New("wrong track started")
				}
				if c.Status() != protocol.StatusPlaying {
					return errors.New("expected playing status")
				}
				return nil
			}
			time.Sleep(tick)
		}
		return errors.New("track never started")
	}

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(dev.voices) != 1 {
		t.Fatalf("expected 1 voice, got %d", len(dev.voices))
	}
	if !dev.voices[0].closed {
		t.Error("expected the engine to stop the stream on quit")
	}
}

func TestRunReturnsUIError(t *testing.T) {
	p := New(Config{Dir: t.TempDir(), Device: &fakeDevice{}})
	uiErr := errors.New("no terminal")
	p.runUI = func(ctx context.Context, c *ui.Controller, tick time.Duration) error {
		return uiErr
	}

	if err := p.Run(context.Background()); !errors.Is(err, uiErr) {
		t.Errorf("expected UI error, got %v", err)
	}
}

func TestRunReturnsWhenEngineIsStuck(t *testing.T) {
	dir := t.TempDir()
	writeTone(t, filepath.Join(dir, "a.wav"))

	dev := &hungDevice{entered: make(chan struct{})}
	p := New(Config{Dir: dir, Tick: 10 * time.Millisecond, Device: dev})
	p.stopTimeout = 50 * time.Millisecond

	p.runUI = func(ctx context.Context, c *ui.Controller, tick time.Duration) error {
		c.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
		select {
		case <-dev.entered:
			return nil
		case <-time.After(5 * time.Second):
			return errors.New("engine never reached the device")
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- p.Run(context.Background())
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run blocked on a stuck engine after the UI quit")
	}
}
