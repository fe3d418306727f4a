// ABOUTME: Playback message type definitions
// ABOUTME: Defines the Commands sent to the engine and the Events it emits back
package protocol

import (
	"fmt"
	"time"
)

// Command is a request from the controller to the playback engine
type Command interface {
	command()
}

// Play stops whatever is playing and starts the track at Path
type Play struct {
	Index int
	Path  string
}

// TogglePlayPause flips between playing and paused; ignored when idle
type TogglePlayPause struct{}

// SetVolume sets the gain for the current and all future streams
type SetVolume struct {
	Level float64
}

func (Play) command()            {}
func (TogglePlayPause) command() {}
func (SetVolume) command()       {}

// Event is a notification from the playback engine to the controller
type Event interface {
	event()
}

// TrackStarted reports that the track at Index began playing
type TrackStarted struct {
	Index       int
	Duration    time.Duration
	HasDuration bool
}

// Progress carries the elapsed playing time of the current track
type Progress struct {
	Position time.Duration
}

// PauseChanged reports that TogglePlayPause took effect on the loaded stream
type PauseChanged struct {
	Paused bool
}

// TrackEnded reports that the current stream played to its end
type TrackEnded struct{}

// Error reports a track that could not be opened or decoded
type Error struct {
	Message string
}

func (TrackStarted) event() {}
func (Progress) event()     {}
func (PauseChanged) event() {}
func (TrackEnded) event()   {}
func (Error) event()        {}

// PlaybackStatus is the controller's belief about the engine state
type PlaybackStatus int

const (
	StatusStopped PlaybackStatus = iota
	StatusPaused
	StatusPlaying
)

func (s PlaybackStatus) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusPaused:
		return "paused"
	case StatusPlaying:
		return "playing"
	default:
		return fmt.Sprintf("PlaybackStatus(%d)", int(s))
	}
}
