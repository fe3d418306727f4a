// ABOUTME: Audio output interface definition
// ABOUTME: Device hands out voices that pull PCM bytes from a reader
package output

import (
	"errors"
	"io"
)

var (
	// ErrNoDevice is returned when the audio backend cannot be opened
	ErrNoDevice = errors.New("no audio output device")

	// ErrInvalidFormat is returned for sample rates or channel counts the device cannot play
	ErrInvalidFormat = errors.New("invalid output format")
)

// Device represents an opened audio output
type Device interface {
	// SampleRate is the rate every voice is played at
	SampleRate() int

	// Channels is the interleaved channel count every voice must provide
	Channels() int

	// NewVoice creates a paused voice reading signed 16-bit little-endian PCM from r
	NewVoice(r io.Reader) Voice
}

// Voice is one stream being played on a device
type Voice interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}
