// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides the Device and Voice interfaces and the oto implementation
// Package output provides audio playback interfaces.
//
// A Device is opened once per process. Each Voice pulls signed 16-bit
// little-endian PCM from its reader until the reader returns io.EOF.
//
// Example:
//
//	dev, err := output.NewOto(44100, 2)
//	voice := dev.NewVoice(reader)
//	voice.Play()
package output
