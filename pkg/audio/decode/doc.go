// ABOUTME: Audio decoder package for local files
// ABOUTME: Provides the Source interface and MP3, FLAC, WAV and Ogg Vorbis implementations
// Package decode opens local audio files and decodes them to PCM.
//
// Supports: MP3 (go-mp3), FLAC (mewkiz/flac), WAV and Ogg Vorbis (beep).
//
// All sources output interleaved int32 samples in 24-bit range for
// consistent processing downstream.
//
// Example:
//
//	src, err := decode.Open("song.flac")
//	length, known := src.Duration()
//	n, err := src.Read(samples)
package decode
