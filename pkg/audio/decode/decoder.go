// ABOUTME: Decoded audio source interface and file opener
// ABOUTME: Chooses a codec implementation from the file extension
package decode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/tuneloop/pkg/audio"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Source is a decoded audio stream producing interleaved PCM int32 samples
// in the 24-bit range
type Source interface {
	// Read fills samples and returns how many were written. It returns
	// io.EOF once the stream is exhausted.
	Read(samples []int32) (int, error)

	// Format describes the decoded output of Read
	Format() audio.Format

	// Duration returns the total length when the container exposes it
	Duration() (time.Duration, bool)

	// Close releases the decoder and the underlying file
	Close() error
}

// Extensions lists the file extensions Open can decode
var Extensions = []string{".mp3", ".flac", ".ogg", ".wav"}

// Supported reports whether path has a decodable extension
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Open opens and decodes the file at path
func Open(path string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		src Source
		err error
	)
	switch ext {
	case ".mp3":
		src, err = NewMP3(path)
	case ".flac":
		src, err = NewFLAC(path)
	case ".wav":
		src, err = NewWAV(path)
	case ".ogg":
		src, err = NewVorbis(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		// a typed nil pointer must not escape as a non-nil Source
		return nil, err
	}
	return src, nil
}

// Probe opens path only long enough to read its duration
func Probe(path string) (time.Duration, bool, error) {
	src, err := Open(path)
	if err != nil {
		return 0, false, err
	}
	defer func() { _ = src.Close() }()

	d, ok := src.Duration()
	return d, ok, nil
}
