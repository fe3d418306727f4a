// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 files to int32 samples with go-mp3
package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harperreed/tuneloop/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces 16-bit stereo
const mp3BytesPerFrame = 4

// MP3Source decodes an MP3 file
type MP3Source struct {
	file    *os.File
	decoder *mp3.Decoder
	format  audio.Format
	buf     []byte
}

// NewMP3 opens an MP3 file for decoding
func NewMP3(path string) (*MP3Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}

	return &MP3Source{
		file:    f,
		decoder: decoder,
		format: audio.Format{
			Codec:      "mp3",
			SampleRate: decoder.SampleRate(),
			Channels:   2,
			BitDepth:   16,
		},
	}, nil
}

// Read decodes the next chunk of samples
func (s *MP3Source) Read(samples []int32) (int, error) {
	numBytes := len(samples) * 2
	if cap(s.buf) < numBytes {
		s.buf = make([]byte, numBytes)
	}
	buf := s.buf[:numBytes]

	n, err := io.ReadFull(s.decoder, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("mp3 decode error: %w", err)
	}

	numSamples := n / 2
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(buf[i*2:]))
		samples[i] = audio.SampleFromInt16(sample16)
	}

	if numSamples == 0 {
		return 0, io.EOF
	}
	return numSamples, nil
}

// Format returns the decoded output format
func (s *MP3Source) Format() audio.Format { return s.format }

// Duration derives the length from the decoded byte count
func (s *MP3Source) Duration() (time.Duration, bool) {
	length := s.decoder.Length()
	if length <= 0 {
		return 0, false
	}
	return s.format.FramesToDuration(length / mp3BytesPerFrame), true
}

// Close closes the underlying file
func (s *MP3Source) Close() error {
	return s.file.Close()
}
