// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC files frame by frame with mewkiz/flac
package decode

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harperreed/tuneloop/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLACSource decodes a FLAC file
type FLACSource struct {
	file    *os.File
	stream  *flac.Stream
	format  audio.Format
	frames  uint64
	pending []int32
}

// NewFLAC opens a FLAC file for decoding
func NewFLAC(path string) (*FLACSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}

	stream, err := flac.New(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	return &FLACSource{
		file:   f,
		stream: stream,
		frames: info.NSamples,
		format: audio.Format{
			Codec:      "flac",
			SampleRate: int(info.SampleRate),
			Channels:   int(info.NChannels),
			BitDepth:   int(info.BitsPerSample),
		},
	}, nil
}

// Read decodes whole FLAC frames and hands them out in caller-sized chunks
func (s *FLACSource) Read(samples []int32) (int, error) {
	written := 0

	for written < len(samples) {
		if len(s.pending) == 0 {
			if err := s.parseFrame(); err != nil {
				if err == io.EOF && written > 0 {
					return written, nil
				}
				return written, err
			}
		}

		n := copy(samples[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	return written, nil
}

// parseFrame decodes the next frame into the pending buffer, interleaved
func (s *FLACSource) parseFrame() error {
	frame, err := s.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("flac decode error: %w", err)
	}

	channels := s.format.Channels
	blockSize := int(frame.BlockSize)
	buf := s.pending[:0]
	for i := 0; i < blockSize; i++ {
		for ch := 0; ch < channels; ch++ {
			sample := frame.Subframes[ch].Samples[i]
			buf = append(buf, audio.SampleFromBitDepth(sample, s.format.BitDepth))
		}
	}
	s.pending = buf
	return nil
}

// Format returns the decoded output format
func (s *FLACSource) Format() audio.Format { return s.format }

// Duration comes from the STREAMINFO total sample count, when present
func (s *FLACSource) Duration() (time.Duration, bool) {
	if s.frames == 0 {
		return 0, false
	}
	return s.format.FramesToDuration(int64(s.frames)), true
}

// Close closes the underlying file
func (s *FLACSource) Close() error {
	return s.file.Close()
}
