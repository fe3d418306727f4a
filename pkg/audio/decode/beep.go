// ABOUTME: WAV and Ogg Vorbis decoders built on beep streamers
// ABOUTME: Converts beep's stereo float frames to int32 samples
package decode

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/harperreed/tuneloop/pkg/audio"
)

// BeepSource adapts a beep.StreamSeekCloser to Source.
// beep always streams stereo frames, mono files come out duplicated.
type BeepSource struct {
	streamer beep.StreamSeekCloser
	format   audio.Format
	frames   [][2]float64
}

// NewWAV opens a RIFF WAVE file for decoding
func NewWAV(path string) (*BeepSource, error) {
	return newBeepSource(path, "wav", func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	})
}

// NewVorbis opens an Ogg Vorbis file for decoding
func NewVorbis(path string) (*BeepSource, error) {
	return newBeepSource(path, "vorbis", func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return vorbis.Decode(f)
	})
}

type beepDecodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func newBeepSource(path, codec string, decodeFn beepDecodeFunc) (*BeepSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file: %w", codec, err)
	}

	streamer, format, err := decodeFn(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", codec, err)
	}

	return &BeepSource{
		streamer: streamer,
		format: audio.Format{
			Codec:      codec,
			SampleRate: int(format.SampleRate),
			Channels:   2,
			BitDepth:   format.Precision * 8,
		},
	}, nil
}

// Read streams the next frames as interleaved stereo samples
func (s *BeepSource) Read(samples []int32) (int, error) {
	want := len(samples) / 2
	if want == 0 {
		return 0, nil
	}
	if cap(s.frames) < want {
		s.frames = make([][2]float64, want)
	}
	frames := s.frames[:want]

	n, ok := s.streamer.Stream(frames)
	for i := 0; i < n; i++ {
		samples[i*2] = audio.SampleFromFloat(frames[i][0])
		samples[i*2+1] = audio.SampleFromFloat(frames[i][1])
	}

	if n == 0 && !ok {
		if err := s.streamer.Err(); err != nil {
			return 0, fmt.Errorf("%s decode error: %w", s.format.Codec, err)
		}
		return 0, io.EOF
	}
	return n * 2, nil
}

// Format returns the decoded output format
func (s *BeepSource) Format() audio.Format { return s.format }

// Duration is known whenever the streamer reports a length
func (s *BeepSource) Duration() (time.Duration, bool) {
	frames := s.streamer.Len()
	if frames <= 0 {
		return 0, false
	}
	return s.format.FramesToDuration(int64(frames)), true
}

// Close closes the streamer, which closes the file
func (s *BeepSource) Close() error {
	return s.streamer.Close()
}
