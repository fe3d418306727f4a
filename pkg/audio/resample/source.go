// ABOUTME: Decoded source adapter converting rate and channel count
// ABOUTME: Lets any decoder feed an output device opened at a fixed format
package resample

import (
	"time"

	"github.com/harperreed/tuneloop/pkg/audio"
	"github.com/harperreed/tuneloop/pkg/audio/decode"
)

// chunk of source samples pulled per refill
const readChunk = 4096

// Source wraps a decode.Source and emits samples at a fixed rate and channel count
type Source struct {
	src       decode.Source
	resampler *Resampler
	inFormat  audio.Format
	format    audio.Format
	in        []int32
	mixed     []int32
	out       []int32
	pending   []int32
}

// NewSource adapts src to sampleRate and channels (1 or 2). When the formats
// already match, src is returned unchanged.
func NewSource(src decode.Source, sampleRate, channels int) decode.Source {
	in := src.Format()
	if in.SampleRate == sampleRate && in.Channels == channels {
		return src
	}

	out := in
	out.SampleRate = sampleRate
	out.Channels = channels

	s := &Source{
		src:      src,
		inFormat: in,
		format:   out,
		in:       make([]int32, readChunk*in.Channels),
	}
	if in.SampleRate != sampleRate {
		s.resampler = New(in.SampleRate, sampleRate, channels)
	}
	return s
}

// Read returns converted samples, refilling from the wrapped source as needed
func (s *Source) Read(samples []int32) (int, error) {
	for len(s.pending) == 0 {
		if err := s.refill(); err != nil {
			return 0, err
		}
	}

	n := copy(samples, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *Source) refill() error {
	n, err := s.src.Read(s.in)
	if n == 0 {
		return err
	}

	s.mixed = remix(s.in[:n], s.inFormat.Channels, s.format.Channels, s.mixed)
	if s.resampler == nil {
		s.pending = s.mixed
		return nil
	}

	need := s.resampler.OutputSamplesNeeded(len(s.mixed)) + 2*s.format.Channels
	if cap(s.out) < need {
		s.out = make([]int32, need)
	}
	produced := s.resampler.Resample(s.mixed, s.out[:need])
	s.pending = s.out[:produced]
	return nil
}

// remix maps interleaved frames from inCh to outCh channels into dst
func remix(in []int32, inCh, outCh int, dst []int32) []int32 {
	if inCh == outCh {
		return append(dst[:0], in...)
	}

	frames := len(in) / inCh
	dst = dst[:0]
	for f := 0; f < frames; f++ {
		frame := in[f*inCh : (f+1)*inCh]
		switch {
		case outCh == 1:
			var sum int64
			for _, v := range frame {
				sum += int64(v)
			}
			dst = append(dst, int32(sum/int64(inCh)))
		case inCh == 1:
			for c := 0; c < outCh; c++ {
				dst = append(dst, frame[0])
			}
		default:
			for c := 0; c < outCh; c++ {
				dst = append(dst, frame[min(c, inCh-1)])
			}
		}
	}
	return dst
}

// Format returns the converted output format
func (s *Source) Format() audio.Format { return s.format }

// Duration is unchanged by conversion
func (s *Source) Duration() (time.Duration, bool) { return s.src.Duration() }

// Close closes the wrapped source
func (s *Source) Close() error { return s.src.Close() }
