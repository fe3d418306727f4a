// ABOUTME: Test tone generator writing WAV files
// ABOUTME: Produces a 440Hz sine for checking audio output and for fixtures
package testtone

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// Frequency of the generated tone (A4)
const Frequency = 440.0

// Options control the generated file
type Options struct {
	SampleRate int
	Channels   int
	Length     time.Duration
	// Amplitude in [0, 1], defaults to 0.5
	Amplitude float64
}

// Tone returns an endless sine streamer at the given rate
func Tone(sampleRate int, amplitude float64) beep.Streamer {
	var index uint64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(index) / float64(sampleRate)
			v := amplitude * math.Sin(2*math.Pi*Frequency*t)
			samples[i][0] = v
			samples[i][1] = v
			index++
		}
		return len(samples), true
	})
}

// WriteWAV writes a 16-bit PCM tone of opts.Length to path
func WriteWAV(path string, opts Options) error {
	if opts.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", opts.SampleRate)
	}
	if opts.Channels != 1 && opts.Channels != 2 {
		return fmt.Errorf("invalid channel count: %d (supported: 1, 2)", opts.Channels)
	}
	if opts.Amplitude == 0 {
		opts.Amplitude = 0.5
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	format := beep.Format{
		SampleRate:  beep.SampleRate(opts.SampleRate),
		NumChannels: opts.Channels,
		Precision:   2,
	}
	frames := format.SampleRate.N(opts.Length)

	if err := wav.Encode(f, beep.Take(frames, Tone(opts.SampleRate, opts.Amplitude)), format); err != nil {
		return fmt.Errorf("failed to encode tone: %w", err)
	}
	return f.Close()
}
