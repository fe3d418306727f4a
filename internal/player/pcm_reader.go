// ABOUTME: PCM byte reader feeding an output voice from a decoded source
// ABOUTME: Applies live gain and converts 24-bit samples to 16-bit little-endian
package player

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/harperreed/tuneloop/pkg/audio"
	"github.com/harperreed/tuneloop/pkg/audio/decode"
)

// pcmReader is read by the output backend on its own goroutine while the
// engine adjusts gain and closes it from the engine goroutine.
type pcmReader struct {
	mu      sync.Mutex
	src     decode.Source
	samples []int32
	closed  bool
	err     error

	gain atomic.Uint64
	done atomic.Bool
}

func newPCMReader(src decode.Source, gain float64) *pcmReader {
	r := &pcmReader{src: src}
	r.SetGain(gain)
	return r
}

// SetGain changes the gain applied to samples read from now on
func (r *pcmReader) SetGain(gain float64) {
	r.gain.Store(math.Float64bits(gain))
}

// Gain returns the current gain
func (r *pcmReader) Gain() float64 {
	return math.Float64frombits(r.gain.Load())
}

// Read fills p with signed 16-bit little-endian samples
func (r *pcmReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.done.Load() {
		return 0, io.EOF
	}

	want := len(p) / 2
	if want == 0 {
		return 0, nil
	}
	if cap(r.samples) < want {
		r.samples = make([]int32, want)
	}
	samples := r.samples[:want]

	n, err := r.src.Read(samples)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
		}
		r.done.Store(true)
	}

	audio.ApplyGain(samples[:n], r.Gain())
	for i, s := range samples[:n] {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(audio.SampleToInt16(s)))
	}

	if n == 0 && r.done.Load() {
		return 0, io.EOF
	}
	return n * 2, nil
}

// Done reports whether the source has been read to its end
func (r *pcmReader) Done() bool {
	return r.done.Load()
}

// Err returns the decode error that ended the stream early, if any
func (r *pcmReader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close releases the source; later reads return io.EOF
func (r *pcmReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.src.Close()
}
