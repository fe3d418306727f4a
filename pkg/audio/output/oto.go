// ABOUTME: Oto-based audio output implementation
// ABOUTME: Opens the single process-wide oto context and creates players from it
package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// oto only allows one context per process
var (
	otoMu      sync.Mutex
	otoContext *oto.Context
)

// Oto output implementation using oto library
type Oto struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
}

// NewOto opens the audio device at the given format and waits until it is ready
func NewOto(sampleRate, channels int) (*Oto, error) {
	if sampleRate <= 0 || channels < 1 || channels > 2 {
		return nil, fmt.Errorf("%w: %dHz %dch", ErrInvalidFormat, sampleRate, channels)
	}

	otoMu.Lock()
	defer otoMu.Unlock()

	if otoContext != nil {
		return nil, fmt.Errorf("%w: oto context already created", ErrNoDevice)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	<-readyChan

	otoContext = ctx

	return &Oto{
		ctx:        ctx,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// SampleRate returns the device rate
func (o *Oto) SampleRate() int {
	return o.sampleRate
}

// Channels returns the device channel count
func (o *Oto) Channels() int {
	return o.channels
}

// NewVoice creates an oto player over r
func (o *Oto) NewVoice(r io.Reader) Voice {
	return o.ctx.NewPlayer(r)
}

// Suspend pauses the whole device, used on shutdown
func (o *Oto) Suspend() error {
	return o.ctx.Suspend()
}
