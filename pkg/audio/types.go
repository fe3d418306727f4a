// ABOUTME: Audio type definitions
// ABOUTME: Defines decoded stream formats, sample conversions and gain
package audio

import "time"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes a decoded audio stream
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// FramesToDuration converts a frame count at this format's rate to time
func (f Format) FramesToDuration(frames int64) time.Duration {
	if f.SampleRate <= 0 || frames <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit playback)
func SampleToInt16(sample int32) int16 {
	// Right-shift to convert 24-bit range to 16-bit range
	return int16(sample >> 8)
}

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	return int32(sample) << 8
}

// SampleFromFloat converts a [-1, 1] float sample to the 24-bit range
func SampleFromFloat(sample float64) int32 {
	return clamp24(int64(sample * Max24Bit))
}

// SampleFromBitDepth scales a sample of the given bit depth to the 24-bit range
func SampleFromBitDepth(sample int32, bitDepth int) int32 {
	shift := bitDepth - 24
	switch {
	case shift > 0:
		return sample >> shift
	case shift < 0:
		return sample << -shift
	default:
		return sample
	}
}

// ApplyGain scales samples in place with clipping protection.
// A gain of 1.0 leaves samples unchanged; values above 1.0 amplify.
func ApplyGain(samples []int32, gain float64) {
	if gain == 1.0 {
		return
	}
	for i, sample := range samples {
		samples[i] = clamp24(int64(float64(sample) * gain))
	}
}

func clamp24(v int64) int32 {
	if v > Max24Bit {
		return Max24Bit
	}
	if v < Min24Bit {
		return Min24Bit
	}
	return int32(v)
}
