// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts decoded sources to the output device's rate and channel count
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates and
// handles both upsampling and downsampling. Source wraps a decoded stream
// so every track can play through one device format.
//
// Example:
//
//	r := resample.New(44100, 48000, 2)
//	outputSize := r.Resample(inputSamples, outputSamples)
//
//	src = resample.NewSource(src, 44100, 2)
package resample
