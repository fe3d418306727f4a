// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format and sample conversion functions shared by decoders and outputs
// Package audio provides fundamental audio types and utilities.
//
// Decoders in the decode package produce interleaved int32 samples in the
// 24-bit range regardless of source bit depth, so that gain, resampling and
// output conversion only need to handle one representation:
//   - 16-bit, float and arbitrary bit depths convert into the 24-bit range
//   - ApplyGain scales with clipping, allowing gains above 1.0
//
// Example:
//
//	format := audio.Format{Codec: "flac", SampleRate: 44100, Channels: 2, BitDepth: 16}
//	length := format.FramesToDuration(totalFrames)
package audio
