// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides fundamental audio types for telephony voice processing.
//
// This package defines the core types used throughout the speakbridge library:
//   - Format: Describes an audio stream format (codec, sample rate, channels, bit depth)
//   - Buffer: Mono PCM audio as normalized float samples with a declared frame count
//
// It also provides utilities for converting between 16-bit PCM and the
// normalized float representation the processing pipeline works in:
//
//	f := audio.SampleToFloat(sample16) // [-1.0, 1.0)
//	s := audio.SampleFromFloat(f)      // saturating, never wraps
//
// Example:
//
//	format := audio.TelephonyFormat(audio.Rate8k)
//	buf := audio.NewBuffer(samples, 22050)
package audio
