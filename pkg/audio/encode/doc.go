// ABOUTME: Audio encoder package for encoding float PCM to wire formats
// ABOUTME: Provides Encoder interface and implementations for PCM, Opus, plus WAV packaging
// Package encode provides audio encoders for the playback sinks.
//
// Supports: PCM (16-bit little-endian), Opus, and RIFF/WAVE container
// packaging. All encoders accept mono float samples normalized to
// [-1.0, 1.0) and saturate out-of-range values to the 16-bit range.
//
// Example:
//
//	encoder, err := encode.NewPCM(format)
//	data, err := encoder.Encode(samples)
package encode
