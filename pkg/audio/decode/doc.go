// ABOUTME: Audio decoder package for ingesting engine and cache output
// ABOUTME: Provides Decoder interface plus PCM16 and WAV container readers
// Package decode provides audio decoders for the synthesis pipeline.
//
// Supports: raw PCM (16-bit little-endian) and PCM16 mono RIFF/WAVE
// containers, including streams whose data-chunk length was unknown at
// write time (as eSpeak emits on stdout). All decoders produce mono
// float samples normalized to [-1.0, 1.0).
package decode
