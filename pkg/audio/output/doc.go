// ABOUTME: Audio output package for local playback
// ABOUTME: Provides Output interface and the oto backend
// Package output provides local audio playback for synthesized speech.
//
// The Output interface is mono PCM16; the oto backend feeds a
// persistent player through a pipe so successive Write calls play
// gaplessly.
//
// Example:
//
//	out := output.NewOto()
//	if err := out.Open(8000); err != nil { ... }
//	out.Write(samples)
//	out.Drain()
//	out.Close()
package output
