// ABOUTME: Synthesizer engine interface and voice options
// ABOUTME: Defines the external TTS collaborator the bridge drives
package synth

import (
	"context"
	"errors"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
)

var (
	// ErrEmptyText reports a synthesis request without text
	ErrEmptyText = errors.New("no text to synthesize")

	// ErrEngineFailed reports a failed engine invocation
	ErrEngineFailed = errors.New("synthesis engine failed")
)

// Options holds the voice parameters an engine accepts
type Options struct {
	Voice    string // voice or language name
	Speed    int    // words per minute
	Volume   int    // amplitude, 0-200
	WordGap  int    // pause between words, units of 10ms
	Pitch    int    // base pitch, 0-99
	Capitals int    // capital-letter indication mode
}

// DefaultOptions returns the engine defaults
func DefaultOptions() Options {
	return Options{
		Voice:    "default",
		Speed:    150,
		Volume:   100,
		WordGap:  1,
		Pitch:    50,
		Capitals: 0,
	}
}

// Engine synthesizes speech from text. Engines return a mono buffer at
// their native sample rate; rate conversion is the converter's job, not
// the engine's.
type Engine interface {
	// Synthesize produces speech for text with the given voice options
	Synthesize(ctx context.Context, text string, opts Options) (audio.Buffer, error)

	// Close releases engine resources
	Close() error
}
