// ABOUTME: Local playback sinks for the bridge
// ABOUTME: Implements file and output-device sinks
package bridge

import (
	"context"
	"fmt"
	"os"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
	"github.com/speakbridge/speakbridge-go/pkg/audio/encode"
	"github.com/speakbridge/speakbridge-go/pkg/audio/output"
)

// FileSink writes the finished audio as a WAV file. Files have no
// listener to interrupt, so the interrupt set is ignored.
type FileSink struct {
	Path string
}

// Play writes the samples to the sink's path
func (s *FileSink) Play(ctx context.Context, format audio.Format, samples []float64, interrupt string) (rune, error) {
	f, err := os.Create(s.Path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", s.Path, err)
	}
	defer f.Close()

	buf := audio.NewBuffer(samples, format.SampleRate)
	if err := encode.WriteWAV(f, buf); err != nil {
		return 0, err
	}
	return 0, nil
}

// OutputSink plays the finished audio through a local output device.
// Local playback has no DTMF source; cancellation comes from ctx.
type OutputSink struct {
	Output output.Output
}

// Play streams the samples to the output device in 20ms chunks,
// honoring context cancellation between chunks
func (s *OutputSink) Play(ctx context.Context, format audio.Format, samples []float64, interrupt string) (rune, error) {
	if err := s.Output.Open(format.SampleRate); err != nil {
		return 0, err
	}

	chunk := format.SampleRate / 50 // 20ms
	for start := 0; start < len(samples); start += chunk {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		end := start + chunk
		if end > len(samples) {
			end = len(samples)
		}
		if err := s.Output.Write(samples[start:end]); err != nil {
			return 0, err
		}
	}

	return 0, s.Output.Drain()
}
