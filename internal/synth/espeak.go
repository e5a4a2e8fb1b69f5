// ABOUTME: eSpeak subprocess engine
// ABOUTME: Runs espeak --stdout and parses the WAV it emits
package synth

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
	"github.com/speakbridge/speakbridge-go/pkg/audio/decode"
)

// DefaultBinary is the espeak executable looked up on PATH
const DefaultBinary = "espeak"

// ESpeak synthesizes speech by invoking the espeak binary per request.
// The process is short-lived: one invocation per synthesis event, no
// engine state survives between calls.
type ESpeak struct {
	binary string
}

// NewESpeak creates an eSpeak engine using the given binary path,
// or DefaultBinary when empty
func NewESpeak(binary string) *ESpeak {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ESpeak{binary: binary}
}

// Synthesize runs espeak and returns its native-rate output
// (22050 Hz mono PCM16 for stock espeak voices)
func (e *ESpeak) Synthesize(ctx context.Context, text string, opts Options) (audio.Buffer, error) {
	if strings.TrimSpace(text) == "" {
		return audio.Buffer{}, ErrEmptyText
	}

	cmd := exec.CommandContext(ctx, e.binary, espeakArgs(text, opts)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return audio.Buffer{}, fmt.Errorf("%w: %v: %s", ErrEngineFailed, err, msg)
		}
		return audio.Buffer{}, fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}

	buf, err := decode.ReadWAV(bytes.NewReader(stdout.Bytes()))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: unreadable engine output: %v", ErrEngineFailed, err)
	}
	return buf, nil
}

// Close releases engine resources
func (e *ESpeak) Close() error {
	return nil
}

// espeakArgs builds the espeak command line for one synthesis event
func espeakArgs(text string, opts Options) []string {
	voice := opts.Voice
	if voice == "" {
		voice = DefaultOptions().Voice
	}

	return []string{
		"--stdout",
		"-v", voice,
		"-s", strconv.Itoa(opts.Speed),
		"-a", strconv.Itoa(opts.Volume),
		"-g", strconv.Itoa(opts.WordGap),
		"-p", strconv.Itoa(opts.Pitch),
		"-k", strconv.Itoa(opts.Capitals),
		"--", text,
	}
}
