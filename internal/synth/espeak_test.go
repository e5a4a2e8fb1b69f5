// ABOUTME: Tests for the eSpeak subprocess engine
// ABOUTME: Tests argument construction and input validation
package synth

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Voice != "default" {
		t.Errorf("voice = %q, want %q", opts.Voice, "default")
	}
	if opts.Speed != 150 {
		t.Errorf("speed = %d, want 150", opts.Speed)
	}
	if opts.Volume != 100 {
		t.Errorf("volume = %d, want 100", opts.Volume)
	}
	if opts.WordGap != 1 {
		t.Errorf("wordgap = %d, want 1", opts.WordGap)
	}
	if opts.Pitch != 50 {
		t.Errorf("pitch = %d, want 50", opts.Pitch)
	}
	if opts.Capitals != 0 {
		t.Errorf("capitals = %d, want 0", opts.Capitals)
	}
}

func TestESpeakArgs(t *testing.T) {
	opts := Options{
		Voice:    "en-gb",
		Speed:    130,
		Volume:   90,
		WordGap:  2,
		Pitch:    40,
		Capitals: 1,
	}

	got := espeakArgs("hello world", opts)
	want := []string{
		"--stdout",
		"-v", "en-gb",
		"-s", "130",
		"-a", "90",
		"-g", "2",
		"-p", "40",
		"-k", "1",
		"--", "hello world",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("espeakArgs() = %v, want %v", got, want)
	}
}

func TestESpeakArgsEmptyVoice(t *testing.T) {
	args := espeakArgs("hi", Options{})

	for i, a := range args {
		if a == "-v" && args[i+1] != "default" {
			t.Errorf("empty voice mapped to %q, want %q", args[i+1], "default")
		}
	}
}

func TestESpeakArgsLeadingDashText(t *testing.T) {
	// Text starting with a dash must not be parsed as a flag
	args := espeakArgs("-rm everything", DefaultOptions())

	if args[len(args)-2] != "--" {
		t.Error("text not separated from flags with --")
	}
	if args[len(args)-1] != "-rm everything" {
		t.Errorf("text argument = %q", args[len(args)-1])
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	engine := NewESpeak("")
	defer engine.Close()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := engine.Synthesize(context.Background(), text, DefaultOptions())
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("text %q: expected ErrEmptyText, got %v", text, err)
		}
	}
}

func TestSynthesizeMissingBinary(t *testing.T) {
	engine := NewESpeak("/nonexistent/espeak-binary")
	defer engine.Close()

	_, err := engine.Synthesize(context.Background(), "hello", DefaultOptions())
	if !errors.Is(err, ErrEngineFailed) {
		t.Errorf("expected ErrEngineFailed, got %v", err)
	}
}

func TestNewESpeakDefaultBinary(t *testing.T) {
	engine := NewESpeak("")
	if engine.binary != DefaultBinary {
		t.Errorf("binary = %q, want %q", engine.binary, DefaultBinary)
	}
}
