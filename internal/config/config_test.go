// ABOUTME: Tests for configuration loading
// ABOUTME: Tests INI parsing, defaults and missing-file handling
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[general]
usecache = true
cachedir = /var/cache/speakbridge
samplerate = 16000

[voice]
voice = en-gb
speed = 130
volume = 90
wordgap = 2
pitch = 40
capind = 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !cfg.UseCache {
		t.Error("expected usecache true")
	}
	if cfg.CacheDir != "/var/cache/speakbridge" {
		t.Errorf("cachedir = %q", cfg.CacheDir)
	}
	if cfg.SampleRate != 16000 {
		t.Errorf("samplerate = %d, want 16000", cfg.SampleRate)
	}
	if cfg.Voice.Voice != "en-gb" {
		t.Errorf("voice = %q, want en-gb", cfg.Voice.Voice)
	}
	if cfg.Voice.Speed != 130 {
		t.Errorf("speed = %d, want 130", cfg.Voice.Speed)
	}
	if cfg.Voice.Volume != 90 {
		t.Errorf("volume = %d, want 90", cfg.Voice.Volume)
	}
	if cfg.Voice.WordGap != 2 {
		t.Errorf("wordgap = %d, want 2", cfg.Voice.WordGap)
	}
	if cfg.Voice.Pitch != 40 {
		t.Errorf("pitch = %d, want 40", cfg.Voice.Pitch)
	}
	if cfg.Voice.Capitals != 1 {
		t.Errorf("capind = %d, want 1", cfg.Voice.Capitals)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[general]
samplerate = 16000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.SampleRate != 16000 {
		t.Errorf("samplerate = %d, want 16000", cfg.SampleRate)
	}
	if cfg.UseCache {
		t.Error("expected usecache default false")
	}
	if cfg.CacheDir != "/tmp" {
		t.Errorf("cachedir = %q, want /tmp", cfg.CacheDir)
	}
	if cfg.Voice.Speed != 150 {
		t.Errorf("speed = %d, want default 150", cfg.Voice.Speed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.conf"))

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected defaults alongside ErrNotFound")
	}
	if cfg.SampleRate != 8000 {
		t.Errorf("default samplerate = %d, want 8000", cfg.SampleRate)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UseCache {
		t.Error("default usecache should be false")
	}
	if cfg.SampleRate != 8000 {
		t.Errorf("default samplerate = %d, want 8000", cfg.SampleRate)
	}
	if cfg.Voice.Voice != "default" {
		t.Errorf("default voice = %q", cfg.Voice.Voice)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speakbridge.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}
