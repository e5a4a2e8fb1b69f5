// ABOUTME: Configuration-file loading for the bridge
// ABOUTME: Reads INI-style [general] and [voice] sections via viper
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/speakbridge/speakbridge-go/internal/synth"
	"github.com/speakbridge/speakbridge-go/pkg/audio"
	"github.com/spf13/viper"
)

// DefaultFile is the configuration file consulted when none is given
const DefaultFile = "/etc/speakbridge/speakbridge.conf"

// ErrNotFound reports a missing configuration file; the caller is
// expected to warn and continue with defaults
var ErrNotFound = errors.New("configuration file not found")

// Config holds the bridge configuration
type Config struct {
	UseCache   bool
	CacheDir   string
	SampleRate int
	Voice      synth.Options
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		UseCache:   false,
		CacheDir:   "/tmp",
		SampleRate: audio.Rate8k,
		Voice:      synth.DefaultOptions(),
	}
}

// Load reads the configuration file at path. A missing file returns the
// defaults together with ErrNotFound so the caller can log a warning.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	v.SetDefault("general.usecache", cfg.UseCache)
	v.SetDefault("general.cachedir", cfg.CacheDir)
	v.SetDefault("general.samplerate", cfg.SampleRate)
	v.SetDefault("voice.voice", cfg.Voice.Voice)
	v.SetDefault("voice.speed", cfg.Voice.Speed)
	v.SetDefault("voice.volume", cfg.Voice.Volume)
	v.SetDefault("voice.wordgap", cfg.Voice.WordGap)
	v.SetDefault("voice.pitch", cfg.Voice.Pitch)
	v.SetDefault("voice.capind", cfg.Voice.Capitals)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.UseCache = v.GetBool("general.usecache")
	cfg.CacheDir = v.GetString("general.cachedir")
	cfg.SampleRate = v.GetInt("general.samplerate")
	cfg.Voice.Voice = v.GetString("voice.voice")
	cfg.Voice.Speed = v.GetInt("voice.speed")
	cfg.Voice.Volume = v.GetInt("voice.volume")
	cfg.Voice.WordGap = v.GetInt("voice.wordgap")
	cfg.Voice.Pitch = v.GetInt("voice.pitch")
	cfg.Voice.Capitals = v.GetInt("voice.capind")

	return cfg, nil
}
