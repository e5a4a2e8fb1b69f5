// ABOUTME: The Say pipeline bridging text to telephony playback
// ABOUTME: Orchestrates cache lookup, synthesis, conversion and sink handoff
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/speakbridge/speakbridge-go/internal/cache"
	"github.com/speakbridge/speakbridge-go/internal/config"
	"github.com/speakbridge/speakbridge-go/internal/synth"
	"github.com/speakbridge/speakbridge-go/pkg/audio"
	"github.com/speakbridge/speakbridge-go/pkg/audio/convert"
	"github.com/speakbridge/speakbridge-go/pkg/audio/decode"
	"github.com/speakbridge/speakbridge-go/pkg/audio/encode"
)

// AnyDigit is the interrupt set matched by the "any" keyword
const AnyDigit = "0123456789*#"

// ErrNoText reports a Say request without text
var ErrNoText = errors.New("speakbridge requires text to say")

// Sink consumes a finished audio result. Play blocks until playback
// completes or a DTMF digit in interrupt arrives; it returns the digit
// that interrupted playback, or 0 when playback ran to the end.
type Sink interface {
	Play(ctx context.Context, format audio.Format, samples []float64, interrupt string) (rune, error)
}

// Request is one spoken utterance
type Request struct {
	Text      string
	Interrupt string // DTMF digits that stop playback; "any" matches all
	Voice     string // overrides the configured voice when non-empty
}

// Bridge drives the synthesis pipeline for a host
type Bridge struct {
	cfg    *config.Config
	engine synth.Engine
	cache  *cache.Cache
}

// New creates a bridge using cfg and engine. Caching is enabled only
// when the configuration asks for it.
func New(cfg *config.Config, engine synth.Engine) *Bridge {
	b := &Bridge{cfg: cfg, engine: engine}
	if cfg.UseCache {
		b.cache = cache.New(cfg.CacheDir)
	}
	return b
}

// Say synthesizes req.Text, converts it to the configured telephony
// rate and plays it through sink. It returns the DTMF digit that
// interrupted playback, or 0.
func (b *Bridge) Say(ctx context.Context, req Request, sink Sink) (rune, error) {
	if strings.TrimSpace(req.Text) == "" {
		return 0, ErrNoText
	}

	interrupt := req.Interrupt
	if strings.EqualFold(interrupt, "any") {
		interrupt = AnyDigit
	}

	if b.cache != nil {
		if digit, ok, err := b.playCached(ctx, req.Text, interrupt, sink); ok {
			return digit, err
		}
	}

	opts := b.cfg.Voice
	if req.Voice != "" {
		opts.Voice = req.Voice
	}

	buf, err := b.engine.Synthesize(ctx, req.Text, opts)
	if err != nil {
		return 0, fmt.Errorf("synthesis failed: %w", err)
	}

	res, err := convert.Convert(convert.Request{
		Source:     buf,
		TargetRate: b.targetRate(),
	})
	if err != nil {
		return 0, fmt.Errorf("conversion failed: %w", err)
	}

	if b.cache != nil {
		if wav, err := encode.WAV(res.Samples); err != nil {
			log.Printf("Cache encode failed: %v", err)
		} else if _, err := b.cache.Store(req.Text, wav); err != nil {
			log.Printf("Cache store failed: %v", err)
		}
	}

	return sink.Play(ctx, res.Format, res.Samples.Samples[:res.Samples.Frames], interrupt)
}

// playCached serves a cache hit. The cached file plays at whatever rate
// it was stored at; a stale or unreadable file falls through to fresh
// synthesis.
func (b *Bridge) playCached(ctx context.Context, text, interrupt string, sink Sink) (rune, bool, error) {
	path, ok := b.cache.Lookup(text)
	if !ok {
		return 0, false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("Cache open failed for %s: %v", path, err)
		return 0, false, nil
	}
	defer f.Close()

	buf, err := decode.ReadWAV(f)
	if err != nil {
		log.Printf("Cache file %s unreadable: %v", path, err)
		return 0, false, nil
	}

	digit, err := sink.Play(ctx, audio.TelephonyFormat(buf.SampleRate), buf.Samples[:buf.Frames], interrupt)
	return digit, true, err
}

// targetRate applies the caller-side rate policy: unsupported configured
// rates warn and fall back to 8000 Hz. The converter still defends the
// invariant itself.
func (b *Bridge) targetRate() int {
	if !convert.SupportedRate(b.cfg.SampleRate) {
		log.Printf("Unsupported sample rate %d, falling back to 8000 Hz", b.cfg.SampleRate)
		return audio.Rate8k
	}
	return b.cfg.SampleRate
}
