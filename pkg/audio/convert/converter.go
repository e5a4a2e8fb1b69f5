// ABOUTME: Telephony audio converter core
// ABOUTME: Validates conversion requests and resamples buffers to 8k/16k PCM16
package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
	"github.com/speakbridge/speakbridge-go/pkg/audio/resample"
)

// Conversion failures. Every failure is terminal for its request: the
// converter performs no retry and produces no partial result.
var (
	// ErrUnsupportedRate reports a target rate outside the telephony set
	ErrUnsupportedRate = errors.New("unsupported target sample rate")

	// ErrShortBuffer reports a source whose samples cannot be read in
	// full against its declared frame count
	ErrShortBuffer = errors.New("sample buffer shorter than declared frame count")

	// ErrOutputSize reports an output buffer that cannot be sized
	ErrOutputSize = errors.New("cannot size output buffer")
)

// maxOutputFrames bounds a single conversion to ~37 hours at 16 kHz,
// far beyond any single synthesis event
const maxOutputFrames = math.MaxInt32

// Request asks for one conversion of a source buffer to a telephony rate
type Request struct {
	Source     audio.Buffer
	TargetRate int
}

// Result carries the converted samples and their format descriptor
type Result struct {
	Samples audio.Buffer
	Format  audio.Format
}

// SupportedRate reports whether rate is a valid telephony target rate
func SupportedRate(rate int) bool {
	return rate == audio.Rate8k || rate == audio.Rate16k
}

// Convert resamples the request's source buffer to the target rate and
// tags the result as PCM16 mono. When source and target rates match the
// samples are copied verbatim with no resampling error introduced.
//
// Convert is pure: it shares no state across calls and is safe to invoke
// concurrently for independent requests.
func Convert(req Request) (Result, error) {
	if !SupportedRate(req.TargetRate) {
		return Result{}, fmt.Errorf("%w: %d Hz (supported: 8000, 16000)", ErrUnsupportedRate, req.TargetRate)
	}

	src := req.Source
	if src.Frames < 0 || src.Frames > len(src.Samples) {
		return Result{}, fmt.Errorf("%w: declared %d frames, have %d samples",
			ErrShortBuffer, src.Frames, len(src.Samples))
	}

	// Passthrough: bit-identical copy, ownership transferred to the result
	if src.SampleRate == req.TargetRate {
		out := make([]float64, src.Frames)
		copy(out, src.Samples[:src.Frames])
		return Result{
			Samples: audio.NewBuffer(out, req.TargetRate),
			Format:  audio.TelephonyFormat(req.TargetRate),
		}, nil
	}

	if src.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: source rate %d Hz", ErrOutputSize, src.SampleRate)
	}

	r := resample.New(src.SampleRate, req.TargetRate)
	if r.OutputFrames(src.Frames) > maxOutputFrames {
		return Result{}, fmt.Errorf("%w: %d source frames at %d Hz", ErrOutputSize, src.Frames, src.SampleRate)
	}

	out := r.Resample(src.Samples[:src.Frames])
	return Result{
		Samples: audio.NewBuffer(out, req.TargetRate),
		Format:  audio.TelephonyFormat(req.TargetRate),
	}, nil
}
