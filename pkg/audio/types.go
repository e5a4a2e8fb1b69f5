// ABOUTME: Audio type definitions
// ABOUTME: Defines telephony formats, sample buffers and PCM16/float conversions
package audio

const (
	// 16-bit PCM range constants
	MaxPCM16 = 32767  // 2^15 - 1
	MinPCM16 = -32768 // -2^15

	// Telephony sample rates
	Rate8k  = 8000
	Rate16k = 16000
)

// Format describes an audio stream format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// TelephonyFormat returns the PCM16 mono format at the given rate
func TelephonyFormat(sampleRate int) Format {
	return Format{
		Codec:      "pcm",
		SampleRate: sampleRate,
		Channels:   1,
		BitDepth:   16,
	}
}

// Buffer represents mono PCM audio as normalized float samples.
// Samples holds amplitudes in [-1.0, 1.0); Frames is the declared
// frame count and must not exceed len(Samples) for a well-formed
// buffer.
type Buffer struct {
	Samples    []float64
	Frames     int
	SampleRate int
}

// NewBuffer creates a buffer covering all of samples
func NewBuffer(samples []float64, sampleRate int) Buffer {
	return Buffer{
		Samples:    samples,
		Frames:     len(samples),
		SampleRate: sampleRate,
	}
}

// SampleToFloat converts an int16 PCM sample to a normalized float in [-1.0, 1.0)
func SampleToFloat(sample int16) float64 {
	return float64(sample) / 32768.0
}

// SampleFromFloat converts a normalized float sample to int16 PCM,
// saturating out-of-range values instead of wrapping
func SampleFromFloat(sample float64) int16 {
	scaled := sample * 32768.0
	if scaled >= MaxPCM16 {
		return MaxPCM16
	}
	if scaled <= MinPCM16 {
		return MinPCM16
	}
	// Round half away from zero
	if scaled >= 0 {
		return int16(scaled + 0.5)
	}
	return int16(scaled - 0.5)
}
