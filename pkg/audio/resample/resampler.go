// ABOUTME: Windowed-sinc resampler for converting audio sample rates
// ABOUTME: Band-limited interpolation over normalized float mono samples
package resample

import "math"

// zeroCrossings is the one-sided kernel length in zero crossings of the
// sinc function. 16 crossings keeps aliasing well below telephony noise
// floors while staying cheap enough for per-request conversion.
const zeroCrossings = 16

// Resampler converts mono float samples between sample rates using
// Blackman-windowed sinc interpolation
type Resampler struct {
	inputRate  int
	outputRate int
	ratio      float64 // outputRate / inputRate
	cutoff     float64 // normalized lowpass cutoff relative to input Nyquist
	halfWidth  float64 // one-sided kernel width in input frames
}

// New creates a resampler for the given rate pair
func New(inputRate, outputRate int) *Resampler {
	ratio := float64(outputRate) / float64(inputRate)

	// When downsampling the kernel doubles as the anti-alias filter:
	// the cutoff drops to the output Nyquist and the kernel widens to keep
	// the same number of zero crossings under the lower cutoff.
	cutoff := 1.0
	if ratio < 1.0 {
		cutoff = ratio
	}

	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      ratio,
		cutoff:     cutoff,
		halfWidth:  float64(zeroCrossings) / cutoff,
	}
}

// OutputFrames returns the number of output frames produced from
// inputFrames, rounded half away from zero
func (r *Resampler) OutputFrames(inputFrames int) int {
	return int(math.Round(float64(inputFrames) * r.ratio))
}

// Resample converts input samples at inputRate to output samples at
// outputRate. The input is treated as zero outside its bounds. Pure and
// deterministic: identical input always yields identical output.
func (r *Resampler) Resample(input []float64) []float64 {
	output := make([]float64, r.OutputFrames(len(input)))

	for i := range output {
		// Position of this output frame on the input time axis
		pos := float64(i) / r.ratio

		lo := int(math.Ceil(pos - r.halfWidth))
		hi := int(math.Floor(pos + r.halfWidth))
		if lo < 0 {
			lo = 0
		}
		if hi > len(input)-1 {
			hi = len(input) - 1
		}

		var acc float64
		for j := lo; j <= hi; j++ {
			x := pos - float64(j)
			acc += input[j] * r.cutoff * sinc(r.cutoff*x) * blackman(x/r.halfWidth)
		}
		output[i] = acc
	}

	return output
}

// sinc is the normalized sinc function sin(pi x) / (pi x)
func sinc(x float64) float64 {
	if x == 0 {
		return 1.0
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// blackman evaluates the Blackman window at t in [-1, 1], zero outside
func blackman(t float64) float64 {
	if t < -1.0 || t > 1.0 {
		return 0.0
	}
	return 0.42 + 0.5*math.Cos(math.Pi*t) + 0.08*math.Cos(2.0*math.Pi*t)
}
