// ABOUTME: Audio resampling package using windowed-sinc interpolation
// ABOUTME: Converts mono float audio between sample rates
// Package resample provides audio sample rate conversion.
//
// Uses Blackman-windowed sinc interpolation for converting between
// sample rates. Handles both upsampling and downsampling; when
// downsampling the kernel cutoff is lowered to the output Nyquist
// frequency so the same pass doubles as the anti-alias filter.
//
// Example:
//
//	r := resample.New(22050, 8000)
//	output := r.Resample(inputSamples)
package resample
