// ABOUTME: Converter package for telephony-rate audio conversion
// ABOUTME: Validates requests and dispatches passthrough or sinc resampling
// Package convert turns a synthesizer's native-rate mono buffer into a
// telephony-rate buffer ready for PCM16 packaging.
//
// The converter accepts exactly two target rates, 8000 and 16000 Hz.
// Source and target rates matching is a passthrough: the samples are
// copied verbatim. Anything else goes through the windowed-sinc
// resampler. Failures are typed sentinels (ErrUnsupportedRate,
// ErrShortBuffer, ErrOutputSize) and are terminal per request.
//
// Example:
//
//	res, err := convert.Convert(convert.Request{
//	    Source:     audio.NewBuffer(samples, 22050),
//	    TargetRate: audio.Rate8k,
//	})
package convert
