// ABOUTME: PCM audio decoder
// ABOUTME: Decodes 16-bit little-endian PCM bytes to normalized float samples
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
)

// PCMDecoder decodes PCM audio
type PCMDecoder struct {
	bitDepth int
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (Decoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM decoder: %s", format.Codec)
	}

	if format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	return &PCMDecoder{bitDepth: format.BitDepth}, nil
}

// Decode converts PCM16LE bytes to normalized float samples. A trailing
// odd byte is rejected as a truncated sample.
func (d *PCMDecoder) Decode(data []byte) ([]float64, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("truncated PCM16 stream: %d bytes", len(data))
	}

	samples := make([]float64, len(data)/2)
	for i := range samples {
		sample16 := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = audio.SampleToFloat(sample16)
	}
	return samples, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}
