// ABOUTME: PCM audio encoder
// ABOUTME: Encodes normalized float samples to 16-bit little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct{}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}

	if format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	if format.Channels != 1 {
		return nil, fmt.Errorf("unsupported channel count: %d (supported: 1)", format.Channels)
	}

	return &PCMEncoder{}, nil
}

// Encode converts float samples to 16-bit PCM bytes, saturating
// out-of-range values
func (e *PCMEncoder) Encode(samples []float64) ([]byte, error) {
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		sample16 := audio.SampleFromFloat(sample)
		binary.LittleEndian.PutUint16(output[i*2:], uint16(sample16))
	}
	return output, nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
