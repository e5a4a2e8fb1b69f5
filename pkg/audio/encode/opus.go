// ABOUTME: Opus audio encoder
// ABOUTME: Encodes normalized float samples to Opus packets for VoIP transport
package encode

import (
	"fmt"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
	"gopkg.in/hraban/opus.v2"
)

// maxOpusPacket is the largest packet Opus can emit
const maxOpusPacket = 4000

// OpusEncoder encodes Opus audio
type OpusEncoder struct {
	encoder    *opus.Encoder
	sampleRate int
	frameSize  int
}

// NewOpus creates a new Opus encoder. Both telephony rates are native
// Opus rates (narrowband and wideband).
func NewOpus(format audio.Format) (Encoder, error) {
	if format.Codec != "opus" {
		return nil, fmt.Errorf("invalid codec for Opus encoder: %s", format.Codec)
	}

	if format.SampleRate != audio.Rate8k && format.SampleRate != audio.Rate16k {
		return nil, fmt.Errorf("unsupported opus sample rate: %d (supported: 8000, 16000)", format.SampleRate)
	}

	if format.Channels != 1 {
		return nil, fmt.Errorf("unsupported channel count: %d (supported: 1)", format.Channels)
	}

	encoder, err := opus.NewEncoder(format.SampleRate, format.Channels, opus.AppVoIP)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus encoder: %w", err)
	}

	return &OpusEncoder{
		encoder:    encoder,
		sampleRate: format.SampleRate,
		frameSize:  format.SampleRate / 50, // 20ms frame
	}, nil
}

// FrameSize returns the number of samples per Opus frame (20ms)
func (e *OpusEncoder) FrameSize() int {
	return e.frameSize
}

// Encode converts one 20ms frame of float samples to an Opus packet.
// Short final frames are zero-padded to the frame size.
func (e *OpusEncoder) Encode(samples []float64) ([]byte, error) {
	if len(samples) > e.frameSize {
		return nil, fmt.Errorf("opus frame too large: %d samples (frame size %d)", len(samples), e.frameSize)
	}

	pcm := make([]int16, e.frameSize)
	for i, sample := range samples {
		pcm[i] = audio.SampleFromFloat(sample)
	}

	data := make([]byte, maxOpusPacket)
	n, err := e.encoder.Encode(pcm, data)
	if err != nil {
		return nil, fmt.Errorf("opus encode error: %w", err)
	}

	return data[:n], nil
}

// Close releases resources
func (e *OpusEncoder) Close() error {
	return nil
}
