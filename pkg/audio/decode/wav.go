// ABOUTME: RIFF/WAVE container reader
// ABOUTME: Parses PCM16 mono WAV streams into float sample buffers
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
)

const wavFormatPCM = 1

// streamingDataSize marks a data chunk whose length was unknown at
// write time (eSpeak's --stdout output uses it)
const streamingDataSize = 0xFFFFFFFF

var (
	// ErrNotWAV reports a stream without a RIFF/WAVE signature
	ErrNotWAV = errors.New("not a RIFF/WAVE stream")

	// ErrUnsupportedWAV reports a WAV whose encoding the pipeline
	// cannot ingest (only PCM16 mono is accepted)
	ErrUnsupportedWAV = errors.New("unsupported WAV encoding")
)

// ReadWAV parses a PCM16 mono WAV stream into a normalized float
// buffer tagged with the container's sample rate
func ReadWAV(r io.Reader) (audio.Buffer, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return audio.Buffer{}, fmt.Errorf("wav header read failed: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return audio.Buffer{}, ErrNotWAV
	}

	var (
		sampleRate int
		haveFmt    bool
	)

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return audio.Buffer{}, fmt.Errorf("%w: no data chunk", ErrNotWAV)
			}
			return audio.Buffer{}, fmt.Errorf("wav chunk read failed: %w", err)
		}

		id := string(chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return audio.Buffer{}, fmt.Errorf("%w: fmt chunk too small", ErrNotWAV)
			}
			fmtChunk := make([]byte, size)
			if _, err := io.ReadFull(r, fmtChunk); err != nil {
				return audio.Buffer{}, fmt.Errorf("wav fmt read failed: %w", err)
			}

			format := binary.LittleEndian.Uint16(fmtChunk[0:2])
			channels := binary.LittleEndian.Uint16(fmtChunk[2:4])
			rate := binary.LittleEndian.Uint32(fmtChunk[4:8])
			bits := binary.LittleEndian.Uint16(fmtChunk[14:16])

			if format != wavFormatPCM || bits != 16 {
				return audio.Buffer{}, fmt.Errorf("%w: format %d, %d bits", ErrUnsupportedWAV, format, bits)
			}
			if channels != 1 {
				return audio.Buffer{}, fmt.Errorf("%w: %d channels", ErrUnsupportedWAV, channels)
			}

			sampleRate = int(rate)
			haveFmt = true

		case "data":
			if !haveFmt {
				return audio.Buffer{}, fmt.Errorf("%w: data chunk before fmt", ErrNotWAV)
			}

			var data []byte
			var err error
			if size == streamingDataSize {
				// Unknown length: consume the remainder of the stream
				data, err = io.ReadAll(r)
			} else {
				data = make([]byte, size)
				_, err = io.ReadFull(r, data)
			}
			if err != nil {
				return audio.Buffer{}, fmt.Errorf("wav data read failed: %w", err)
			}

			decoder, err := NewPCM(audio.Format{Codec: "pcm", SampleRate: sampleRate, Channels: 1, BitDepth: 16})
			if err != nil {
				return audio.Buffer{}, err
			}
			defer decoder.Close()

			samples, err := decoder.Decode(data)
			if err != nil {
				return audio.Buffer{}, err
			}
			return audio.NewBuffer(samples, sampleRate), nil

		default:
			// Skip chunks the pipeline does not care about (LIST, fact, ...)
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return audio.Buffer{}, fmt.Errorf("wav chunk skip failed: %w", err)
			}
		}
	}
}
