// ABOUTME: RIFF/WAVE container packaging
// ABOUTME: Writes PCM16 little-endian mono WAV for telephony playback
package encode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/speakbridge/speakbridge-go/pkg/audio"
)

const (
	wavFormatPCM    = 1
	wavHeaderSize   = 44
	wavFmtChunkSize = 16
)

// WriteWAV packages samples as a PCM16 mono RIFF/WAVE stream at the
// buffer's sample rate
func WriteWAV(w io.Writer, buf audio.Buffer) error {
	format := audio.TelephonyFormat(buf.SampleRate)

	encoder, err := NewPCM(format)
	if err != nil {
		return err
	}
	defer encoder.Close()

	if buf.Frames < 0 || buf.Frames > len(buf.Samples) {
		return fmt.Errorf("malformed buffer: declared %d frames, have %d samples", buf.Frames, len(buf.Samples))
	}

	data, err := encoder.Encode(buf.Samples[:buf.Frames])
	if err != nil {
		return err
	}

	bytesPerFrame := format.Channels * format.BitDepth / 8
	byteRate := format.SampleRate * bytesPerFrame
	dataSize := uint32(len(data))

	// RIFF header
	if _, err := w.Write([]byte("RIFF")); err != nil {
		return fmt.Errorf("wav write failed: %w", err)
	}
	binary.Write(w, binary.LittleEndian, uint32(wavHeaderSize-8)+dataSize)
	w.Write([]byte("WAVE"))

	// fmt chunk
	w.Write([]byte("fmt "))
	binary.Write(w, binary.LittleEndian, uint32(wavFmtChunkSize))
	binary.Write(w, binary.LittleEndian, uint16(wavFormatPCM))
	binary.Write(w, binary.LittleEndian, uint16(format.Channels))
	binary.Write(w, binary.LittleEndian, uint32(format.SampleRate))
	binary.Write(w, binary.LittleEndian, uint32(byteRate))
	binary.Write(w, binary.LittleEndian, uint16(bytesPerFrame))
	binary.Write(w, binary.LittleEndian, uint16(format.BitDepth))

	// data chunk
	w.Write([]byte("data"))
	if err := binary.Write(w, binary.LittleEndian, dataSize); err != nil {
		return fmt.Errorf("wav write failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("wav write failed: %w", err)
	}

	return nil
}

// WAV packages samples as a PCM16 mono WAV byte slice
func WAV(buf audio.Buffer) ([]byte, error) {
	var b bytes.Buffer
	b.Grow(wavHeaderSize + buf.Frames*2)
	if err := WriteWAV(&b, buf); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
