// ABOUTME: WebSocket playback sink streaming paced audio frames to a host
// ABOUTME: Handles codec negotiation, 20ms pacing and DTMF interrupts
package stream

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/speakbridge/speakbridge-go/pkg/audio"
	"github.com/speakbridge/speakbridge-go/pkg/audio/encode"
)

const (
	// FrameDurationMs is the audio frame length sent per message
	FrameDurationMs = 20

	// CodecPCM streams raw PCM16 little-endian frames
	CodecPCM = "pcm"
	// CodecOpus streams Opus packets
	CodecOpus = "opus"
)

// streamStart announces an utterance to the host
type streamStart struct {
	Type       string `json:"type"`
	Codec      string `json:"codec"`
	SampleRate int    `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// streamEnd closes an utterance
type streamEnd struct {
	Type        string `json:"type"`
	Interrupted bool   `json:"interrupted"`
}

// Sink streams finished audio to a call-processing host over an
// established WebSocket connection. Binary messages carry one 20ms
// frame each; single-character text messages from the host are DTMF
// digits and interrupt playback when they match the interrupt set.
type Sink struct {
	conn   *websocket.Conn
	codec  string
	digits chan rune
	closed chan struct{}
}

// NewSink wraps conn as a playback sink using the given codec
func NewSink(conn *websocket.Conn, codec string) (*Sink, error) {
	if codec != CodecPCM && codec != CodecOpus {
		return nil, fmt.Errorf("unsupported stream codec: %s", codec)
	}

	s := &Sink{
		conn:   conn,
		codec:  codec,
		digits: make(chan rune, 8),
		closed: make(chan struct{}),
	}
	go s.readPump()
	return s, nil
}

// readPump forwards DTMF digits from the host until the connection dies
func (s *Sink) readPump() {
	defer close(s.closed)
	for {
		msgType, payload, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage || len(payload) != 1 {
			continue
		}
		select {
		case s.digits <- rune(payload[0]):
		default:
			log.Printf("Dropping DTMF digit %q (backlog full)", payload[0])
		}
	}
}

// Play streams the samples as paced frames. It returns the digit that
// interrupted playback, or 0 when the utterance played to the end.
func (s *Sink) Play(ctx context.Context, format audio.Format, samples []float64, interrupt string) (rune, error) {
	encoder, err := s.newEncoder(format)
	if err != nil {
		return 0, err
	}
	defer encoder.Close()

	start := streamStart{
		Type:       "stream/start",
		Codec:      s.codec,
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
	}
	if err := s.conn.WriteJSON(start); err != nil {
		return 0, fmt.Errorf("stream start failed: %w", err)
	}

	frame := format.SampleRate * FrameDurationMs / 1000
	ticker := time.NewTicker(FrameDurationMs * time.Millisecond)
	defer ticker.Stop()

	for off := 0; off < len(samples); off += frame {
	wait:
		for {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-s.closed:
				return 0, fmt.Errorf("host connection closed during playback")
			case digit := <-s.digits:
				if strings.ContainsRune(interrupt, digit) {
					if err := s.conn.WriteJSON(streamEnd{Type: "stream/end", Interrupted: true}); err != nil {
						return digit, fmt.Errorf("stream end failed: %w", err)
					}
					return digit, nil
				}
				// Digit outside the interrupt set: keep playing
			case <-ticker.C:
				break wait
			}
		}

		end := off + frame
		if end > len(samples) {
			end = len(samples)
		}

		data, err := encoder.Encode(samples[off:end])
		if err != nil {
			return 0, fmt.Errorf("frame encode failed: %w", err)
		}
		if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			return 0, fmt.Errorf("frame write failed: %w", err)
		}
	}

	if err := s.conn.WriteJSON(streamEnd{Type: "stream/end", Interrupted: false}); err != nil {
		return 0, fmt.Errorf("stream end failed: %w", err)
	}
	return 0, nil
}

// Close shuts the underlying connection
func (s *Sink) Close() error {
	return s.conn.Close()
}

func (s *Sink) newEncoder(format audio.Format) (encode.Encoder, error) {
	switch s.codec {
	case CodecOpus:
		opusFormat := format
		opusFormat.Codec = "opus"
		return encode.NewOpus(opusFormat)
	default:
		return encode.NewPCM(format)
	}
}
