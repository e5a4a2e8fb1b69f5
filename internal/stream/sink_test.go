// ABOUTME: Tests for the WebSocket playback sink
// ABOUTME: Tests frame pacing, start/end messages and DTMF interrupts
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/speakbridge/speakbridge-go/pkg/audio"
)

// newTestConn returns the two ends of a live WebSocket connection
func newTestConn(t *testing.T) (client, host *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	host = <-connCh
	t.Cleanup(func() { host.Close() })
	return client, host
}

type hostMsg struct {
	msgType int
	payload []byte
}

// collectUntilEnd reads host-side messages until stream/end arrives
func collectUntilEnd(host *websocket.Conn, msgs chan<- hostMsg) {
	for {
		msgType, payload, err := host.ReadMessage()
		if err != nil {
			close(msgs)
			return
		}
		msgs <- hostMsg{msgType, payload}
		if msgType == websocket.TextMessage && strings.Contains(string(payload), "stream/end") {
			close(msgs)
			return
		}
	}
}

func TestNewSinkBadCodec(t *testing.T) {
	client, _ := newTestConn(t)

	if _, err := NewSink(client, "mp3"); err == nil {
		t.Error("expected error for unsupported codec, got nil")
	}
}

func TestPlayStreamsFrames(t *testing.T) {
	client, host := newTestConn(t)
	sink, err := NewSink(client, CodecPCM)
	if err != nil {
		t.Fatalf("NewSink() failed: %v", err)
	}

	msgs := make(chan hostMsg, 16)
	go collectUntilEnd(host, msgs)

	// 100ms at 8 kHz: five 20ms frames
	samples := make([]float64, 800)
	digit, err := sink.Play(context.Background(), audio.TelephonyFormat(8000), samples, "")
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if digit != 0 {
		t.Errorf("digit = %q, want 0", digit)
	}

	var received []hostMsg
	for m := range msgs {
		received = append(received, m)
	}

	if len(received) != 7 {
		t.Fatalf("host received %d messages, want 7 (start + 5 frames + end)", len(received))
	}

	var start streamStart
	if err := json.Unmarshal(received[0].payload, &start); err != nil {
		t.Fatalf("unmarshal stream start: %v", err)
	}
	if start.Type != "stream/start" || start.Codec != "pcm" || start.SampleRate != 8000 || start.Channels != 1 {
		t.Errorf("unexpected stream start: %+v", start)
	}

	for i := 1; i <= 5; i++ {
		if received[i].msgType != websocket.BinaryMessage {
			t.Errorf("message %d: type %d, want binary", i, received[i].msgType)
		}
		if len(received[i].payload) != 320 { // 160 samples * 2 bytes
			t.Errorf("frame %d: %d bytes, want 320", i, len(received[i].payload))
		}
	}

	var end streamEnd
	if err := json.Unmarshal(received[6].payload, &end); err != nil {
		t.Fatalf("unmarshal stream end: %v", err)
	}
	if end.Type != "stream/end" || end.Interrupted {
		t.Errorf("unexpected stream end: %+v", end)
	}
}

func TestPlayInterrupted(t *testing.T) {
	client, host := newTestConn(t)
	sink, err := NewSink(client, CodecPCM)
	if err != nil {
		t.Fatalf("NewSink() failed: %v", err)
	}

	interrupted := make(chan bool, 1)
	go func() {
		sentDigit := false
		for {
			msgType, payload, err := host.ReadMessage()
			if err != nil {
				return
			}
			if msgType == websocket.BinaryMessage && !sentDigit {
				// First frame arrived: press a digit
				host.WriteMessage(websocket.TextMessage, []byte("5"))
				sentDigit = true
			}
			if msgType == websocket.TextMessage && strings.Contains(string(payload), "stream/end") {
				var end streamEnd
				json.Unmarshal(payload, &end)
				interrupted <- end.Interrupted
				return
			}
		}
	}()

	// 2 seconds of audio: the interrupt lands long before completion
	samples := make([]float64, 16000)
	digit, err := sink.Play(context.Background(), audio.TelephonyFormat(8000), samples, "45")
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if digit != '5' {
		t.Errorf("digit = %q, want '5'", digit)
	}
	if !<-interrupted {
		t.Error("stream end not marked interrupted")
	}
}

func TestPlayIgnoresNonMatchingDigit(t *testing.T) {
	client, host := newTestConn(t)
	sink, err := NewSink(client, CodecPCM)
	if err != nil {
		t.Fatalf("NewSink() failed: %v", err)
	}

	go func() {
		// Press a digit outside the interrupt set immediately
		host.WriteMessage(websocket.TextMessage, []byte("9"))
		for {
			if _, _, err := host.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// 60ms at 8 kHz: three frames
	samples := make([]float64, 480)
	digit, err := sink.Play(context.Background(), audio.TelephonyFormat(8000), samples, "12")
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if digit != 0 {
		t.Errorf("digit = %q, want 0 (non-matching digit must not interrupt)", digit)
	}
}

func TestPlayCanceledContext(t *testing.T) {
	client, host := newTestConn(t)
	sink, err := NewSink(client, CodecPCM)
	if err != nil {
		t.Fatalf("NewSink() failed: %v", err)
	}

	go func() {
		for {
			if _, _, err := host.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sink.Play(ctx, audio.TelephonyFormat(8000), make([]float64, 8000), "")
	if err == nil {
		t.Error("expected context error, got nil")
	}
}
