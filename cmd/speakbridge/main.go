// ABOUTME: Entry point for the speakbridge CLI
// ABOUTME: Synthesizes text and plays it locally, writes a WAV or streams to hosts
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/speakbridge/speakbridge-go/internal/bridge"
	"github.com/speakbridge/speakbridge-go/internal/config"
	"github.com/speakbridge/speakbridge-go/internal/stream"
	"github.com/speakbridge/speakbridge-go/internal/synth"
	"github.com/speakbridge/speakbridge-go/pkg/audio/output"
)

var (
	text       = flag.String("text", "", "Text to synthesize")
	configPath = flag.String("config", config.DefaultFile, "Configuration file path")
	voice      = flag.String("voice", "", "Voice override (takes precedence over the configured voice)")
	rate       = flag.Int("rate", 0, "Target sample rate override (8000 or 16000)")
	outFile    = flag.String("out", "", "Write the result to this WAV file")
	play       = flag.Bool("play", false, "Play the result on the local audio device")
	listen     = flag.String("listen", "", "Serve the utterance to WebSocket hosts on this address (e.g. :8927)")
	codec      = flag.String("codec", stream.CodecPCM, "Stream codec: pcm or opus")
	interrupt  = flag.String("interrupt", "", "DTMF digits that stop streamed playback (\"any\" matches all)")
	espeakBin  = flag.String("espeak", synth.DefaultBinary, "Path to the espeak binary")
)

func main() {
	flag.Parse()

	if *text == "" {
		log.Fatal("speakbridge requires -text")
	}
	if *outFile == "" && !*play && *listen == "" {
		log.Fatal("specify -out <file.wav>, -play or -listen <addr>")
	}

	cfg, err := config.Load(*configPath)
	if errors.Is(err, config.ErrNotFound) {
		log.Printf("No configuration file %s, using default settings", *configPath)
	} else if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *rate != 0 {
		cfg.SampleRate = *rate
	}

	engine := synth.NewESpeak(*espeakBin)
	defer engine.Close()

	b := bridge.New(cfg, engine)
	req := bridge.Request{Text: *text, Voice: *voice, Interrupt: *interrupt}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *outFile != "" {
		if _, err := b.Say(ctx, req, &bridge.FileSink{Path: *outFile}); err != nil {
			log.Fatalf("Synthesis failed: %v", err)
		}
		log.Printf("Wrote %s", *outFile)
	}

	if *play {
		out := output.NewOto()
		defer out.Close()
		if _, err := b.Say(ctx, req, &bridge.OutputSink{Output: out}); err != nil {
			log.Fatalf("Playback failed: %v", err)
		}
	}

	if *listen != "" {
		serve(ctx, b, req)
	}
}

// serve speaks the utterance to every host that connects
func serve(ctx context.Context, b *bridge.Bridge, req bridge.Request) {
	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("/speak", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Upgrade failed: %v", err)
			return
		}

		sink, err := stream.NewSink(conn, *codec)
		if err != nil {
			log.Printf("Sink setup failed: %v", err)
			conn.Close()
			return
		}
		defer sink.Close()

		digit, err := b.Say(r.Context(), req, sink)
		switch {
		case err != nil:
			log.Printf("Stream to %s failed: %v", r.RemoteAddr, err)
		case digit != 0:
			log.Printf("Playback to %s interrupted by %q", r.RemoteAddr, digit)
		default:
			log.Printf("Playback to %s complete", r.RemoteAddr)
		}
	})

	srv := &http.Server{Addr: *listen, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.Printf("Serving on ws://%s/speak (%s)", *listen, *codec)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
