// ABOUTME: Oto-based audio output implementation
// ABOUTME: Handles mono PCM16 playback through a pipe-fed persistent player
package output

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/speakbridge/speakbridge-go/pkg/audio"
)

// Oto output implementation using the oto library
type Oto struct {
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	sampleRate int
	ready      bool
}

// NewOto creates a new Oto output
func NewOto() Output {
	return &Oto{}
}

// Open initializes the output device
func (o *Oto) Open(sampleRate int) error {
	// oto allows one context per process; reuse when the rate matches
	if o.otoCtx != nil {
		if o.sampleRate != sampleRate {
			return fmt.Errorf("output already open at %d Hz, cannot reopen at %d Hz", o.sampleRate, sampleRate)
		}
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.sampleRate = sampleRate

	// Pipe feeds a persistent player so consecutive writes play gaplessly
	o.pipeReader, o.pipeWriter = io.Pipe()
	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	o.player.Play()

	o.ready = true
	return nil
}

// Write queues audio samples for playback (blocks until written)
func (o *Oto) Write(samples []float64) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}

	data := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(audio.SampleFromFloat(sample)))
	}

	if _, err := o.pipeWriter.Write(data); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}
	return nil
}

// Drain blocks until all queued audio has played
func (o *Oto) Drain() error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}

	// Closing the writer lets the player run the pipe dry
	o.pipeWriter.Close()
	for o.player.IsPlaying() && o.player.BufferedSize() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// Close releases output resources
func (o *Oto) Close() error {
	if o.pipeWriter != nil {
		o.pipeWriter.Close()
		o.pipeWriter = nil
	}
	if o.player != nil {
		o.player.Close()
		o.player = nil
	}
	if o.pipeReader != nil {
		o.pipeReader.Close()
		o.pipeReader = nil
	}
	if o.otoCtx != nil {
		o.otoCtx.Suspend()
	}
	o.ready = false
	return nil
}
