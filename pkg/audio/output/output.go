// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for local audio playback backends
package output

// Output represents an audio output device
type Output interface {
	// Open initializes the output device for mono PCM16 playback
	Open(sampleRate int) error

	// Write queues audio samples for playback (blocks until written)
	Write(samples []float64) error

	// Drain blocks until all queued audio has played
	Drain() error

	// Close releases output resources
	Close() error
}
