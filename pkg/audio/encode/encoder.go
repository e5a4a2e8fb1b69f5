// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all audio encoders
package encode

// Encoder encodes normalized float PCM samples to wire format
type Encoder interface {
	// Encode converts PCM samples to encoded audio data
	Encode(samples []float64) ([]byte, error)

	// Close releases encoder resources
	Close() error
}
