// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for packet-based audio decoders
package decode

// Decoder decodes one encoded audio packet into PCM int16 samples.
//
// Decoders are stateful (Opus carries previous-frame context) and are not
// safe for concurrent use; the playback engine confines a decoder to its
// worker goroutine once started.
type Decoder interface {
	// Decode decodes data into pcm and returns the number of samples
	// written (all channels interleaved). pcm is caller-owned scratch so
	// that steady-state decoding does not allocate.
	Decode(data []byte, pcm []int16) (int, error)

	// Close releases decoder resources.
	Close() error
}
