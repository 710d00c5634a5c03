// ABOUTME: Audio sink interface definition
// ABOUTME: Common interface for audio playback backends
package output

// Config describes the playback format for a sink.
type Config struct {
	SampleRate      int
	Channels        int
	FramesPerPeriod int // samples per channel in one device period
	BufferBytes     int // device-side buffer size
}

// Sink plays interleaved int16 PCM to an output device.
//
// Configure and Start are called once from the thread that sets the player
// up; Write and Drained are called only from the playback worker.
type Sink interface {
	// Configure sets the playback format. Must be called before Start.
	Configure(cfg Config) error

	// Start opens the device for playback.
	Start() error

	// Write outputs samples, blocking at most about one device period.
	Write(pcm []int16) error

	// Drained reports whether the device has played out everything
	// previously written.
	Drained() bool

	// Stop halts playback. Safe to call more than once.
	Stop() error

	// Close releases output resources.
	Close() error
}
