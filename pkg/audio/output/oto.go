// ABOUTME: Oto-based audio sink implementation
// ABOUTME: Streams PCM through a persistent pipe-fed oto player
package output

import (
	"fmt"
	"io"
	"log"

	"github.com/ebitengine/oto/v3"
	"github.com/linx-audio/linx-go/pkg/audio"
)

// Oto sink implementation using the oto library.
type Oto struct {
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	cfg        Config
	scratch    []byte
	configured bool
	ready      bool
}

// NewOto creates a new oto sink.
func NewOto() *Oto {
	return &Oto{}
}

// Configure sets the playback format.
func (o *Oto) Configure(cfg Config) error {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 {
		return fmt.Errorf("invalid format: %dHz, %d channels", cfg.SampleRate, cfg.Channels)
	}

	// oto allows a single context per process and no reinitialization
	if o.otoCtx != nil && (o.cfg.SampleRate != cfg.SampleRate || o.cfg.Channels != cfg.Channels) {
		return fmt.Errorf("oto context already open at %dHz/%dch, cannot reconfigure to %dHz/%dch",
			o.cfg.SampleRate, o.cfg.Channels, cfg.SampleRate, cfg.Channels)
	}

	o.cfg = cfg

	// Presize the conversion scratch so steady-state writes do not
	// allocate; Write still grows it for oversized frames.
	if cfg.BufferBytes > 0 && cap(o.scratch) < cfg.BufferBytes {
		o.scratch = make([]byte, cfg.BufferBytes)
	}

	o.configured = true
	return nil
}

// Start opens the device and begins playback.
func (o *Oto) Start() error {
	if !o.configured {
		return fmt.Errorf("sink not configured")
	}

	if o.otoCtx != nil {
		// Restart after Stop: resume the persistent player
		if o.player != nil {
			o.player.Play()
		}
		o.ready = true
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   o.cfg.SampleRate,
		ChannelCount: o.cfg.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx

	// Persistent player fed through a pipe so writes block until the
	// device consumes them, giving the bounded-write contract.
	o.pipeReader, o.pipeWriter = io.Pipe()
	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	o.player.Play()

	o.ready = true

	log.Printf("Audio sink initialized: %dHz, %d channels (oto)", o.cfg.SampleRate, o.cfg.Channels)

	return nil
}

// Write outputs samples, blocking until the player accepts them.
func (o *Oto) Write(pcm []int16) error {
	if !o.ready {
		return fmt.Errorf("sink not started")
	}

	need := len(pcm) * audio.BytesPerSample
	if cap(o.scratch) < need {
		o.scratch = make([]byte, need)
	}
	buf := o.scratch[:need]
	audio.PutInt16(buf, pcm)

	if _, err := o.pipeWriter.Write(buf); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}

	return nil
}

// Drained reports whether all written audio has been played out.
func (o *Oto) Drained() bool {
	if o.player == nil {
		return true
	}
	return o.player.BufferedSize() == 0
}

// Stop pauses playback.
func (o *Oto) Stop() error {
	if o.player != nil && o.player.IsPlaying() {
		o.player.Pause()
	}
	o.ready = false
	return nil
}

// Close releases output resources.
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
		o.ready = false
	}
	return nil
}
