//go:build portaudio

// ABOUTME: PortAudio sink implementation
// ABOUTME: Callback-driven playback fed from an internal sample queue
package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

// PortAudio sink implementation.
type PortAudio struct {
	stream *portaudio.Stream
	cfg    Config

	mu      sync.Mutex
	queue   []int16
	started bool
}

// NewPortAudio creates a new PortAudio sink.
func NewPortAudio() *PortAudio {
	return &PortAudio{}
}

// Configure sets the playback format.
func (p *PortAudio) Configure(cfg Config) error {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 || cfg.FramesPerPeriod <= 0 {
		return fmt.Errorf("invalid format: %dHz, %d channels, %d frames/period",
			cfg.SampleRate, cfg.Channels, cfg.FramesPerPeriod)
	}
	p.cfg = cfg
	return nil
}

// Start opens the default output stream.
func (p *PortAudio) Start() error {
	if p.stream != nil {
		p.mu.Lock()
		p.started = true
		p.mu.Unlock()
		return p.stream.Start()
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, p.cfg.Channels, float64(p.cfg.SampleRate),
		p.cfg.FramesPerPeriod, p.callback)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open stream: %w", err)
	}

	p.stream = stream
	p.mu.Lock()
	p.started = true
	p.mu.Unlock()

	return stream.Start()
}

// callback feeds the device from the queue, zero-filling on underrun.
func (p *PortAudio) callback(out []int16) {
	p.mu.Lock()
	n := copy(out, p.queue)
	p.queue = p.queue[n:]
	p.mu.Unlock()

	for i := n; i < len(out); i++ {
		out[i] = 0
	}
}

// Write queues samples, blocking while the queue holds more than one period.
func (p *PortAudio) Write(pcm []int16) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return fmt.Errorf("sink not started")
	}
	p.queue = append(p.queue, pcm...)
	p.mu.Unlock()

	// Throttle the writer to roughly one period so the caller observes
	// the bounded-write contract.
	period := time.Duration(p.cfg.FramesPerPeriod) * time.Second / time.Duration(p.cfg.SampleRate)
	deadline := time.Now().Add(period)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		pending := len(p.queue)
		p.mu.Unlock()
		if pending <= p.cfg.FramesPerPeriod*p.cfg.Channels {
			break
		}
		time.Sleep(time.Millisecond)
	}

	return nil
}

// Drained reports whether the queue has been played out.
func (p *PortAudio) Drained() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) == 0
}

// Stop halts playback.
func (p *PortAudio) Stop() error {
	p.mu.Lock()
	p.started = false
	p.mu.Unlock()

	if p.stream != nil {
		return p.stream.Stop()
	}
	return nil
}

// Close releases resources.
func (p *PortAudio) Close() error {
	if p.stream != nil {
		if err := p.stream.Close(); err != nil {
			return err
		}
		p.stream = nil
	}
	return portaudio.Terminate()
}
