// ABOUTME: Silent stub sink for tests and headless runs
// ABOUTME: Accepts and discards PCM while tracking totals
package output

import (
	"fmt"
	"sync"
	"time"
)

// Stub is a sink that discards audio. With Realtime set it sleeps for the
// duration of each write so playback paces like a real device.
type Stub struct {
	Realtime bool

	mu         sync.Mutex
	cfg        Config
	configured bool
	started    bool
	samples    int64
	writes     int64
}

// NewStub creates a silent sink.
func NewStub() *Stub {
	return &Stub{}
}

// Configure sets the playback format.
func (s *Stub) Configure(cfg Config) error {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 {
		return fmt.Errorf("invalid format: %dHz, %d channels", cfg.SampleRate, cfg.Channels)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.configured = true
	return nil
}

// Start marks the sink ready.
func (s *Stub) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured {
		return fmt.Errorf("sink not configured")
	}
	s.started = true
	return nil
}

// Write discards samples, optionally pacing at line rate.
func (s *Stub) Write(pcm []int16) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return fmt.Errorf("sink not started")
	}
	s.samples += int64(len(pcm))
	s.writes++
	cfg := s.cfg
	s.mu.Unlock()

	if s.Realtime && cfg.SampleRate > 0 && cfg.Channels > 0 {
		frames := len(pcm) / cfg.Channels
		time.Sleep(time.Duration(frames) * time.Second / time.Duration(cfg.SampleRate))
	}

	return nil
}

// Drained always reports true; discarded audio plays out instantly.
func (s *Stub) Drained() bool {
	return true
}

// Stop halts playback.
func (s *Stub) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
	return nil
}

// Close releases resources.
func (s *Stub) Close() error {
	return s.Stop()
}

// SamplesWritten returns the total samples accepted.
func (s *Stub) SamplesWritten() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.samples
}

// Writes returns the number of Write calls accepted.
func (s *Stub) Writes() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
