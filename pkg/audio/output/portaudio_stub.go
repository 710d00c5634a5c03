//go:build !portaudio

// ABOUTME: PortAudio stub when library not available
// ABOUTME: Provides compile-time placeholder when PortAudio not installed
package output

import (
	"fmt"
)

// PortAudio sink implementation (stub).
type PortAudio struct{}

// NewPortAudio creates a new PortAudio sink.
func NewPortAudio() *PortAudio {
	return &PortAudio{}
}

// Configure sets the playback format.
func (p *PortAudio) Configure(cfg Config) error {
	return fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}

// Start opens the device.
func (p *PortAudio) Start() error {
	return fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}

// Write outputs samples.
func (p *PortAudio) Write(pcm []int16) error {
	return fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}

// Drained reports whether playback has finished.
func (p *PortAudio) Drained() bool {
	return true
}

// Stop halts playback.
func (p *PortAudio) Stop() error {
	return nil
}

// Close releases resources.
func (p *PortAudio) Close() error {
	return nil
}
