// ABOUTME: Audio sink interface tests
// ABOUTME: Verifies Sink implementations and stub behavior
package output

import (
	"testing"
)

func TestOtoImplementsSink(t *testing.T) {
	var _ Sink = (*Oto)(nil)
}

func TestPortAudioImplementsSink(t *testing.T) {
	var _ Sink = (*PortAudio)(nil)
}

func TestStubImplementsSink(t *testing.T) {
	var _ Sink = (*Stub)(nil)
}

func TestNewOto(t *testing.T) {
	sink := NewOto()
	if sink == nil {
		t.Fatal("NewOto returned nil")
	}
}

func TestNewPortAudio(t *testing.T) {
	sink := NewPortAudio()
	if sink == nil {
		t.Fatal("NewPortAudio returned nil")
	}
}

func TestOtoConfigure_InvalidFormat(t *testing.T) {
	sink := NewOto()

	err := sink.Configure(Config{SampleRate: 0, Channels: 2})
	if err == nil {
		t.Error("expected error for zero sample rate, got nil")
	}
}

func TestOtoConfigure_PresizesScratch(t *testing.T) {
	sink := NewOto()

	cfg := Config{SampleRate: 16000, Channels: 1, FramesPerPeriod: 320, BufferBytes: 2560}
	if err := sink.Configure(cfg); err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	if cap(sink.scratch) < cfg.BufferBytes {
		t.Errorf("expected scratch capacity >= %d, got %d", cfg.BufferBytes, cap(sink.scratch))
	}
}

func TestOtoStart_Unconfigured(t *testing.T) {
	sink := NewOto()

	if err := sink.Start(); err == nil {
		t.Error("expected error starting unconfigured sink, got nil")
	}
}

func TestStubLifecycle(t *testing.T) {
	sink := NewStub()

	cfg := Config{SampleRate: 16000, Channels: 1, FramesPerPeriod: 320, BufferBytes: 2560}
	if err := sink.Configure(cfg); err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	if err := sink.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	pcm := make([]int16, 320)
	if err := sink.Write(pcm); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if sink.SamplesWritten() != 320 {
		t.Errorf("expected 320 samples written, got %d", sink.SamplesWritten())
	}

	if sink.Writes() != 1 {
		t.Errorf("expected 1 write, got %d", sink.Writes())
	}

	if !sink.Drained() {
		t.Error("stub should always report drained")
	}

	if err := sink.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	// Stop is idempotent
	if err := sink.Stop(); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}

	if err := sink.Write(pcm); err == nil {
		t.Error("expected error writing to stopped sink, got nil")
	}
}

func TestStubStart_Unconfigured(t *testing.T) {
	sink := NewStub()

	if err := sink.Start(); err == nil {
		t.Error("expected error starting unconfigured stub, got nil")
	}
}

func TestStubConfigure_InvalidFormat(t *testing.T) {
	sink := NewStub()

	if err := sink.Configure(Config{SampleRate: 16000, Channels: 0}); err == nil {
		t.Error("expected error for zero channels, got nil")
	}
}
