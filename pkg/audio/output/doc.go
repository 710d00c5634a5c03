// ABOUTME: Audio output package with multiple backends
// ABOUTME: Provides Sink interface plus oto, portaudio and stub backends
// Package output provides audio playback backends.
//
// The default backend is oto (cross-platform). PortAudio is available
// behind the "portaudio" build tag. The stub backend discards audio and
// is useful for tests and headless runs.
package output
