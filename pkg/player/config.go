// ABOUTME: Player configuration
// ABOUTME: Validated config snapshot with a strict JSON loader
package player

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultBufferCapacity is the ring capacity used when none is configured.
const DefaultBufferCapacity = 64 * 1024

// Config is the playback configuration. It is immutable after Init.
type Config struct {
	// SampleRate is the PCM rate in Hz delivered by the decoder.
	SampleRate int `json:"sample_rate"`

	// Channels is the interleaved channel count.
	Channels int `json:"channels"`

	// FrameSize is samples per channel in one decoded frame.
	FrameSize int `json:"frame_size"`

	// BufferCapacity is the encoded ring buffer size in bytes.
	BufferCapacity int `json:"buffer_capacity"`

	// DecodeErrorLimit escalates to the error state after this many
	// consecutive decode failures. Zero disables escalation.
	DecodeErrorLimit int `json:"decode_error_limit,omitempty"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParam, c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("%w: channels %d", ErrInvalidParam, c.Channels)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("%w: frame size %d", ErrInvalidParam, c.FrameSize)
	}
	if c.BufferCapacity <= 0 {
		return fmt.Errorf("%w: buffer capacity %d", ErrInvalidParam, c.BufferCapacity)
	}
	if c.DecodeErrorLimit < 0 {
		return fmt.Errorf("%w: decode error limit %d", ErrInvalidParam, c.DecodeErrorLimit)
	}
	return nil
}

// ParseConfig decodes a JSON configuration, rejecting unknown fields.
func ParseConfig(data []byte) (Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
