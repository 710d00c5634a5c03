// ABOUTME: Opus audio decoder
// ABOUTME: Decodes Opus packets to int16 samples
package decode

import (
	"fmt"

	"gopkg.in/hraban/opus.v2"
)

// MaxFrameSamples is the largest Opus frame per channel (120ms at 48kHz).
const MaxFrameSamples = 5760

// OpusDecoder decodes Opus packets.
type OpusDecoder struct {
	decoder  *opus.Decoder
	channels int
}

// NewOpus creates a new Opus decoder.
func NewOpus(sampleRate, channels int) (*OpusDecoder, error) {
	dec, err := opus.NewDecoder(sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus decoder: %w", err)
	}

	return &OpusDecoder{
		decoder:  dec,
		channels: channels,
	}, nil
}

// Decode converts one Opus packet to int16 samples.
func (d *OpusDecoder) Decode(data []byte, pcm []int16) (int, error) {
	n, err := d.decoder.Decode(data, pcm)
	if err != nil {
		return 0, fmt.Errorf("opus decode failed: %w", err)
	}

	// n is per channel; the interface reports interleaved samples
	return n * d.channels, nil
}

// Close releases decoder resources.
func (d *OpusDecoder) Close() error {
	return nil
}
