// ABOUTME: PCM passthrough decoder
// ABOUTME: Converts raw little-endian int16 packets to samples
package decode

import (
	"fmt"

	"github.com/linx-audio/linx-go/pkg/audio"
)

// PCMDecoder passes raw 16-bit little-endian PCM packets through unchanged.
type PCMDecoder struct{}

// NewPCM creates a passthrough decoder for raw PCM packets.
func NewPCM() *PCMDecoder {
	return &PCMDecoder{}
}

// Decode converts little-endian PCM bytes to int16 samples.
func (d *PCMDecoder) Decode(data []byte, pcm []int16) (int, error) {
	if len(data)%audio.BytesPerSample != 0 {
		return 0, fmt.Errorf("pcm packet has odd length %d", len(data))
	}

	samples := len(data) / audio.BytesPerSample
	if samples > len(pcm) {
		return 0, fmt.Errorf("pcm scratch too small: need %d samples, have %d", samples, len(pcm))
	}

	for i := 0; i < samples; i++ {
		pcm[i] = int16(uint16(data[i*2]) | uint16(data[i*2+1])<<8)
	}

	return samples, nil
}

// Close releases decoder resources.
func (d *PCMDecoder) Close() error {
	return nil
}
