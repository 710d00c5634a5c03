// ABOUTME: Audio type definitions
// ABOUTME: Defines PCM formats and int16 sample conversion helpers
package audio

import "encoding/binary"

// Format describes a PCM stream configuration.
type Format struct {
	SampleRate int
	Channels   int
}

// BytesPerSample is the size of one PCM sample on the wire (signed 16-bit LE).
const BytesPerSample = 2

// BytesToInt16 converts little-endian PCM bytes to int16 samples.
// A trailing odd byte is ignored.
func BytesToInt16(data []byte) []int16 {
	samples := make([]int16, len(data)/BytesPerSample)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}

// Int16ToBytes converts int16 samples to little-endian PCM bytes.
func Int16ToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	PutInt16(out, samples)
	return out
}

// PutInt16 writes int16 samples into dst as little-endian PCM bytes.
// dst must have room for len(samples)*BytesPerSample bytes.
func PutInt16(dst []byte, samples []int16) {
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(sample))
	}
}
