// ABOUTME: Audio decoder package for packet streams
// ABOUTME: Provides Decoder interface and Opus/PCM implementations
// Package decode provides packet-based audio decoders.
//
// All decoders implement the Decoder interface: one encoded packet in,
// interleaved int16 PCM out, written into caller-provided scratch.
//
// Example:
//
//	decoder, err := decode.NewOpus(16000, 1)
//	pcm := make([]int16, 5760)
//	n, err := decoder.Decode(packet, pcm)
package decode
