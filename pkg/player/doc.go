// ABOUTME: Streaming playback engine package
// ABOUTME: Ring-buffered decode worker driving an audio sink
// Package player implements a real-time streaming playback engine.
//
// A Player accepts encoded audio packets from a producer, buffers them in a
// bounded byte ring, decodes them on a dedicated worker goroutine, and
// writes PCM to an audio sink. The producer side never blocks: Feed returns
// ErrBufferFull when the ring cannot accept a whole packet.
//
// Lifecycle: New -> Init -> Start -> {Pause/Resume, Feed...} -> Stop ->
// Close. Stop is synchronous; it returns after the worker has exited and
// the ring is cleared. A stopped player can be started again.
//
// Example:
//
//	dec, _ := decode.NewOpus(16000, 1)
//	p, _ := player.New(output.NewOto(), dec)
//	_ = p.Init(player.Config{
//	    SampleRate:     16000,
//	    Channels:       1,
//	    FrameSize:      320,
//	    BufferCapacity: 64 * 1024,
//	})
//	_ = p.Start()
//	_ = p.Feed(packet)
package player
