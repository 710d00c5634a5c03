// ABOUTME: Player error values
// ABOUTME: Stable sentinel errors matched with errors.Is
package player

import "errors"

// Sentinel errors returned by the player API. Downstream causes are wrapped
// with %w so errors.Is still matches the sentinel.
var (
	ErrInvalidParam   = errors.New("invalid parameter")
	ErrNotInitialized = errors.New("player not initialized")
	ErrSink           = errors.New("audio sink error")
	ErrCodec          = errors.New("codec error")
	ErrThread         = errors.New("worker thread error")
	ErrBufferFull     = errors.New("buffer full")
	ErrInvalidState   = errors.New("invalid state")
)
