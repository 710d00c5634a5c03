// ABOUTME: Thread-safe playback engine façade
// ABOUTME: Lifecycle, feeding and queries over the decode worker
package player

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/linx-audio/linx-go/pkg/audio"
	"github.com/linx-audio/linx-go/pkg/audio/decode"
	"github.com/linx-audio/linx-go/pkg/audio/output"
)

// encodedScratchSize bounds how many encoded bytes one worker iteration
// drains from the ring.
const encodedScratchSize = 4096

// sinkPeriods sizes the device-side buffer handed to the sink.
const sinkPeriods = 4

// Stats are monotonic playback counters.
type Stats struct {
	// TotalBytes is encoded bytes successfully decoded and played.
	TotalBytes uint64

	// TotalFrames is decoded frames handed to the sink.
	TotalFrames uint64

	// DecodeErrors counts packets the decoder rejected.
	DecodeErrors uint64
}

// Player streams encoded packets through a decoder to an audio sink.
//
// A Player owns its ring buffer and worker goroutine. It takes ownership of
// the sink at construction and closes it in Close; the decoder is borrowed
// and remains the caller's to close after Close returns. All methods are
// safe for concurrent use. The decoder is only touched from the worker
// goroutine once Start has returned.
type Player struct {
	id      string
	sink    output.Sink
	decoder decode.Decoder

	// stateMu guards hook, stats, cfg, initialized and workerDone.
	// state and running are atomics written under stateMu so the worker
	// can read them without taking a lock while holding bufMu.
	stateMu     sync.Mutex
	state       atomic.Int32
	running     atomic.Bool
	hook        EventHook
	stats       Stats
	cfg         Config
	initialized bool
	workerDone  chan struct{}

	// bufMu guards the ring; bufCond wakes the worker on feed, resume
	// and stop.
	bufMu   sync.Mutex
	bufCond *sync.Cond
	buf     *ring

	// worker scratch, allocated once in Init
	encBuf []byte
	pcmBuf []int16
}

// New creates a player over a sink and a decoder.
func New(sink output.Sink, decoder decode.Decoder) (*Player, error) {
	if sink == nil || decoder == nil {
		return nil, fmt.Errorf("%w: nil sink or decoder", ErrInvalidParam)
	}

	p := &Player{
		id:      uuid.New().String()[:8],
		sink:    sink,
		decoder: decoder,
	}
	p.bufCond = sync.NewCond(&p.bufMu)
	p.state.Store(int32(StateIdle))

	return p, nil
}

// Init allocates the ring buffer and prepares the sink for playback.
func (p *Player) Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	p.stateMu.Lock()
	defer p.stateMu.Unlock()

	if p.initialized {
		return fmt.Errorf("%w: already initialized", ErrInvalidState)
	}

	sinkCfg := output.Config{
		SampleRate:      cfg.SampleRate,
		Channels:        cfg.Channels,
		FramesPerPeriod: cfg.FrameSize,
		BufferBytes:     cfg.FrameSize * cfg.Channels * audio.BytesPerSample * sinkPeriods,
	}
	if err := p.sink.Configure(sinkCfg); err != nil {
		return fmt.Errorf("%w: configure: %v", ErrSink, err)
	}

	if err := p.sink.Start(); err != nil {
		return fmt.Errorf("%w: start playback: %v", ErrSink, err)
	}

	p.cfg = cfg
	p.buf = newRing(cfg.BufferCapacity)
	p.encBuf = make([]byte, encodedScratchSize)

	// Large enough for the biggest Opus frame; decoders see the whole
	// scratch regardless of the configured frame size.
	p.pcmBuf = make([]int16, decode.MaxFrameSamples*cfg.Channels)

	p.initialized = true
	log.Printf("player %s: initialized %dHz %dch frame=%d buffer=%d",
		p.id, cfg.SampleRate, cfg.Channels, cfg.FrameSize, cfg.BufferCapacity)

	return nil
}

// SetEventHook installs the state transition hook. Pass nil to remove it.
func (p *Player) SetEventHook(hook EventHook) {
	p.stateMu.Lock()
	p.hook = hook
	p.stateMu.Unlock()
}

// Start spawns the worker and enters the playing state. Valid from the
// idle and stopped states; calling Start while already playing is a no-op.
func (p *Player) Start() error {
	p.stateMu.Lock()

	if !p.initialized {
		p.stateMu.Unlock()
		return ErrNotInitialized
	}

	st := p.currentState()
	if st == StatePlaying {
		p.stateMu.Unlock()
		return nil
	}
	if st != StateIdle && st != StateStopped {
		p.stateMu.Unlock()
		return ErrInvalidState
	}

	if p.workerDone != nil {
		p.stateMu.Unlock()
		return fmt.Errorf("%w: previous worker still running", ErrThread)
	}

	done := make(chan struct{})
	p.workerDone = done
	p.running.Store(true)
	go p.run(done)

	old, hook := p.transitionLocked(StatePlaying)
	p.stateMu.Unlock()

	p.fire(hook, old, StatePlaying)
	log.Printf("player %s: started", p.id)
	return nil
}

// Pause suspends decoding. Buffered data is preserved.
func (p *Player) Pause() error {
	p.stateMu.Lock()

	if p.currentState() != StatePlaying {
		p.stateMu.Unlock()
		return ErrInvalidState
	}

	old, hook := p.transitionLocked(StatePaused)
	p.stateMu.Unlock()

	p.fire(hook, old, StatePaused)
	log.Printf("player %s: paused", p.id)
	return nil
}

// Resume continues playback after Pause.
func (p *Player) Resume() error {
	p.stateMu.Lock()

	if p.currentState() != StatePaused {
		p.stateMu.Unlock()
		return ErrInvalidState
	}

	old, hook := p.transitionLocked(StatePlaying)
	p.stateMu.Unlock()

	p.signalBuffer()
	p.fire(hook, old, StatePlaying)
	log.Printf("player %s: resumed", p.id)
	return nil
}

// Stop halts playback, joins the worker and clears the ring. Calling Stop
// in the idle or stopped state is a no-op success.
func (p *Player) Stop() error {
	p.stateMu.Lock()

	st := p.currentState()
	if st == StateIdle || st == StateStopped {
		p.stateMu.Unlock()
		return nil
	}

	p.running.Store(false)

	var old State
	var hook EventHook
	transitioned := false
	if st != StateError {
		old, hook = p.transitionLocked(StateStopped)
		transitioned = true
	}

	done := p.workerDone
	p.stateMu.Unlock()

	p.signalBuffer()

	// workerDone stays set until the join completes so a racing Start
	// cannot spawn a second worker and revive the running flag.
	if done != nil {
		<-done
		p.stateMu.Lock()
		if p.workerDone == done {
			p.workerDone = nil
		}
		p.stateMu.Unlock()
	}

	p.ClearBuffer()

	if transitioned {
		p.fire(hook, old, StateStopped)
	}
	log.Printf("player %s: stopped", p.id)
	return nil
}

// Feed appends encoded bytes to the ring. It never blocks: when the ring
// cannot accept the whole packet, nothing is written and ErrBufferFull is
// returned so the producer can apply its own backpressure.
func (p *Player) Feed(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty packet", ErrInvalidParam)
	}

	p.stateMu.Lock()
	initialized := p.initialized
	p.stateMu.Unlock()
	if !initialized {
		return ErrNotInitialized
	}

	p.bufMu.Lock()
	if p.buf.Space() < len(data) {
		p.bufMu.Unlock()
		return ErrBufferFull
	}
	p.buf.Write(data)
	p.bufCond.Broadcast()
	p.bufMu.Unlock()

	return nil
}

// State returns the current playback state.
func (p *Player) State() State {
	return p.currentState()
}

// BufferEmpty reports whether the ring holds no data.
func (p *Player) BufferEmpty() bool {
	p.bufMu.Lock()
	defer p.bufMu.Unlock()
	return p.buf == nil || p.buf.Len() == 0
}

// BufferFull reports whether the ring has no space left.
func (p *Player) BufferFull() bool {
	p.bufMu.Lock()
	defer p.bufMu.Unlock()
	return p.buf != nil && p.buf.Space() == 0
}

// BufferUsage returns the ring fill ratio in [0, 1].
func (p *Player) BufferUsage() float64 {
	p.bufMu.Lock()
	defer p.bufMu.Unlock()
	if p.buf == nil || p.buf.Cap() == 0 {
		return 0
	}
	return float64(p.buf.Len()) / float64(p.buf.Cap())
}

// ClearBuffer discards all buffered encoded data.
func (p *Player) ClearBuffer() {
	p.bufMu.Lock()
	if p.buf != nil {
		p.buf.Clear()
	}
	p.bufMu.Unlock()
}

// Stats returns a snapshot of the playback counters.
func (p *Player) Stats() Stats {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.stats
}

// Drained reports whether the sink has played out everything written to it.
// True end-of-stream is BufferEmpty() && Drained().
func (p *Player) Drained() bool {
	return p.sink.Drained()
}

// Close stops playback and releases the sink. The borrowed decoder is not
// closed; it is the caller's once Close returns.
func (p *Player) Close() error {
	if err := p.Stop(); err != nil {
		return err
	}

	p.stateMu.Lock()
	p.initialized = false
	p.stateMu.Unlock()

	if err := p.sink.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrSink, err)
	}

	log.Printf("player %s: closed", p.id)
	return nil
}

// currentState loads the state snapshot. Writes happen under stateMu.
func (p *Player) currentState() State {
	return State(p.state.Load())
}

// transitionLocked moves to a new state. Caller holds stateMu and must have
// validated the transition; the returned hook is invoked by the caller
// after releasing the lock.
func (p *Player) transitionLocked(to State) (old State, hook EventHook) {
	old = p.currentState()
	p.state.Store(int32(to))
	return old, p.hook
}

// fire delivers a transition event outside the state lock.
func (p *Player) fire(hook EventHook, old, new State) {
	if hook != nil && old != new {
		hook(old, new)
	}
}

// signalBuffer wakes the worker. Broadcasting under bufMu pairs with the
// worker's predicate recheck so wakeups are never lost.
func (p *Player) signalBuffer() {
	p.bufMu.Lock()
	p.bufCond.Broadcast()
	p.bufMu.Unlock()
}
