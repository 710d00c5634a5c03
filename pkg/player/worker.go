// ABOUTME: Playback worker goroutine
// ABOUTME: Drains the ring, decodes packets and feeds the sink
package player

import (
	"log"
	"time"
)

// workerSleep keeps the loop from spinning when the producer is bursty and
// sink writes return quickly.
const workerSleep = 10 * time.Millisecond

// sinkErrorLimit escalates to the error state after this many consecutive
// failed sink writes (each already retried once).
const sinkErrorLimit = 10

// run is the worker loop. It owns the decoder and is the only goroutine
// that writes to the sink after Start. The loop takes no heap allocations:
// both scratch buffers were allocated in Init.
func (p *Player) run(done chan struct{}) {
	defer close(done)

	log.Printf("player %s: worker started", p.id)

	consecutiveDecodeErrs := 0
	consecutiveSinkErrs := 0

	for p.running.Load() {
		switch p.currentState() {
		case StatePaused:
			// Wait on the buffer condition so a resume broadcast
			// wakes us; recheck both predicates against spurious
			// wakeups.
			p.bufMu.Lock()
			for p.running.Load() && p.currentState() == StatePaused {
				p.bufCond.Wait()
			}
			p.bufMu.Unlock()
			continue

		case StatePlaying:
			// fall through to drain

		default:
			time.Sleep(workerSleep)
			continue
		}

		p.bufMu.Lock()
		for p.running.Load() && p.currentState() == StatePlaying && p.buf.Len() == 0 {
			p.bufCond.Wait()
		}
		if !p.running.Load() || p.currentState() != StatePlaying {
			p.bufMu.Unlock()
			continue
		}
		n := p.buf.Read(p.encBuf)
		p.bufMu.Unlock()

		if n == 0 {
			continue
		}

		samples, err := p.decoder.Decode(p.encBuf[:n], p.pcmBuf)
		if err != nil {
			consecutiveDecodeErrs++
			p.stateMu.Lock()
			p.stats.DecodeErrors++
			limit := p.cfg.DecodeErrorLimit
			p.stateMu.Unlock()

			log.Printf("player %s: decode error (dropped %d bytes): %v", p.id, n, err)

			if limit > 0 && consecutiveDecodeErrs >= limit {
				log.Printf("player %s: %d consecutive decode errors, entering error state",
					p.id, consecutiveDecodeErrs)
				p.enterErrorState()
			}

			time.Sleep(workerSleep)
			continue
		}
		consecutiveDecodeErrs = 0

		if samples > 0 {
			werr := p.sink.Write(p.pcmBuf[:samples])
			if werr != nil {
				// Transient by contract: retry once, then drop.
				werr = p.sink.Write(p.pcmBuf[:samples])
			}
			if werr != nil {
				consecutiveSinkErrs++
				log.Printf("player %s: sink write failed (dropped frame): %v", p.id, werr)

				if consecutiveSinkErrs >= sinkErrorLimit {
					log.Printf("player %s: %d consecutive sink errors, entering error state",
						p.id, consecutiveSinkErrs)
					p.enterErrorState()
				}
			} else {
				consecutiveSinkErrs = 0
				p.stateMu.Lock()
				p.stats.TotalBytes += uint64(n)
				p.stats.TotalFrames++
				p.stateMu.Unlock()
			}
		}

		time.Sleep(workerSleep)
	}

	log.Printf("player %s: worker exited", p.id)
}

// enterErrorState transitions to StateError from the worker. The state is
// absorbing; the worker keeps idling until Stop or Close joins it.
func (p *Player) enterErrorState() {
	p.stateMu.Lock()
	if !canTransition(p.currentState(), StateError) {
		p.stateMu.Unlock()
		return
	}
	old, hook := p.transitionLocked(StateError)
	p.stateMu.Unlock()

	p.fire(hook, old, StateError)
}
