package worker

import (
	"sync"
	"sync/atomic"
)

// Barrier is the pause/resume rendezvous between the control thread and the
// workers. Workers bracket every dispatch round with Enter/Exit; the control
// thread calls Pause to gain exclusive access to worker-visible state and
// Resume to hand it back. After Pause returns, no worker is inside a round
// and none will start one until Resume.
type Barrier struct {
	mu     sync.Mutex
	cond   *sync.Cond
	paused bool
	active int
}

func NewBarrier() *Barrier {
	b := &Barrier{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Enter blocks while the barrier is paused, then registers the caller as an
// active reader. It returns false without registering when stopped is set,
// so a parked worker can be shut down mid-pause.
func (b *Barrier) Enter(stopped *atomic.Bool) bool {
	b.mu.Lock()
	for b.paused && !stopped.Load() {
		b.cond.Wait()
	}
	if stopped.Load() {
		b.mu.Unlock()
		return false
	}
	b.active++
	b.mu.Unlock()
	return true
}

// Exit ends the caller's dispatch round.
func (b *Barrier) Exit() {
	b.mu.Lock()
	b.active--
	if b.active == 0 {
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

// Pause flips the barrier and blocks until every active round has drained.
// Pausing an already-paused barrier returns immediately.
func (b *Barrier) Pause() {
	b.mu.Lock()
	b.paused = true
	for b.active > 0 {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Resume releases paused workers.
func (b *Barrier) Resume() {
	b.mu.Lock()
	b.paused = false
	b.cond.Broadcast()
	b.mu.Unlock()
}

// Paused reports the barrier state.
func (b *Barrier) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

// Kick wakes parked workers so they can observe a stop flag.
func (b *Barrier) Kick() {
	b.mu.Lock()
	b.cond.Broadcast()
	b.mu.Unlock()
}
