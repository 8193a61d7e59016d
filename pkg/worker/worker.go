package worker

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/openbess/bessd/pkg/log"
	"github.com/openbess/bessd/pkg/sched"
)

// MaxWorkers is the capacity of the worker slot array. Worker ids are slot
// indexes in [0, MaxWorkers).
const MaxWorkers = 64

// IsCPUPresent reports whether core is a usable CPU on this machine.
func IsCPUPresent(core int) bool {
	return core >= 0 && core < runtime.NumCPU()
}

// Worker is one pinned dispatch thread owning a scheduler tree.
type Worker struct {
	wid  int
	core int

	sched        *sched.Scheduler
	defaultClass *sched.Class

	running     atomic.Bool
	stopped     atomic.Bool
	silentDrops atomic.Uint64
	done        chan struct{}
	logger      zerolog.Logger
}

// Wid returns the worker's slot index.
func (w *Worker) Wid() int { return w.wid }

// Core returns the CPU the worker is pinned to.
func (w *Worker) Core() int { return w.core }

// Scheduler returns the worker's TC tree.
func (w *Worker) Scheduler() *sched.Scheduler { return w.sched }

// DefaultClass returns the fallback traffic class tasks are assigned to when
// the client names a worker instead of a class.
func (w *Worker) DefaultClass() *sched.Class { return w.defaultClass }

// Running reports whether the dispatch loop is live.
func (w *Worker) Running() bool { return w.running.Load() }

// SilentDrops returns the count of packets dropped without accounting.
func (w *Worker) SilentDrops() uint64 { return w.silentDrops.Load() }

// AddSilentDrops is called from the dispatch path.
func (w *Worker) AddSilentDrops(n uint64) { w.silentDrops.Add(n) }

// Set is the fixed-capacity worker slot array plus the shared pause barrier.
// Slots are mutated only by the control thread.
type Set struct {
	slots   [MaxWorkers]*Worker
	barrier *Barrier
	num     int
}

func NewSet() *Set {
	return &Set{barrier: NewBarrier()}
}

// Barrier returns the pause barrier shared by all workers in the set.
func (s *Set) Barrier() *Barrier { return s.barrier }

// NumWorkers returns the number of occupied slots.
func (s *Set) NumWorkers() int { return s.num }

// IsActive reports whether slot wid holds a worker.
func (s *Set) IsActive(wid int) bool {
	return wid >= 0 && wid < MaxWorkers && s.slots[wid] != nil
}

// Get returns the worker in slot wid, or nil.
func (s *Set) Get(wid int) *Worker {
	if wid < 0 || wid >= MaxWorkers {
		return nil
	}
	return s.slots[wid]
}

// Launch occupies slot wid with a worker pinned to core. defaultClass becomes
// the root of the worker's scheduler tree. The caller has already validated
// the slot and registered the class name.
func (s *Set) Launch(wid, core int, defaultClass *sched.Class) *Worker {
	w := &Worker{
		wid:          wid,
		core:         core,
		sched:        sched.NewScheduler(defaultClass),
		defaultClass: defaultClass,
		done:         make(chan struct{}),
		logger:       log.WithWorker(wid),
	}
	s.slots[wid] = w
	s.num++

	go w.loop(s.barrier)

	w.logger.Info().Int("core", core).Msg("Worker launched")
	return w
}

// DestroyAll stops every worker and joins its thread. Dispatch has ceased by
// the time it returns.
func (s *Set) DestroyAll() {
	for wid, w := range s.slots {
		if w == nil {
			continue
		}
		w.stopped.Store(true)
		s.barrier.Kick()
		<-w.done
		s.slots[wid] = nil
		s.num--
		w.logger.Info().Msg("Worker destroyed")
	}
}

func (w *Worker) loop(b *Barrier) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := pinToCore(w.core); err != nil {
		w.logger.Warn().Err(err).Int("core", w.core).Msg("Failed to set CPU affinity")
	}

	w.running.Store(true)
	defer func() {
		w.running.Store(false)
		close(w.done)
	}()

	for !w.stopped.Load() {
		if !b.Enter(&w.stopped) {
			return
		}
		n := w.sched.RunOnce()
		b.Exit()

		// An idle tree would otherwise spin the core.
		if n == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}
