package engine

import (
	"sync"
	"sync/atomic"

	"ticker-engine/src/models"
)

// -----------------------------------------------------------------------------
// EngineState is the single point of thread-safe coordination between the one
// producer goroutine and any number of caller-side operations. Flags are
// atomics; the queue is guarded by a short-lived mutex that is never held
// across the producer's inter-step sleep.
// -----------------------------------------------------------------------------

type EngineState struct {
	running atomic.Bool
	cancel  atomic.Bool

	mu    sync.Mutex
	queue []models.MPriceUpdate
}

// -----------------------------------------------------------------------------

func NewEngineState() *EngineState {
	return &EngineState{}
}

// -----------------------------------------------------------------------------

// TryAcquireRun atomically claims the single producer slot. Returns false if a
// producer is already active; callers treat that as a silent no-op, not an
// error. The compare-and-swap closes the race between two near-simultaneous
// start requests.
func (s *EngineState) TryAcquireRun() bool {
	return s.running.CompareAndSwap(false, true)
}

// -----------------------------------------------------------------------------

// RequestCancel asks the producer to stop. Always succeeds, idempotent, and a
// no-op when nothing is running.
func (s *EngineState) RequestCancel() {
	s.cancel.Store(true)
}

// -----------------------------------------------------------------------------

// ResetForNewRun clears a stale cancel flag from a prior run. Called once per
// start, after TryAcquireRun succeeds and before the producer loop begins.
func (s *EngineState) ResetForNewRun() {
	s.cancel.Store(false)
}

// -----------------------------------------------------------------------------

// IsCancelled is polled by the producer between simulation steps.
func (s *EngineState) IsCancelled() bool {
	return s.cancel.Load()
}

// -----------------------------------------------------------------------------

// MarkStopped clears the running flag. Called exactly once per run, by the
// producer, on loop exit (cancellation or startup failure).
func (s *EngineState) MarkStopped() {
	s.running.Store(false)
}

// -----------------------------------------------------------------------------

// IsRunning reports whether a producer is currently active.
func (s *EngineState) IsRunning() bool {
	return s.running.Load()
}

// -----------------------------------------------------------------------------

// Enqueue appends an update to the tail of the pending queue. Never blocks,
// never drops.
func (s *EngineState) Enqueue(update models.MPriceUpdate) {
	s.mu.Lock()
	s.queue = append(s.queue, update)
	s.mu.Unlock()
}

// -----------------------------------------------------------------------------

// Drain removes and returns up to max items from the head of the queue in
// insertion order. Returns fewer (including zero) if the queue holds fewer.
func (s *EngineState) Drain(max int) []models.MPriceUpdate {
	if max <= 0 {
		return []models.MPriceUpdate{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := max
	if count > len(s.queue) {
		count = len(s.queue)
	}

	drained := make([]models.MPriceUpdate, count)
	copy(drained, s.queue[:count])

	// Shift the remainder to the front so the backing array does not grow
	// without bound across drain cycles.
	remaining := copy(s.queue, s.queue[count:])
	s.queue = s.queue[:remaining]

	return drained
}

// -----------------------------------------------------------------------------

// QueueLen returns the number of updates not yet delivered via Drain.
func (s *EngineState) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.queue)
}
