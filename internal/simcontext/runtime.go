package simcontext

import (
	"sync"

	"github.com/mmsim/micromouse-core/internal/simerrors"
)

// RuntimeState coordinates cooperative shutdown and simulated-tick
// based blocking between the simulation's physics loop (which calls
// Tick once per integration step) and a controller goroutine blocked
// in a discrete-interface move or a delay() call. It plays the same
// role the reference's SimUtilities quit flag and condition variable
// play around MouseInterface's blocking calls.
type RuntimeState struct {
	mu       sync.Mutex
	cond     *sync.Cond
	quitting bool
	tickSeq  uint64
}

// NewRuntimeState returns a running (non-quitting) RuntimeState.
func NewRuntimeState() *RuntimeState {
	rs := &RuntimeState{}
	rs.cond = sync.NewCond(&rs.mu)
	return rs
}

// Quit requests cooperative shutdown: every blocked WaitForTicks call
// wakes and returns ErrCancelled, and all future calls do the same
// immediately.
func (rs *RuntimeState) Quit() {
	rs.mu.Lock()
	rs.quitting = true
	rs.cond.Broadcast()
	rs.mu.Unlock()
}

// Quitting reports whether Quit has been called.
func (rs *RuntimeState) Quitting() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.quitting
}

// Tick advances the tick sequence and wakes every blocked waiter so it
// can re-check its completion condition. Called once per physics step.
func (rs *RuntimeState) Tick() {
	rs.mu.Lock()
	rs.tickSeq += 1
	rs.cond.Broadcast()
	rs.mu.Unlock()
}

// WaitUntil blocks until either done() reports true or Quit is called,
// re-evaluating done() once per simulation tick. It returns
// ErrCancelled if woken by Quit before done() became true.
func (rs *RuntimeState) WaitUntil(done func() bool) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for {
		if rs.quitting {
			return simerrors.ErrCancelled
		}
		if done() {
			return nil
		}
		rs.cond.Wait()
	}
}
