package simcontext

import (
	"testing"
	"time"

	"github.com/mmsim/micromouse-core/internal/simerrors"
)

func TestWaitUntilReturnsWhenDone(t *testing.T) {
	rs := NewRuntimeState()
	n := 0
	go func() {
		for i := 0; i < 5; i += 1 {
			time.Sleep(time.Millisecond)
			n += 1
			rs.Tick()
		}
	}()

	err := rs.WaitUntil(func() bool { return n >= 5 })
	if err != nil {
		t.Fatalf("WaitUntil: %v", err)
	}
}

func TestWaitUntilCancelledByQuit(t *testing.T) {
	rs := NewRuntimeState()
	go func() {
		time.Sleep(2 * time.Millisecond)
		rs.Quit()
	}()

	err := rs.WaitUntil(func() bool { return false })
	if err != simerrors.ErrCancelled {
		t.Fatalf("WaitUntil error = %v, want ErrCancelled", err)
	}
}

func TestWaitUntilAfterQuitReturnsImmediately(t *testing.T) {
	rs := NewRuntimeState()
	rs.Quit()
	err := rs.WaitUntil(func() bool { return false })
	if err != simerrors.ErrCancelled {
		t.Fatalf("WaitUntil error = %v, want ErrCancelled", err)
	}
}

func TestClockPauseFreezesElapsed(t *testing.T) {
	c := NewClock()
	time.Sleep(2 * time.Millisecond)
	c.Pause()
	frozen := c.Elapsed()
	time.Sleep(2 * time.Millisecond)
	if c.Elapsed() != frozen {
		t.Errorf("Elapsed advanced while paused: %v -> %v", frozen, c.Elapsed())
	}
	c.Resume()
	time.Sleep(time.Millisecond)
	if c.Elapsed() <= frozen {
		t.Errorf("Elapsed did not advance after Resume")
	}
}
