// Package simcontext carries the ambient state every simulation run
// needs that isn't physics: a pausable wall-clock (driving the
// real-time viewer loop and the discrete interface's delay()), the
// immutable run parameters, and cooperative shutdown. None of this is
// mouse- or maze-specific; it is the scaffolding the control package
// and cmd/simviewer share.
package simcontext

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock provides pausable real time, the same semantics a desktop
// viewer's pause menu needs and the discrete interface's delay()
// needs to convert a requested pause into real elapsed time.
type Clock struct {
	mu sync.RWMutex

	realStartTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration

	speed float64 // simulated-time multiplier; 1.0 is real-time
}

// NewClock creates a running, unpaused clock at 1x speed.
func NewClock() *Clock {
	return &Clock{
		realStartTime: time.Now(),
		speed:         1.0,
	}
}

// Elapsed returns the clock's elapsed time, excluding any paused
// intervals and scaled by the clock's current speed multiplier.
func (c *Clock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var real time.Duration
	if c.isPaused.Load() {
		real = c.pauseStartTime.Sub(c.realStartTime) - c.totalPausedTime
	} else {
		real = time.Since(c.realStartTime) - c.totalPausedTime
	}
	return time.Duration(float64(real) * c.speed)
}

// Pause freezes the clock; a second call while already paused is a no-op.
func (c *Clock) Pause() {
	if c.isPaused.CompareAndSwap(false, true) {
		c.mu.Lock()
		c.pauseStartTime = time.Now()
		c.mu.Unlock()
	}
}

// Resume unfreezes the clock.
func (c *Clock) Resume() {
	if c.isPaused.CompareAndSwap(true, false) {
		c.mu.Lock()
		if !c.pauseStartTime.IsZero() {
			c.totalPausedTime += time.Since(c.pauseStartTime)
			c.pauseStartTime = time.Time{}
		}
		c.mu.Unlock()
	}
}

// IsPaused reports whether the clock is currently paused.
func (c *Clock) IsPaused() bool { return c.isPaused.Load() }

// SetSpeed changes the simulated-time multiplier applied to future
// elapsed-time reads (used for fast-forward viewer playback).
func (c *Clock) SetSpeed(speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if speed <= 0 {
		speed = 1.0
	}
	c.speed = speed
}

// Speed returns the current simulated-time multiplier.
func (c *Clock) Speed() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.speed
}
