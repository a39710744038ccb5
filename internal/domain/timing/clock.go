// Package timing converts wall-clock frame intervals into game time.
package timing

import "time"

// Clock tracks the interval between frames.
//
// RealDelta is in milliseconds; GameDelta is RealDelta scaled by
// 0.001 * scale, so with scale 1 it is the frame interval in seconds.
type Clock struct {
	scale     float64
	last      time.Duration
	started   bool
	realDelta float64
	gameDelta float64
}

// NewClock creates a clock with the given time scale factor
func NewClock(scale float64) *Clock {
	return &Clock{scale: scale}
}

// Reset marks now as the previous tick without producing a delta
func (c *Clock) Reset(now time.Duration) {
	c.last = now
	c.started = true
	c.realDelta = 0
	c.gameDelta = 0
}

// Tick records a new frame at now (a monotonic reading) and returns the
// game delta. The first tick after construction yields 0.
func (c *Clock) Tick(now time.Duration) float64 {
	if !c.started {
		c.Reset(now)
		return 0
	}
	elapsed := now - c.last
	if elapsed < 0 {
		elapsed = 0
	}
	c.last = now
	c.realDelta = float64(elapsed) / float64(time.Millisecond)
	c.gameDelta = c.realDelta * (0.001 * c.scale)
	return c.gameDelta
}

// RealDelta returns the last frame interval in milliseconds
func (c *Clock) RealDelta() float64 {
	return c.realDelta
}

// GameDelta returns the last scaled frame interval
func (c *Clock) GameDelta() float64 {
	return c.gameDelta
}

// Scale returns the time scale factor
func (c *Clock) Scale() float64 {
	return c.scale
}

// Monotonic returns a reading function backed by the monotonic clock,
// measured from the moment Monotonic is called.
func Monotonic() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
