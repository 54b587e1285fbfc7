package session

import "time"

// Clock turns frame durations into simulation ticks. Elapsed time accumulates
// while running and a tick fires once the accumulator reaches the interval.
type Clock struct {
	interval time.Duration
	acc      time.Duration
	paused   bool
	dropped  int
}

// NewClock builds a running clock. A non-positive interval falls back to
// DefaultTickInterval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{interval: interval}
}

// Advance adds dt and reports whether a tick is due. At most one tick fires
// per call. The accumulator keeps the remainder past the tick boundary; whole
// intervals beyond that (a stalled frame) are discarded.
func (c *Clock) Advance(dt time.Duration) bool {
	if c.paused || dt <= 0 {
		return false
	}

	c.acc += dt
	if c.acc < c.interval {
		return false
	}

	c.acc -= c.interval
	if c.acc >= c.interval {
		c.dropped += int(c.acc / c.interval)
		c.acc %= c.interval
	}
	return true
}

func (c *Clock) Pause()  { c.paused = true }
func (c *Clock) Resume() { c.paused = false }

func (c *Clock) Paused() bool { return c.paused }

// Reset clears the accumulator and resumes the clock.
func (c *Clock) Reset() {
	c.acc = 0
	c.paused = false
	c.dropped = 0
}

// Pending is the time accumulated toward the next tick.
func (c *Clock) Pending() time.Duration { return c.acc }

// Dropped counts ticks skipped because of stalls since the last Reset.
func (c *Clock) Dropped() int { return c.dropped }

func (c *Clock) Interval() time.Duration { return c.interval }
