// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"time"
)

var (
	startTime = time.Now()
)

// maxFrameTime limits the step after stalls like window drags.
const maxFrameTime = 100 * time.Millisecond

func QTime() time.Duration {
	return time.Now().Sub(startTime)
}

// Clock measures the time between frames.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds since the previous Tick.
func (c *Clock) Tick() float32 {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	if d > maxFrameTime {
		d = maxFrameTime
	}
	return float32(d.Seconds())
}
