package engine

import "time"

// Clock supplies monotonic time. Only differences between readings matter.
type Clock interface {
	Now() time.Duration
}

type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// Gate lets through at most one tick per period.
type Gate struct {
	Period time.Duration

	last    time.Duration
	started bool
}

func NewGate(period time.Duration) *Gate {
	return &Gate{Period: period}
}

// Ready reports whether a tick is due at now, and if so starts a new period.
func (g *Gate) Ready(now time.Duration) bool {
	if g.started && now-g.last < g.Period {
		return false
	}
	g.last = now
	g.started = true
	return true
}
