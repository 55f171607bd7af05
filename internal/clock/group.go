package clock

import "time"

// Group collects timers so they can be cancelled together.
// After Cancel, the group refuses new timers: scheduling on it returns a
// stopped handle whose callback never runs.
type Group struct {
	sched     *Scheduler
	timers    map[*Timer]struct{}
	cancelled bool
}

// NewGroup creates an empty timer group bound to the scheduler.
func (s *Scheduler) NewGroup() *Group {
	return &Group{
		sched:  s,
		timers: make(map[*Timer]struct{}),
	}
}

// After schedules a one-shot timer owned by the group.
func (g *Group) After(d time.Duration, fn func()) *Timer {
	return g.add(d, 0, fn)
}

// Every schedules a repeating timer owned by the group.
func (g *Group) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Nanosecond
	}
	return g.add(d, d, fn)
}

func (g *Group) add(d, period time.Duration, fn func()) *Timer {
	if g.cancelled {
		return &Timer{sched: g.sched, stopped: true, index: -1}
	}
	t := g.sched.schedule(d, period, fn, g)
	g.timers[t] = struct{}{}
	return t
}

// Cancel stops every armed timer in the group and returns how many were
// stopped. It completes before returning; none of them can fire afterwards.
func (g *Group) Cancel() int {
	g.cancelled = true
	n := 0
	for t := range g.timers {
		if t.Stop() {
			n++
		}
	}
	return n
}

// Cancelled reports whether Cancel has been called.
func (g *Group) Cancelled() bool {
	return g.cancelled
}

// Len returns the number of armed timers in the group.
func (g *Group) Len() int {
	return len(g.timers)
}
