// Package clock provides a single-threaded timer service on a virtual timeline.
// Nothing fires on its own: a driver (the TUI tick loop, a simulation loop or a
// test) calls Advance, and every timer that became due runs on the caller's
// goroutine in due order. Callbacks therefore never run concurrently with
// each other or with input handling done by the same goroutine.
package clock

import (
	"container/heap"
	"time"
)

// Scheduler owns the virtual timeline and the queue of pending timers.
// It is not safe for concurrent use.
type Scheduler struct {
	now   time.Duration
	queue timerQueue
	seq   uint64
}

// NewScheduler creates a scheduler positioned at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the elapsed virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After schedules fn to run once, d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.schedule(d, 0, fn, nil)
}

// Every schedules fn to run every d, first after d.
// A non-positive period is treated as one nanosecond so Advance terminates.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Nanosecond
	}
	return s.schedule(d, d, fn, nil)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func(), g *Group) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		sched:  s,
		group:  g,
		due:    s.now + d,
		period: period,
		seq:    s.seq,
		fn:     fn,
		index:  -1,
	}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the timeline forward by d, firing due timers in order.
// Returns the number of callbacks that ran.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return s.AdvanceTo(s.now + d)
}

// AdvanceTo moves the timeline to the absolute instant target.
// Timers due at the same instant fire in creation order. A callback sees Now()
// equal to its own due time, and timers it cancels are gone before the next
// one is popped.
func (s *Scheduler) AdvanceTo(target time.Duration) int {
	fired := 0
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		if next.due > s.now {
			s.now = next.due
		}

		if next.period > 0 {
			// Re-arm before the callback so a Stop inside fn disarms it.
			next.due += next.period
			heap.Push(&s.queue, next)
		} else {
			next.fired = true
			next.detach()
		}

		next.fn()
		fired++
	}
	if target > s.now {
		s.now = target
	}
	return fired
}

// NextDue returns the due instant of the earliest armed timer.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	sched   *Scheduler
	group   *Group
	due     time.Duration
	period  time.Duration
	seq     uint64
	fn      func()
	index   int
	stopped bool
	fired   bool
}

// Stop disarms the timer. Returns false if it already fired (one-shot) or was
// already stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.sched.queue, t.index)
	}
	t.detach()
	return true
}

// Active reports whether the timer is still armed.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && !t.fired
}

// Due returns the instant the timer fires next.
func (t *Timer) Due() time.Duration {
	return t.due
}

func (t *Timer) detach() {
	if t.group != nil {
		delete(t.group.timers, t)
	}
}

// timerQueue is a min-heap ordered by (due, seq).
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
