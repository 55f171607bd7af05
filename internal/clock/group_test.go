package clock

import (
	"testing"
	"time"
)

func TestGroupCancelStopsEverything(t *testing.T) {
	s := NewScheduler()
	g := s.NewGroup()
	calls := 0
	g.Every(time.Second, func() { calls++ })
	g.Every(650*time.Millisecond, func() { calls++ })
	g.After(1300*time.Millisecond, func() { calls++ })

	outside := 0
	s.After(5*time.Second, func() { outside++ })

	if g.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", g.Len())
	}

	stopped := g.Cancel()
	if stopped != 3 {
		t.Errorf("Cancel() = %d, expected 3", stopped)
	}

	s.Advance(10 * time.Second)

	if calls != 0 {
		t.Errorf("group callbacks ran %d times after Cancel, expected 0", calls)
	}
	if outside != 1 {
		t.Errorf("timer outside the group ran %d times, expected 1", outside)
	}
}

func TestGroupCancelFromCallback(t *testing.T) {
	s := NewScheduler()
	g := s.NewGroup()
	spawns := 0
	g.Every(time.Second, func() {
		if s.Now() >= 3*time.Second {
			g.Cancel()
		}
	})
	g.Every(500*time.Millisecond, func() { spawns++ })

	s.Advance(10 * time.Second)

	// At 3s the clock tick (created first) cancels before the 3s spawn runs.
	if spawns != 5 {
		t.Errorf("spawns = %d, expected 5", spawns)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestCancelledGroupRefusesTimers(t *testing.T) {
	s := NewScheduler()
	g := s.NewGroup()
	g.Cancel()

	ran := false
	timer := g.After(time.Millisecond, func() { ran = true })
	s.Advance(time.Second)

	if ran {
		t.Error("timer added to a cancelled group should never run")
	}
	if timer.Active() {
		t.Error("timer from a cancelled group should not be active")
	}
	if !g.Cancelled() {
		t.Error("Cancelled() should be true")
	}
}

func TestFiredOneShotLeavesGroup(t *testing.T) {
	s := NewScheduler()
	g := s.NewGroup()
	g.After(100*time.Millisecond, func() {})

	s.Advance(time.Second)

	if g.Len() != 0 {
		t.Errorf("Len() = %d after one-shot fired, expected 0", g.Len())
	}
	if n := g.Cancel(); n != 0 {
		t.Errorf("Cancel() = %d, expected 0", n)
	}
}
