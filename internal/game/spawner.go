package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-aim/internal/clock"
	"github.com/vovakirdan/tui-aim/internal/config"
	"github.com/vovakirdan/tui-aim/internal/core"
)

// expiryDelay keeps a bubble hittable at its exact ExpiresAt instant; the
// expiry fires once the timeline moves past it.
const expiryDelay = time.Nanosecond

// Spawner produces bubbles at a fixed cadence and owns them until they are
// hit or expire. Hooks report back to the Controller, which keeps the
// session totals.
type Spawner struct {
	rng      *rand.Rand
	sched    *clock.Scheduler
	size     int
	preset   config.Preset
	areaSize func() (int, int)

	live   map[TargetID]*Target
	order  []TargetID // Live IDs in spawn order; last is topmost
	nextID TargetID

	onSpawn  func(Target)
	onExpire func(Target)
}

// NewSpawner creates a spawner for one session.
func NewSpawner(rng *rand.Rand, sched *clock.Scheduler, settings config.Settings, areaSize func() (int, int)) *Spawner {
	return &Spawner{
		rng:      rng,
		sched:    sched,
		size:     settings.BubbleSize,
		preset:   settings.Preset(),
		areaSize: areaSize,
		live:     make(map[TargetID]*Target),
		onSpawn:  func(Target) {},
		onExpire: func(Target) {},
	}
}

// Start arms the spawn tick on g. Every timer the spawner creates lives in g,
// so cancelling g stops spawns and expiries together.
func (sp *Spawner) Start(g *clock.Group) {
	g.Every(sp.preset.SpawnEvery, func() { sp.spawn(g) })
}

// spawn places one bubble and schedules its expiry.
func (sp *Spawner) spawn(g *clock.Group) {
	sp.nextID++
	w, h := sp.areaSize()
	t := &Target{
		ID:        sp.nextID,
		X:         sp.randomOffset(w - sp.size),
		Y:         sp.randomOffset(h - sp.size),
		Size:      sp.size,
		Life:      sp.preset.Life,
		SpawnedAt: sp.sched.Now(),
		Status:    StatusPending,
	}
	sp.live[t.ID] = t
	sp.order = append(sp.order, t.ID)

	id := t.ID
	g.After(t.Life+expiryDelay, func() { sp.expire(id) })

	sp.onSpawn(*t)
}

// randomOffset returns a uniform value in [0, span], or 0 when the bubble
// does not fit.
func (sp *Spawner) randomOffset(span int) int {
	if span <= 0 {
		return 0
	}
	return sp.rng.Intn(span + 1)
}

// expire handles a bubble's lifetime timer. A bubble already hit is left alone.
func (sp *Spawner) expire(id TargetID) {
	t, ok := sp.live[id]
	if !ok || !t.resolve(StatusExpired) {
		return
	}
	sp.remove(id)
	sp.onExpire(*t)
}

// Hit marks a live bubble as hit. It returns false if the bubble is unknown,
// already expired or already hit, so duplicate clicks count once.
func (sp *Spawner) Hit(id TargetID) (Target, bool) {
	t, ok := sp.live[id]
	if !ok || !t.resolve(StatusHit) {
		return Target{}, false
	}
	sp.remove(id)
	return *t, true
}

// TargetAt returns the topmost live bubble whose circle contains p.
func (sp *Spawner) TargetAt(p core.Point) (TargetID, bool) {
	for i := len(sp.order) - 1; i >= 0; i-- {
		if t := sp.live[sp.order[i]]; t != nil && t.Contains(p) {
			return t.ID, true
		}
	}
	return 0, false
}

// Live returns copies of the live bubbles in spawn order.
func (sp *Spawner) Live() []Target {
	out := make([]Target, 0, len(sp.order))
	for _, id := range sp.order {
		if t := sp.live[id]; t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// Clear drops every live bubble without resolving it.
func (sp *Spawner) Clear() {
	clear(sp.live)
	sp.order = sp.order[:0]
}

func (sp *Spawner) remove(id TargetID) {
	delete(sp.live, id)
	for i, v := range sp.order {
		if v == id {
			sp.order = append(sp.order[:i], sp.order[i+1:]...)
			break
		}
	}
}
