package bot

import (
	"github.com/vovakirdan/tui-aim/internal/core"
	"github.com/vovakirdan/tui-aim/internal/game"
)

// surface is a headless game.Surface that keeps just enough state for the
// player to aim.
type surface struct {
	width, height int

	targets map[game.TargetID]game.Target
	order   []game.TargetID

	popped  int
	expired int
	misses  int
	results game.Results
}

var _ game.Surface = (*surface)(nil)

func newSurface(width, height int) *surface {
	return &surface{
		width:   width,
		height:  height,
		targets: make(map[game.TargetID]game.Target),
	}
}

func (s *surface) AreaSize() (int, int) { return s.width, s.height }

func (s *surface) RenderTarget(t game.Target) {
	s.targets[t.ID] = t
	s.order = append(s.order, t.ID)
}

func (s *surface) RemoveTarget(id game.TargetID, cause game.Status) {
	if _, ok := s.targets[id]; !ok {
		return
	}
	delete(s.targets, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	switch cause {
	case game.StatusHit:
		s.popped++
	case game.StatusExpired:
		s.expired++
	}
}

func (s *surface) ShowMiss(core.Point)        { s.misses++ }
func (s *surface) UpdateScore(int)            {}
func (s *surface) UpdateTimeLeft(int)         {}
func (s *surface) ShowCountdown(int)          {}
func (s *surface) HideCountdown()             {}
func (s *surface) ShowResults(r game.Results) { s.results = r }
func (s *surface) ShowSettings()              {}

func (s *surface) ShowGame() {
	clear(s.targets)
	s.order = s.order[:0]
}

// live returns the bubbles on the area, oldest first.
func (s *surface) live() []game.Target {
	out := make([]game.Target, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.targets[id])
	}
	return out
}

// missNear returns a point just off t's circle that lands on no bubble.
// The corners of the bounding box are tried in turn.
func (s *surface) missNear(t game.Target) (core.Point, bool) {
	r := t.Bounds()
	corners := []core.Point{
		pointAt(r.X, r.Y),
		pointAt(r.Right()-1, r.Y),
		pointAt(r.X, r.Bottom()-1),
		pointAt(r.Right()-1, r.Bottom()-1),
	}
	for _, p := range corners {
		if !s.onAnyTarget(p) {
			return p, true
		}
	}
	return core.Point{}, false
}

func (s *surface) onAnyTarget(p core.Point) bool {
	for _, t := range s.targets {
		if t.Contains(p) {
			return true
		}
	}
	return false
}

func pointAt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}
