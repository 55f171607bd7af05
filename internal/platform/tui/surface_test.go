package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-aim/internal/clock"
	"github.com/vovakirdan/tui-aim/internal/core"
	"github.com/vovakirdan/tui-aim/internal/game"
)

func newTestSurface() (*surface, *clock.Scheduler) {
	sched := clock.NewScheduler()
	rt := core.DefaultConfig()
	return newSurface(sched, rt), sched
}

func TestSurfaceAreaSize(t *testing.T) {
	s, _ := newTestSurface()

	w, h := s.AreaSize()
	if w != 80*8 || h != 22*16 {
		t.Errorf("AreaSize() = %dx%d, expected 640x352", w, h)
	}

	s.resize(10, 1)
	if w, h := s.AreaSize(); w != 80 || h != 0 {
		t.Errorf("AreaSize() = %dx%d for a one-row terminal, expected 80x0", w, h)
	}
}

func TestSurfaceCellToPoint(t *testing.T) {
	s, _ := newTestSurface()

	tests := []struct {
		col, row int
		expected core.Point
		ok       bool
	}{
		{0, 1, core.Point{X: 4, Y: 8}, true},
		{2, 3, core.Point{X: 20, Y: 40}, true},
		{79, 22, core.Point{X: 636, Y: 344}, true},
		{0, 0, core.Point{}, false},  // HUD
		{0, 23, core.Point{}, false}, // Help bar
		{80, 5, core.Point{}, false},
		{-1, 5, core.Point{}, false},
	}

	for _, tc := range tests {
		p, ok := s.cellToPoint(tc.col, tc.row)
		if ok != tc.ok || p != tc.expected {
			t.Errorf("cellToPoint(%d, %d) = %v, %v; expected %v, %v", tc.col, tc.row, p, ok, tc.expected, tc.ok)
		}
	}
}

func TestSurfaceCellRect(t *testing.T) {
	s, _ := newTestSurface()

	tests := []struct {
		r        core.Rect
		expected core.Rect
	}{
		{core.NewRect(0, 0, 8, 16), core.NewRect(0, 0, 1, 1)},
		{core.NewRect(0, 0, 60, 60), core.NewRect(0, 0, 8, 4)},
		{core.NewRect(4, 10, 8, 16), core.NewRect(0, 0, 2, 2)},
		{core.NewRect(100, 50, 20, 20), core.NewRect(12, 3, 3, 2)},
	}

	for _, tc := range tests {
		if got := s.cellRect(tc.r); got != tc.expected {
			t.Errorf("cellRect(%v) = %v, expected %v", tc.r, got, tc.expected)
		}
	}
}

func TestSurfaceTargetsAndEffects(t *testing.T) {
	s, sched := newTestSurface()
	s.ShowGame()

	a := game.Target{ID: 1, X: 0, Y: 0, Size: 40, Life: time.Second}
	b := game.Target{ID: 2, X: 200, Y: 100, Size: 40, Life: time.Second}
	s.RenderTarget(a)
	s.RenderTarget(b)

	s.RemoveTarget(1, game.StatusHit)
	s.RemoveTarget(2, game.StatusExpired)
	s.RemoveTarget(2, game.StatusExpired)
	s.ShowMiss(core.Point{X: 300, Y: 300})

	if len(s.targets) != 0 || len(s.order) != 0 {
		t.Errorf("targets = %v, expected none", s.targets)
	}
	// One pop and one miss; expiry leaves no mark
	if got := len(s.liveEffects()); got != 2 {
		t.Errorf("live effects = %d, expected 2", got)
	}

	sched.Advance(popFlash)
	if got := len(s.liveEffects()); got != 1 {
		t.Errorf("live effects after pop flash = %d, expected 1", got)
	}

	sched.Advance(missFlash)
	if got := len(s.liveEffects()); got != 0 {
		t.Errorf("live effects after miss flash = %d, expected 0", got)
	}
}

func TestSurfacePopBurstSprings(t *testing.T) {
	s, _ := newTestSurface()
	s.ShowGame()
	s.RenderTarget(game.Target{ID: 1, X: 80, Y: 80, Size: 40, Life: time.Second})
	s.RemoveTarget(1, game.StatusHit)
	s.ShowMiss(core.Point{X: 10, Y: 10})

	prev := 0.0
	for range 5 {
		s.animate()
		if r := s.effects[0].radius; r <= prev {
			t.Fatalf("burst radius = %v, expected growth past %v", r, prev)
		}
		prev = s.effects[0].radius
	}
	if s.effects[1].radius != 0 {
		t.Error("miss marks should not animate")
	}
	if prev > popRadius*1.5 {
		t.Errorf("burst radius = %v, overshoots far past %v", prev, popRadius)
	}
}

func TestSurfacePanels(t *testing.T) {
	s, _ := newTestSurface()
	s.RenderTarget(game.Target{ID: 1, Size: 10})
	s.ShowCountdown(2)

	s.ShowResults(game.Results{Score: 4})
	if s.panel != PanelResults || s.results.Score != 4 {
		t.Errorf("panel = %v, results = %+v", s.panel, s.results)
	}
	if len(s.targets) != 0 {
		t.Error("ShowResults should clear the play area")
	}

	s.ShowGame()
	if s.panel != PanelGame || s.countdown != 0 {
		t.Errorf("panel = %v, countdown = %d after ShowGame", s.panel, s.countdown)
	}

	s.ShowSettings()
	if s.panel != PanelSettings {
		t.Errorf("panel = %v, expected settings", s.panel)
	}
}

func TestSurfaceDrawArea(t *testing.T) {
	s, _ := newTestSurface()
	s.ShowGame()
	s.RenderTarget(game.Target{ID: 1, X: 0, Y: 0, Size: 64, Life: time.Second})
	s.ShowCountdown(3)

	screen := core.NewScreen(s.areaCells())
	s.drawArea(screen, 0)

	if c := screen.GetCell(4, 2); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("bubble center cell = %q/%v, expected fresh bubble", c.Rune, c.Color)
	}
	if c := screen.GetCell(0, 0); c.Rune != ' ' {
		t.Errorf("bubble corner cell = %q, expected empty", c.Rune)
	}
	if row := screen.Row(11); !containsRune(row, '3') {
		t.Errorf("countdown row = %q, expected the countdown", row)
	}
}

func TestLifeColor(t *testing.T) {
	tests := []struct {
		left     float64
		expected core.Color
	}{
		{1, core.ColorBrightGreen},
		{0.61, core.ColorBrightGreen},
		{0.5, core.ColorYellow},
		{0.3, core.ColorBrightRed},
		{0, core.ColorBrightRed},
	}

	for _, tc := range tests {
		if got := lifeColor(tc.left); got != tc.expected {
			t.Errorf("lifeColor(%v) = %v, expected %v", tc.left, got, tc.expected)
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
