package tui

import (
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/tui-aim/internal/clock"
	"github.com/vovakirdan/tui-aim/internal/core"
	"github.com/vovakirdan/tui-aim/internal/game"
)

// Panel is the screen currently shown to the player.
type Panel int

const (
	PanelSettings Panel = iota
	PanelGame
	PanelResults
)

// Layout rows around the play area.
const (
	hudRows    = 1
	footerRows = 1
)

// Effect lifetimes on the scheduler timeline.
const (
	popFlash  = 150 * time.Millisecond
	missFlash = 300 * time.Millisecond
)

// Pop burst: sparks spring out from the bubble center to popRadius columns.
const (
	popRadius = 3.0
	popSparks = 8
)

// effect is a short-lived mark left by a pop or a miss.
type effect struct {
	at     core.Point // Play-area px
	miss   bool
	until  time.Duration
	radius float64 // Burst radius in columns
	vel    float64
}

// surface is the terminal side of a session. The Controller drives it through
// game.Surface; the Model reads it back when rendering.
type surface struct {
	sched  *clock.Scheduler
	spring harmonica.Spring
	cellW  int
	cellH  int

	// Terminal size in cells
	cols int
	rows int

	panel     Panel
	targets   map[game.TargetID]game.Target
	order     []game.TargetID
	effects   []effect
	score     int
	timeLeft  int
	countdown int
	results   game.Results
}

var _ game.Surface = (*surface)(nil)

func newSurface(sched *clock.Scheduler, rt core.RuntimeConfig) *surface {
	return &surface{
		sched:   sched,
		spring:  harmonica.NewSpring(harmonica.FPS(max(rt.TickRate, 1)), 12.0, 0.5),
		cellW:   max(rt.CellW, 1),
		cellH:   max(rt.CellH, 1),
		cols:    rt.ScreenW,
		rows:    rt.ScreenH,
		panel:   PanelSettings,
		targets: make(map[game.TargetID]game.Target),
	}
}

// resize records a new terminal size. Bubbles already on the area keep their
// place; the next spawn uses the new bounds.
func (s *surface) resize(cols, rows int) {
	s.cols = cols
	s.rows = rows
}

// areaCells returns the play area size in terminal cells.
func (s *surface) areaCells() (int, int) {
	return max(s.cols, 0), max(s.rows-hudRows-footerRows, 0)
}

// AreaSize implements game.Surface.
func (s *surface) AreaSize() (int, int) {
	w, h := s.areaCells()
	return w * s.cellW, h * s.cellH
}

// cellToPoint maps a terminal cell to the px at its center. ok is false when
// the cell lies outside the play area.
func (s *surface) cellToPoint(col, row int) (core.Point, bool) {
	w, h := s.areaCells()
	row -= hudRows
	if col < 0 || row < 0 || col >= w || row >= h {
		return core.Point{}, false
	}
	return core.Point{
		X: col*s.cellW + s.cellW/2,
		Y: row*s.cellH + s.cellH/2,
	}, true
}

// cellRect maps a px rectangle to the smallest cell rectangle covering it,
// relative to the play area.
func (s *surface) cellRect(r core.Rect) core.Rect {
	x0 := r.X / s.cellW
	y0 := r.Y / s.cellH
	x1 := (r.Right() - 1) / s.cellW
	y1 := (r.Bottom() - 1) / s.cellH
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

func (s *surface) RenderTarget(t game.Target) {
	s.targets[t.ID] = t
	s.order = append(s.order, t.ID)
}

func (s *surface) RemoveTarget(id game.TargetID, cause game.Status) {
	t, ok := s.targets[id]
	if !ok {
		return
	}
	delete(s.targets, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if cause == game.StatusHit {
		cx, cy := t.Bounds().Center()
		s.effects = append(s.effects, effect{
			at:    core.Point{X: cx, Y: cy},
			until: s.sched.Now() + popFlash,
		})
	}
}

func (s *surface) ShowMiss(p core.Point) {
	s.effects = append(s.effects, effect{
		at:    p,
		miss:  true,
		until: s.sched.Now() + missFlash,
	})
}

func (s *surface) UpdateScore(score int)      { s.score = score }
func (s *surface) UpdateTimeLeft(seconds int) { s.timeLeft = seconds }
func (s *surface) ShowCountdown(n int)        { s.countdown = n }
func (s *surface) HideCountdown()             { s.countdown = 0 }

func (s *surface) ShowResults(r game.Results) {
	s.results = r
	s.clearArea()
	s.panel = PanelResults
}

func (s *surface) ShowSettings() {
	s.clearArea()
	s.panel = PanelSettings
}

func (s *surface) ShowGame() {
	s.clearArea()
	s.countdown = 0
	s.panel = PanelGame
}

func (s *surface) clearArea() {
	clear(s.targets)
	s.order = s.order[:0]
	s.effects = s.effects[:0]
}

// animate steps every pop burst by one frame.
func (s *surface) animate() {
	for i := range s.effects {
		e := &s.effects[i]
		if e.miss {
			continue
		}
		e.radius, e.vel = s.spring.Update(e.radius, e.vel, popRadius)
	}
}

// liveEffects drops expired effects and returns the rest.
func (s *surface) liveEffects() []effect {
	now := s.sched.Now()
	kept := s.effects[:0]
	for _, e := range s.effects {
		if e.until > now {
			kept = append(kept, e)
		}
	}
	s.effects = kept
	return kept
}

// drawArea renders bubbles and effects onto screen with the play area's
// top-left at row top.
func (s *surface) drawArea(screen *core.Screen, top int) {
	now := s.sched.Now()
	for _, id := range s.order {
		t := s.targets[id]
		r := s.cellRect(t.Bounds())
		r.Y += top
		screen.DrawEllipse(r, '█', lifeColor(t.LifeLeft(now)))
	}

	for _, e := range s.liveEffects() {
		col := e.at.X / s.cellW
		row := e.at.Y/s.cellH + top
		if e.miss {
			screen.SetColor(col, row, '×', core.ColorGray)
			continue
		}
		for i := range popSparks {
			a := 2 * math.Pi * float64(i) / popSparks
			// Rows are about twice as tall as columns are wide
			x := col + int(math.Round(e.radius*math.Cos(a)))
			y := row + int(math.Round(e.radius*math.Sin(a)/2))
			screen.SetColor(x, y, '·', core.ColorYellow)
		}
		screen.SetColor(col, row, '✶', core.ColorBrightYellow)
	}

	if s.countdown > 0 {
		_, h := s.areaCells()
		screen.DrawTextCentered(top+h/2, countdownText(s.countdown), core.ColorBrightCyan)
	}
}

// lifeColor shades a bubble by the fraction of its lifetime left.
func lifeColor(left float64) core.Color {
	switch {
	case left > 0.6:
		return core.ColorBrightGreen
	case left > 0.3:
		return core.ColorYellow
	default:
		return core.ColorBrightRed
	}
}

func countdownText(n int) string {
	return "[ " + strconv.Itoa(n) + " ]"
}
