// Package bot plays aim trainer sessions without a terminal. A simulated
// player notices each bubble after a reaction delay and clicks it, landing
// on target with a configurable skill. The session runs on a virtual clock,
// so a full round finishes in milliseconds.
package bot

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-aim/internal/clock"
	"github.com/vovakirdan/tui-aim/internal/config"
	"github.com/vovakirdan/tui-aim/internal/game"
)

// Default simulation parameters.
const (
	DefaultSkill    = 0.8
	DefaultReaction = 450 * time.Millisecond
	DefaultStep     = time.Second / 60
	DefaultWidth    = 800
	DefaultHeight   = 600
)

// Options configures a simulated session.
type Options struct {
	Skill    float64       // Probability a click lands on its bubble (0-1)
	Reaction time.Duration // Delay between a spawn and the click on it
	Step     time.Duration // Simulation frame
	Width    int           // Play area in px
	Height   int
	Seed     int64 // 0 = time-based
	Logger   *log.Logger
}

// DefaultOptions returns options for an average player.
func DefaultOptions() Options {
	return Options{
		Skill:    DefaultSkill,
		Reaction: DefaultReaction,
		Step:     DefaultStep,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
	}
}

func (o Options) withDefaults() Options {
	o.Skill = min(max(o.Skill, 0), 1)
	if o.Reaction < 0 {
		o.Reaction = 0
	}
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Report is the outcome of one simulated session.
type Report struct {
	game.Results
	Expired int // Bubbles that timed out
	Frames  int // Simulation steps taken
}

// Run plays one full session with settings. It returns the results once the
// session ends, or ctx's error if ctx is cancelled first. Invalid settings
// return a wrapped *config.InvalidConfigError.
func Run(ctx context.Context, settings config.Settings, opts Options) (Report, error) {
	opts = opts.withDefaults()

	sched := clock.NewScheduler()
	surf := newSurface(opts.Width, opts.Height)
	ctrl := game.NewController(sched, surf,
		game.WithLogger(opts.Logger),
		game.WithSeed(opts.Seed),
	)
	p := &player{
		rng:       rand.New(rand.NewSource(opts.Seed + 1)),
		skill:     opts.Skill,
		reaction:  opts.Reaction,
		attempted: make(map[game.TargetID]bool),
	}

	if err := ctrl.Start(settings); err != nil {
		return Report{}, fmt.Errorf("bot: %w", err)
	}

	frames := 0
	for ctrl.Phase() != game.PhaseEnded {
		if err := ctx.Err(); err != nil {
			ctrl.EndEarly()
			return Report{}, err
		}
		sched.Advance(opts.Step)
		frames++
		if ctrl.Phase() == game.PhaseActive {
			p.act(ctrl, surf, sched.Now())
		}
	}

	r, _ := ctrl.Results()
	opts.Logger.Debug("simulation finished", "frames", frames, "expired", surf.expired, "misses", surf.misses)
	return Report{Results: r, Expired: surf.expired, Frames: frames}, nil
}

// player decides which bubble to click and where.
type player struct {
	rng       *rand.Rand
	skill     float64
	reaction  time.Duration
	attempted map[game.TargetID]bool
}

// act clicks at most one bubble per frame: the oldest one the player has
// had time to react to.
func (p *player) act(ctrl *game.Controller, surf *surface, now time.Duration) {
	for _, t := range surf.live() {
		if p.attempted[t.ID] || now-t.SpawnedAt < p.reaction {
			continue
		}
		p.attempted[t.ID] = true

		if p.rng.Float64() < p.skill {
			cx, cy := t.Bounds().Center()
			ctrl.AreaClicked(pointAt(cx, cy))
			return
		}
		if miss, ok := surf.missNear(t); ok {
			ctrl.AreaClicked(miss)
		}
		return
	}
}
