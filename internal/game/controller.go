// Package game implements the aim trainer's session engine: the state machine
// that moves a session through countdown, play and results, the spawner that
// produces bubbles, and the scoring that summarizes a round.
//
// Everything runs on the goroutine that drives the clock.Scheduler and calls
// the Controller's input methods; nothing here is safe for concurrent use.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-aim/internal/clock"
	"github.com/vovakirdan/tui-aim/internal/config"
	"github.com/vovakirdan/tui-aim/internal/core"
)

// GameTick is the interval of the session clock.
const GameTick = time.Second

// Default countdown cadence.
const (
	DefaultCountdownFrom = 3
	DefaultCountdownStep = 700 * time.Millisecond
)

// Controller is the session state machine and the only mutator of
// SessionState.
type Controller struct {
	sched   *clock.Scheduler
	surface Surface
	logger  *log.Logger
	rng     *rand.Rand

	countdownFrom int
	countdownStep time.Duration

	phase     Phase
	settings  config.Settings
	state     SessionState
	countdown int
	timers    *clock.Group
	spawner   *Spawner
	results   Results
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for phase transitions and results.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed seeds bubble placement. Zero uses the current time.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCountdown overrides the countdown start value and step.
func WithCountdown(from int, step time.Duration) Option {
	return func(c *Controller) {
		if from > 0 {
			c.countdownFrom = from
		}
		if step > 0 {
			c.countdownStep = step
		}
	}
}

// NewController creates a controller in the Idle phase.
func NewController(sched *clock.Scheduler, surface Surface, opts ...Option) *Controller {
	c := &Controller{
		sched:         sched,
		surface:       surface,
		logger:        log.New(io.Discard),
		countdownFrom: DefaultCountdownFrom,
		countdownStep: DefaultCountdownStep,
		phase:         PhaseIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Start validates settings, resets the session and begins the countdown.
// An invalid configuration returns *config.InvalidConfigError and leaves
// the controller untouched. Starting while a session is in progress
// abandons it.
func (c *Controller) Start(settings config.Settings) error {
	if err := settings.Validate(); err != nil {
		c.logger.Warn("rejected settings", "settings", settings, "error", err)
		return err
	}

	c.cancelTimers()
	c.settings = settings
	c.state.reset(settings.Duration)
	c.results = Results{}
	c.timers = c.sched.NewGroup()
	c.spawner = NewSpawner(c.rng, c.sched, settings, c.surface.AreaSize)
	c.spawner.onSpawn = c.onSpawn
	c.spawner.onExpire = c.onExpire

	c.setPhase(PhaseCountdown)
	c.surface.ShowGame()
	c.surface.UpdateScore(c.state.Score)
	c.surface.UpdateTimeLeft(c.state.TimeLeft)

	c.countdown = c.countdownFrom
	c.surface.ShowCountdown(c.countdown)
	var tick *clock.Timer
	tick = c.timers.Every(c.countdownStep, func() {
		c.countdown--
		if c.countdown > 0 {
			c.surface.ShowCountdown(c.countdown)
			return
		}
		tick.Stop()
		c.surface.HideCountdown()
		c.activate()
	})
	return nil
}

// activate enters the Active phase and starts the clock and spawner.
func (c *Controller) activate() {
	c.state.Running = true
	c.setPhase(PhaseActive)
	c.timers.Every(GameTick, c.onGameTick)
	c.spawner.Start(c.timers)
}

func (c *Controller) onGameTick() {
	if !c.state.Running {
		return
	}
	if c.state.TimeLeft > 0 {
		c.state.TimeLeft--
	}
	c.surface.UpdateTimeLeft(c.state.TimeLeft)
	if c.state.TimeLeft <= 0 {
		c.end(EndTimeUp)
	}
}

func (c *Controller) onSpawn(t Target) {
	c.state.TargetsSpawned++
	c.surface.RenderTarget(t)
}

func (c *Controller) onExpire(t Target) {
	c.surface.RemoveTarget(t.ID, StatusExpired)
}

// EndEarly ends an active session. It does nothing in any other phase.
func (c *Controller) EndEarly() {
	if c.phase != PhaseActive {
		return
	}
	c.end(EndEarly)
}

// end moves Active to Ended. Only the first call per session has an effect.
func (c *Controller) end(reason EndReason) {
	if !c.state.Running {
		return
	}
	c.state.Running = false
	c.cancelTimers()
	c.spawner.Clear()

	c.results = c.state.results(c.settings, reason)
	c.setPhase(PhaseEnded)
	c.logger.Info("session ended",
		"reason", reason,
		"score", c.results.Score,
		"hits", c.results.Hits,
		"targets", c.results.TargetsSpawned,
		"clicks", c.results.Clicks,
		"accuracy", c.results.Accuracy,
		"efficiency", c.results.Efficiency,
	)
	c.surface.ShowResults(c.results)
}

// TargetClicked records a click on bubble id. Clicks on bubbles that already
// expired or were already hit are ignored, as is anything outside Active.
func (c *Controller) TargetClicked(id TargetID) {
	if c.phase != PhaseActive {
		return
	}
	if _, ok := c.spawner.Hit(id); !ok {
		c.logger.Debug("stale target click", "id", id)
		return
	}
	c.state.Hits++
	c.state.Clicks++
	c.state.Score++
	c.surface.RemoveTarget(id, StatusHit)
	c.surface.UpdateScore(c.state.Score)
}

// AreaClicked records a click at p. A click inside a live bubble counts as a
// hit on the topmost one; anything else is a miss.
func (c *Controller) AreaClicked(p core.Point) {
	if c.phase != PhaseActive {
		return
	}
	if id, ok := c.spawner.TargetAt(p); ok {
		c.TargetClicked(id)
		return
	}
	c.state.Clicks++
	c.surface.ShowMiss(p)
}

// BackToSettings returns from the results panel to the settings panel.
func (c *Controller) BackToSettings() {
	if c.phase != PhaseEnded {
		return
	}
	c.setPhase(PhaseIdle)
	c.surface.ShowSettings()
}

// Restart starts a new session with the previous settings from the results
// panel.
func (c *Controller) Restart() error {
	if c.phase != PhaseEnded {
		return nil
	}
	return c.Start(c.settings)
}

func (c *Controller) cancelTimers() {
	if c.timers == nil {
		return
	}
	if n := c.timers.Cancel(); n > 0 {
		c.logger.Debug("cancelled timers", "count", n)
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.logger.Debug("phase", "from", c.phase, "to", p, "at", c.sched.Now())
	c.phase = p
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// State returns a copy of the session totals.
func (c *Controller) State() SessionState {
	return c.state
}

// Settings returns the settings of the current or last session.
func (c *Controller) Settings() config.Settings {
	return c.settings
}

// Countdown returns the value currently shown by the countdown.
func (c *Controller) Countdown() int {
	if c.phase != PhaseCountdown {
		return 0
	}
	return c.countdown
}

// Results returns the summary of the last ended session.
func (c *Controller) Results() (Results, bool) {
	return c.results, c.phase == PhaseEnded
}

// LiveTargets returns the bubbles currently on the play area.
func (c *Controller) LiveTargets() []Target {
	if c.spawner == nil || c.phase != PhaseActive {
		return nil
	}
	return c.spawner.Live()
}
