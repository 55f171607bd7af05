package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-aim/internal/config"
)

// SessionState holds the running totals of one session.
// Only the Controller mutates it.
type SessionState struct {
	Running        bool // True only while Active
	TimeLeft       int  // Seconds remaining, never negative
	Score          int
	TargetsSpawned int
	Hits           int // Always <= TargetsSpawned and <= Clicks
	Clicks         int // Hits plus misses
}

// reset zeroes every counter and sets the clock to duration seconds.
func (s *SessionState) reset(duration int) {
	*s = SessionState{TimeLeft: max(duration, 0)}
}

// Misses returns clicks that did not land on a live target.
func (s SessionState) Misses() int {
	return s.Clicks - s.Hits
}

// EndReason records how a session reached Ended.
type EndReason int

const (
	EndTimeUp EndReason = iota // Clock reached zero
	EndEarly                   // Player ended the round
)

// String returns a human-readable name for the end reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeUp:
		return "time up"
	case EndEarly:
		return "ended early"
	default:
		return "unknown"
	}
}

// Results is the frozen summary shown on the results panel.
type Results struct {
	Settings       config.Settings
	Reason         EndReason
	Score          int
	Hits           int
	TargetsSpawned int
	Clicks         int
	Accuracy       int // Percent of clicks that hit
	Efficiency     int // Percent of spawned bubbles that were hit
	TimeLeft       int // Seconds remaining when the session ended
}

// results derives the summary from the state at the moment of the transition.
func (s SessionState) results(settings config.Settings, reason EndReason) Results {
	return Results{
		Settings:       settings,
		Reason:         reason,
		Score:          s.Score,
		Hits:           s.Hits,
		TargetsSpawned: s.TargetsSpawned,
		Clicks:         s.Clicks,
		Accuracy:       Accuracy(s.Hits, s.Clicks),
		Efficiency:     Efficiency(s.Hits, s.TargetsSpawned),
		TimeLeft:       s.TimeLeft,
	}
}

// Accuracy returns round(hits/clicks*100). With no clicks it returns 100 if
// there were hits and 0 otherwise; hits without clicks cannot happen through
// the Controller.
func Accuracy(hits, clicks int) int {
	if clicks > 0 {
		return percent(hits, clicks)
	}
	if hits > 0 {
		return 100
	}
	return 0
}

// Efficiency returns round(hits/spawned*100), or 0 when nothing spawned.
func Efficiency(hits, spawned int) int {
	if spawned > 0 {
		return percent(hits, spawned)
	}
	return 0
}

func percent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// HitsLine is the headline under the score, e.g. "10 Hits".
func (r Results) HitsLine() string {
	return fmt.Sprintf("%d Hits", r.Hits)
}

// TargetsNote summarizes efficiency, e.g. "10 Hits / 20 Targets • 50% Efficiency".
func (r Results) TargetsNote() string {
	return fmt.Sprintf("%d Hits / %d Targets • %d%% Efficiency", r.Hits, r.TargetsSpawned, r.Efficiency)
}

// AccuracyNote summarizes accuracy, e.g. "10 / 12 Hits/Clicks".
func (r Results) AccuracyNote() string {
	return fmt.Sprintf("%d / %d Hits/Clicks", r.Hits, r.Clicks)
}
