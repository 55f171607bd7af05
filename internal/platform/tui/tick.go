// Package tui is the terminal surface of the aim trainer. It runs the Bubble
// Tea loop that drives the session clock, maps mouse clicks on terminal cells
// to play-area pixels and renders the settings, game and results panels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame; the model advances the scheduler on it.
type TickMsg time.Time

// frameInterval is the wall-clock gap between ticks at fps frames per second.
func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(max(fps, 1))
}

// tickCmd schedules the next frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
