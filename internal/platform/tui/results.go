package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-aim/internal/game"
)

var (
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
	hitsStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// resultsTitle returns the banner for how the session ended.
func resultsTitle(r game.Results) string {
	if r.Reason == game.EndTimeUp {
		return "TIME'S UP"
	}
	return "ROUND ENDED"
}

// resultsTable builds the breakdown shown under the score.
func resultsTable(r game.Results) table.Model {
	columns := []table.Column{
		{Title: "Stat", Width: 14},
		{Title: "Value", Width: 16},
	}
	rows := []table.Row{
		{"Difficulty", r.Settings.Difficulty.Title()},
		{"Bubble size", fmt.Sprintf("%dpx", r.Settings.BubbleSize)},
		{"Duration", fmt.Sprintf("%ds", r.Settings.Duration)},
		{"Time left", fmt.Sprintf("%ds", r.TimeLeft)},
		{"Targets", strconv.Itoa(r.TargetsSpawned)},
		{"Clicks", strconv.Itoa(r.Clicks)},
		{"Misses", strconv.Itoa(r.Clicks - r.Hits)},
		{"Accuracy", fmt.Sprintf("%d%%", r.Accuracy)},
		{"Efficiency", fmt.Sprintf("%d%%", r.Efficiency)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// resultsView renders the results panel body.
func resultsView(r game.Results) string {
	summary := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(resultsTitle(r)),
		"",
		scoreStyle.Render(fmt.Sprintf("Score %d", r.Score)),
		hitsStyle.Render(r.HitsLine()),
		noteStyle.Render(r.TargetsNote()),
		noteStyle.Render(r.AccuracyNote()),
	)
	return lipgloss.JoinVertical(lipgloss.Center,
		summary,
		"",
		boxStyle.Padding(0, 1).Render(resultsTable(r).View()),
	)
}
