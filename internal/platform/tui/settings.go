package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-aim/internal/config"
	"github.com/vovakirdan/tui-aim/internal/core"
)

// settingsField is a row of the settings panel.
type settingsField int

const (
	fieldSize settingsField = iota
	fieldDuration
	fieldDifficulty
	fieldCount
)

// settingsForm holds the values being edited on the settings panel.
type settingsForm struct {
	settings config.Settings
	bounds   config.PanelConfig
	cursor   settingsField
	err      string // Last rejected start, shown under the form
}

func newSettingsForm(settings config.Settings, bounds config.PanelConfig) *settingsForm {
	return &settingsForm{settings: settings, bounds: bounds}
}

// move shifts the cursor by delta rows, wrapping around.
func (f *settingsForm) move(delta int) {
	f.cursor = settingsField((int(f.cursor) + delta + int(fieldCount)) % int(fieldCount))
}

// adjust changes the field under the cursor by delta steps.
func (f *settingsForm) adjust(delta int) {
	f.err = ""
	switch f.cursor {
	case fieldSize:
		step := max(f.bounds.SizeStep, 1)
		size := f.settings.BubbleSize + delta*step
		if f.bounds.MaxSize >= f.bounds.MinSize {
			size = core.Clamp(size, f.bounds.MinSize, f.bounds.MaxSize)
		}
		f.settings.BubbleSize = size
	case fieldDuration:
		f.settings.Duration = f.nextDuration(delta)
	case fieldDifficulty:
		if delta > 0 {
			f.settings.Difficulty = f.settings.Difficulty.Next()
		} else {
			f.settings.Difficulty = f.settings.Difficulty.Prev()
		}
	}
}

// nextDuration steps through the configured durations. A duration that is not
// in the list snaps to the nearest option in the direction of travel.
func (f *settingsForm) nextDuration(delta int) int {
	options := f.bounds.Durations
	if len(options) == 0 {
		return max(f.settings.Duration+delta*15, 15)
	}
	cur := f.settings.Duration
	if delta > 0 {
		for _, d := range options {
			if d > cur {
				return d
			}
		}
		return options[len(options)-1]
	}
	for i := len(options) - 1; i >= 0; i-- {
		if options[i] < cur {
			return options[i]
		}
	}
	return options[0]
}

// sizeRatio returns the bubble size as a fraction of the slider range.
func (f *settingsForm) sizeRatio() float64 {
	span := f.bounds.MaxSize - f.bounds.MinSize
	if span <= 0 {
		return 1
	}
	return float64(f.settings.BubbleSize-f.bounds.MinSize) / float64(span)
}

// Shared panel styles
var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtitleStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle       = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("245"))
	activeLabelStyle = labelStyle.Bold(true).Foreground(lipgloss.Color("229"))
	valueStyle       = lipgloss.NewStyle().Width(12).Align(lipgloss.Center)
	activeValueStyle = valueStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	noteStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// view renders the settings form. bar draws the size slider.
func (f *settingsForm) view(bar progress.Model) string {
	preset := f.settings.Preset()
	rows := []struct {
		field settingsField
		label string
		value string
		note  string
	}{
		{fieldSize, "Bubble size", fmt.Sprintf("%dpx", f.settings.BubbleSize), bar.ViewAs(f.sizeRatio())},
		{fieldDuration, "Duration", fmt.Sprintf("%ds", f.settings.Duration), ""},
		{fieldDifficulty, "Difficulty", f.settings.Difficulty.Title(),
			fmt.Sprintf("spawn every %dms • lifetime %dms", preset.SpawnEvery.Milliseconds(), preset.Life.Milliseconds())},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n\n")
		}
		cursor := "  "
		label, value := labelStyle, valueStyle
		if r.field == f.cursor {
			cursor = "> "
			label, value = activeLabelStyle, activeValueStyle
		}
		b.WriteString(cursor)
		b.WriteString(label.Render(r.label))
		b.WriteString(value.Render("◀ " + r.value + " ▶"))
		if r.note != "" {
			b.WriteString("  ")
			b.WriteString(noteStyle.Render(r.note))
		}
	}

	form := boxStyle.Render(b.String())
	parts := []string{
		titleStyle.Render("AIM TRAINER"),
		subtitleStyle.Render("pop the bubbles before they vanish"),
		"",
		form,
	}
	if f.err != "" {
		parts = append(parts, errorStyle.Render(f.err))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
