package tui

import (
	"testing"

	"github.com/vovakirdan/tui-aim/internal/config"
)

func TestSettingsFormSizeSlider(t *testing.T) {
	bounds := config.PanelConfig{MinSize: 20, MaxSize: 120, SizeStep: 5}

	tests := []struct {
		name     string
		start    int
		delta    int
		expected int
	}{
		{"step up", 60, 1, 65},
		{"step down", 60, -1, 55},
		{"stops at max", 118, 1, 120},
		{"stops at min", 22, -1, 20},
		{"out of range value pulled in", 500, -1, 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newSettingsForm(config.Settings{BubbleSize: tc.start, Duration: 60, Difficulty: config.DifficultyMedium}, bounds)
			f.adjust(tc.delta)
			if f.settings.BubbleSize != tc.expected {
				t.Errorf("BubbleSize = %d, expected %d", f.settings.BubbleSize, tc.expected)
			}
		})
	}
}

func TestSettingsFormInvertedBounds(t *testing.T) {
	f := newSettingsForm(config.Settings{BubbleSize: 60}, config.PanelConfig{MinSize: 100, MaxSize: 50, SizeStep: 10})
	f.adjust(1)
	if f.settings.BubbleSize != 70 {
		t.Errorf("BubbleSize = %d, expected 70 with no usable bounds", f.settings.BubbleSize)
	}
}
