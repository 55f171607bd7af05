// Package config provides YAML-based configuration loading, the fixed
// difficulty presets and validation of per-session settings.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Settings is the per-session configuration chosen on the settings panel.
// It is validated once by Validate and never changes during play.
type Settings struct {
	BubbleSize int        `yaml:"bubble_size"` // Bubble diameter in px
	Duration   int        `yaml:"duration"`    // Session length in seconds
	Difficulty Difficulty `yaml:"difficulty"`
}

// Preset returns the spawn preset for the settings' difficulty.
func (s Settings) Preset() Preset {
	p, _ := PresetFor(s.Difficulty)
	return p
}

// String formats settings for logs and result headers.
func (s Settings) String() string {
	return fmt.Sprintf("%dpx, %ds, %s", s.BubbleSize, s.Duration, s.Difficulty)
}

// Validate checks the settings and returns an *InvalidConfigError listing
// every problem, or nil.
func (s Settings) Validate() error {
	var problems []string
	if s.BubbleSize <= 0 {
		problems = append(problems, fmt.Sprintf("bubble size must be positive, got %d", s.BubbleSize))
	}
	if s.Duration <= 0 {
		problems = append(problems, fmt.Sprintf("duration must be positive, got %d", s.Duration))
	}
	if !s.Difficulty.Valid() {
		problems = append(problems, fmt.Sprintf("unknown difficulty %q", s.Difficulty))
	}
	if len(problems) > 0 {
		return &InvalidConfigError{Settings: s, Problems: problems}
	}
	return nil
}

// InvalidConfigError reports malformed session settings.
type InvalidConfigError struct {
	Settings Settings
	Problems []string
}

func (e *InvalidConfigError) Error() string {
	return "config: invalid settings: " + strings.Join(e.Problems, "; ")
}

// Config is the on-disk configuration file.
type Config struct {
	Settings  Settings        `yaml:"settings"`
	Countdown CountdownConfig `yaml:"countdown"`
	Panel     PanelConfig     `yaml:"panel"`
	Display   DisplayConfig   `yaml:"display"`
}

// CountdownConfig controls the pre-round 3-2-1 countdown.
type CountdownConfig struct {
	From   int `yaml:"from"`
	StepMS int `yaml:"step_ms"`
}

// Step returns the countdown tick interval.
func (c CountdownConfig) Step() time.Duration {
	return time.Duration(c.StepMS) * time.Millisecond
}

// PanelConfig bounds the settings panel controls.
type PanelConfig struct {
	MinSize   int   `yaml:"min_size"`
	MaxSize   int   `yaml:"max_size"`
	SizeStep  int   `yaml:"size_step"`
	Durations []int `yaml:"durations"`
}

// DisplayConfig maps terminal cells to the pixel units bubbles are sized in.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}
