package config

import (
	_ "embed"
)

//go:embed defaults/aim.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, mirroring defaults/aim.yaml.
func Default() Config {
	return Config{
		Settings: Settings{
			BubbleSize: 60,
			Duration:   60,
			Difficulty: DifficultyMedium,
		},
		Countdown: CountdownConfig{
			From:   3,
			StepMS: 700,
		},
		Panel: PanelConfig{
			MinSize:   20,
			MaxSize:   120,
			SizeStep:  5,
			Durations: []int{15, 30, 45, 60, 90, 120},
		},
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// fillDefaults replaces zero values left by a partial file with defaults.
// Settings are not filled: a zero size or duration in a file is an error the
// user should see from Validate.
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.Settings == (Settings{}) {
		cfg.Settings = def.Settings
	}
	if cfg.Countdown.From <= 0 {
		cfg.Countdown.From = def.Countdown.From
	}
	if cfg.Countdown.StepMS <= 0 {
		cfg.Countdown.StepMS = def.Countdown.StepMS
	}
	if cfg.Panel.MinSize <= 0 {
		cfg.Panel.MinSize = def.Panel.MinSize
	}
	if cfg.Panel.MaxSize < cfg.Panel.MinSize {
		cfg.Panel.MaxSize = max(def.Panel.MaxSize, cfg.Panel.MinSize)
	}
	if cfg.Panel.SizeStep <= 0 {
		cfg.Panel.SizeStep = def.Panel.SizeStep
	}
	if len(cfg.Panel.Durations) == 0 {
		cfg.Panel.Durations = def.Panel.Durations
	}
	if cfg.Display.CellWidth <= 0 {
		cfg.Display.CellWidth = def.Display.CellWidth
	}
	if cfg.Display.CellHeight <= 0 {
		cfg.Display.CellHeight = def.Display.CellHeight
	}
}
