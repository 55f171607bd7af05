package config

import (
	"strings"
	"time"
)

// Difficulty names one of the fixed spawn/lifetime presets.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the presets in panel order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Preset is the spawn cadence and bubble lifetime bound to a difficulty.
type Preset struct {
	SpawnEvery time.Duration // Interval between spawn ticks
	Life       time.Duration // How long a bubble stays clickable
}

// PresetFor returns the preset for d. The second value is false for an
// unrecognized difficulty.
func PresetFor(d Difficulty) (Preset, bool) {
	switch d {
	case DifficultyEasy:
		return Preset{SpawnEvery: 900 * time.Millisecond, Life: 1800 * time.Millisecond}, true
	case DifficultyMedium:
		return Preset{SpawnEvery: 650 * time.Millisecond, Life: 1300 * time.Millisecond}, true
	case DifficultyHard:
		return Preset{SpawnEvery: 520 * time.Millisecond, Life: 1000 * time.Millisecond}, true
	default:
		return Preset{}, false
	}
}

// ParseDifficulty normalizes user input ("Hard", " easy ") to a Difficulty.
// Unknown names are returned as-is so validation can report them.
func ParseDifficulty(s string) Difficulty {
	return Difficulty(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether d names a known preset.
func (d Difficulty) Valid() bool {
	_, ok := PresetFor(d)
	return ok
}

// Title returns the display name for the panel.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return d.shift(1)
}

// Prev returns the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	return d.shift(-1)
}

func (d Difficulty) shift(by int) Difficulty {
	idx := 1 // medium if d is unknown
	for i, v := range Difficulties {
		if v == d {
			idx = i
			break
		}
	}
	n := len(Difficulties)
	return Difficulties[((idx+by)%n+n)%n]
}
