package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-aim/internal/config"
	"github.com/vovakirdan/tui-aim/internal/game"
)

func settings(d config.Difficulty, duration int) config.Settings {
	return config.Settings{BubbleSize: 60, Duration: duration, Difficulty: d}
}

func TestRunPerfectPlayer(t *testing.T) {
	opts := DefaultOptions()
	opts.Skill = 1
	opts.Reaction = 0
	opts.Seed = 11

	r, err := Run(context.Background(), settings(config.DifficultyMedium, 60), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if r.TargetsSpawned != 92 {
		t.Errorf("TargetsSpawned = %d, expected 92", r.TargetsSpawned)
	}
	if r.Hits != r.TargetsSpawned {
		t.Errorf("Hits = %d, expected every bubble (%d)", r.Hits, r.TargetsSpawned)
	}
	if r.Accuracy != 100 || r.Efficiency != 100 {
		t.Errorf("Accuracy = %d, Efficiency = %d; expected 100 and 100", r.Accuracy, r.Efficiency)
	}
	if r.Expired != 0 {
		t.Errorf("Expired = %d, expected 0", r.Expired)
	}
	if r.Reason != game.EndTimeUp || r.TimeLeft != 0 {
		t.Errorf("Reason = %s, TimeLeft = %d; expected time up at 0", r.Reason, r.TimeLeft)
	}
}

func TestRunHopelessPlayer(t *testing.T) {
	opts := DefaultOptions()
	opts.Skill = 0
	opts.Reaction = 0
	opts.Seed = 5

	r, err := Run(context.Background(), settings(config.DifficultyEasy, 20), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if r.Hits != 0 || r.Score != 0 {
		t.Errorf("Hits = %d, Score = %d; expected 0", r.Hits, r.Score)
	}
	if r.Clicks == 0 {
		t.Error("expected missed clicks")
	}
	if r.Accuracy != 0 || r.Efficiency != 0 {
		t.Errorf("Accuracy = %d, Efficiency = %d; expected 0", r.Accuracy, r.Efficiency)
	}
	// Everything but bubbles cleared at the end timed out
	if r.Expired > r.TargetsSpawned || r.Expired == 0 {
		t.Errorf("Expired = %d of %d spawned", r.Expired, r.TargetsSpawned)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 99

	first, err := Run(context.Background(), settings(config.DifficultyHard, 30), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	second, err := Run(context.Background(), settings(config.DifficultyHard, 30), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if first != second {
		t.Errorf("Run() = %+v then %+v with the same seed", first, second)
	}
	if first.Hits > first.Clicks || first.Hits > first.TargetsSpawned {
		t.Errorf("Results %+v break invariants", first.Results)
	}
}

func TestRunInvalidSettings(t *testing.T) {
	_, err := Run(context.Background(), config.Settings{BubbleSize: -1, Duration: 10, Difficulty: config.DifficultyEasy}, DefaultOptions())

	var invalid *config.InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("Run() error = %v, expected *config.InvalidConfigError", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, settings(config.DifficultyMedium, 60), DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{Skill: 3, Reaction: -time.Second}.withDefaults()

	if o.Skill != 1 {
		t.Errorf("Skill = %v, expected clamp to 1", o.Skill)
	}
	if o.Reaction != 0 {
		t.Errorf("Reaction = %v, expected 0", o.Reaction)
	}
	if o.Step != DefaultStep || o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("withDefaults() = %+v", o)
	}
	if o.Seed == 0 || o.Logger == nil {
		t.Error("withDefaults() should fill seed and logger")
	}
}
