package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-aim/internal/core"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		hits, clicks int
		expected     int
	}{
		{0, 0, 0},
		{5, 0, 100},
		{0, 4, 0},
		{10, 12, 83},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{7, 7, 100},
	}

	for _, tc := range tests {
		if got := Accuracy(tc.hits, tc.clicks); got != tc.expected {
			t.Errorf("Accuracy(%d, %d) = %d, expected %d", tc.hits, tc.clicks, got, tc.expected)
		}
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		hits, spawned int
		expected      int
	}{
		{0, 0, 0},
		{10, 20, 50},
		{0, 9, 0},
		{1, 200, 1},
		{1, 201, 0},
		{92, 92, 100},
	}

	for _, tc := range tests {
		if got := Efficiency(tc.hits, tc.spawned); got != tc.expected {
			t.Errorf("Efficiency(%d, %d) = %d, expected %d", tc.hits, tc.spawned, got, tc.expected)
		}
	}
}

func TestResultsLines(t *testing.T) {
	r := SessionState{Score: 10, Hits: 10, TargetsSpawned: 20, Clicks: 12}.results(mediumSettings, EndEarly)

	if got := r.HitsLine(); got != "10 Hits" {
		t.Errorf("HitsLine() = %q, expected %q", got, "10 Hits")
	}
	if got := r.TargetsNote(); got != "10 Hits / 20 Targets • 50% Efficiency" {
		t.Errorf("TargetsNote() = %q", got)
	}
	if got := r.AccuracyNote(); got != "10 / 12 Hits/Clicks" {
		t.Errorf("AccuracyNote() = %q", got)
	}
}

func TestSessionReset(t *testing.T) {
	s := SessionState{Running: true, TimeLeft: 3, Score: 4, TargetsSpawned: 9, Hits: 4, Clicks: 6}
	if s.Misses() != 2 {
		t.Errorf("Misses() = %d, expected 2", s.Misses())
	}

	s.reset(30)
	if s != (SessionState{TimeLeft: 30}) {
		t.Errorf("reset(30) = %+v", s)
	}
}

func TestTargetResolveFirstWriteWins(t *testing.T) {
	tests := []struct {
		name     string
		first    Status
		second   Status
		expected Status
	}{
		{"hit then expire", StatusHit, StatusExpired, StatusHit},
		{"expire then hit", StatusExpired, StatusHit, StatusExpired},
		{"hit twice", StatusHit, StatusHit, StatusHit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tgt := &Target{ID: 1, Size: 10}
			if !tgt.resolve(tc.first) {
				t.Fatal("first resolve should succeed")
			}
			if tgt.resolve(tc.second) {
				t.Error("second resolve should fail")
			}
			if tgt.Status != tc.expected {
				t.Errorf("Status = %s, expected %s", tgt.Status, tc.expected)
			}
		})
	}

	tgt := &Target{}
	if tgt.resolve(StatusPending) {
		t.Error("resolve(StatusPending) should fail")
	}
}

func TestTargetGeometry(t *testing.T) {
	tgt := Target{X: 100, Y: 50, Size: 60, Life: 2 * time.Second, SpawnedAt: time.Second}

	tests := []struct {
		p        core.Point
		expected bool
	}{
		{core.Point{X: 130, Y: 80}, true},
		{core.Point{X: 100, Y: 80}, true},
		{core.Point{X: 101, Y: 51}, false}, // Box corner, outside the circle
		{core.Point{X: 161, Y: 80}, false},
	}
	for _, tc := range tests {
		if got := tgt.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}

	if tgt.ExpiresAt() != 3*time.Second {
		t.Errorf("ExpiresAt() = %v, expected 3s", tgt.ExpiresAt())
	}
	if got := tgt.LifeLeft(2 * time.Second); got != 0.5 {
		t.Errorf("LifeLeft(2s) = %v, expected 0.5", got)
	}
	if got := tgt.LifeLeft(10 * time.Second); got != 0 {
		t.Errorf("LifeLeft(10s) = %v, expected 0", got)
	}
}
