package game

import (
	"time"

	"github.com/vovakirdan/tui-aim/internal/core"
)

// TargetID identifies a bubble within one session. IDs start at 1.
type TargetID int

// Status is the lifecycle state of a target.
type Status int

const (
	StatusPending Status = iota // Clickable
	StatusHit                   // Clicked before expiry
	StatusExpired               // Lifetime elapsed first
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusHit:
		return "hit"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Target is a bubble: a square box of Size px at (X, Y) holding a circle.
type Target struct {
	ID        TargetID
	X, Y      int           // Top-left corner in play-area px
	Size      int           // Diameter in px
	Life      time.Duration // Time from spawn to expiry
	SpawnedAt time.Duration // Scheduler time of the spawn tick
	Status    Status
}

// Bounds returns the bounding box of the bubble.
func (t Target) Bounds() core.Rect {
	return core.NewRect(t.X, t.Y, t.Size, t.Size)
}

// Contains reports whether p lands on the bubble's circle.
func (t Target) Contains(p core.Point) bool {
	return t.Bounds().EllipseContains(p.X, p.Y)
}

// ExpiresAt returns the last scheduler instant at which the bubble can be hit.
func (t Target) ExpiresAt() time.Duration {
	return t.SpawnedAt + t.Life
}

// LifeLeft returns the remaining fraction of the lifetime at now, in [0, 1].
func (t Target) LifeLeft(now time.Duration) float64 {
	if t.Life <= 0 {
		return 0
	}
	left := float64(t.ExpiresAt()-now) / float64(t.Life)
	return max(0, min(1, left))
}

// resolve moves a pending target to a terminal status.
// First write wins: it returns false if the status was already terminal.
func (t *Target) resolve(to Status) bool {
	if t.Status != StatusPending || to == StatusPending {
		return false
	}
	t.Status = to
	return true
}
