package game

import "github.com/vovakirdan/tui-aim/internal/core"

// Surface is the presentation side of a session. The Controller calls it with
// render instructions; the surface forwards player input back through the
// Controller's methods. Implementations must not call back into the
// Controller from inside these methods.
type Surface interface {
	// AreaSize returns the current play area in px. Queried on every spawn.
	AreaSize() (width, height int)

	// RenderTarget shows a newly spawned bubble.
	RenderTarget(t Target)

	// RemoveTarget takes a bubble off the play area. cause is StatusHit for
	// a pop and StatusExpired for a bubble that timed out.
	RemoveTarget(id TargetID, cause Status)

	// ShowMiss marks a click that hit nothing.
	ShowMiss(p core.Point)

	UpdateScore(score int)
	UpdateTimeLeft(seconds int)

	// ShowCountdown displays n during the pre-round countdown.
	ShowCountdown(n int)
	HideCountdown()

	ShowResults(r Results)
	ShowSettings()

	// ShowGame switches to the play area and clears any bubbles left from a
	// previous session.
	ShowGame()
}
