package core

// RuntimeConfig contains terminal and timing parameters for one session.
// The surface uses it to size the play area and pace the scheduler.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving the scheduler (default 60)
	Seed     int64 // RNG seed for bubble placement; 0 = time-based
	CellW    int   // Pixels per column
	CellH    int   // Pixels per row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    8,
		CellH:    16,
	}
}
