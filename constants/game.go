package constants

import "time"

// Game Loop Timing Constants
const (
	// TickDelay is the pacing delay after each consumed command
	TickDelay = 150 * time.Millisecond

	// MenuRetryDelay is the pause shown after an invalid menu selection
	MenuRetryDelay = 500 * time.Millisecond
)
