package ports

import "time"

// Clock is a monotonic time source measuring elapsed media time.
// It drives synchronization decisions when no audio clock is available.
type Clock interface {
	// Now returns the elapsed time since the epoch. Between consecutive
	// calls the value never decreases, except immediately after Reset
	// or Set.
	Now() time.Duration

	// Reset re-bases the epoch to the current instant, so that Now
	// returns zero again. Used on loop restart.
	Reset()

	// Set re-bases the epoch so that Now returns pos at the current
	// instant. Used on seek.
	Set(pos time.Duration)
}
