package clock

import "time"

// Clock is the time source for match timestamps and durations.
// Swapping it out lets tests pin the clock to a fixed instant.
type Clock interface {
	Now() time.Time

	// Since reports the time elapsed since t
	Since(t time.Time) time.Duration
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since reports the time elapsed since t
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
