// Package clock provides an abstraction for time operations to improve
// testability. Progress computation is time arithmetic from start to finish,
// so instead of calling time.Now() directly, engine code takes a Clock that
// can be fixed in tests to pin every percentage and classification.
package clock

import "time"

// Clock is an interface for time operations.
// This allows code to be tested with mock clocks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// Fixed returns a Clock pinned to t. Intended for tests and for replaying
// snapshots at a recorded instant.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
