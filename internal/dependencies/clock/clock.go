// Package clock abstracts the wall clock so session lifetimes can be
// driven by a fixed time in tests.
package clock

import "time"

// Clock is the time source used wherever the current time matters
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New returns a Clock backed by the system clock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
