package adapter

import "time"

// Clock defines an interface for time operations to enable mocking
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Until(t time.Time) time.Duration
}

// RealClock implements Clock using the standard time package
type RealClock struct{}

// NewClock creates a new real clock implementation
func NewClock() Clock {
	return &RealClock{}
}

// Now returns the current time in UTC so stored deadlines compare consistently
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (c *RealClock) Until(t time.Time) time.Duration {
	return time.Until(t)
}

// FixedClock is a Clock frozen at a settable instant, used by tests and dry runs
type FixedClock struct {
	At time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.At
}

func (c *FixedClock) Since(t time.Time) time.Duration {
	return c.At.Sub(t)
}

func (c *FixedClock) Until(t time.Time) time.Duration {
	return t.Sub(c.At)
}

// Advance moves the clock forward by d
func (c *FixedClock) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
