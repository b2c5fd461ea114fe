// Package clock provides an injectable time source so that validity checks
// and deletion timestamps stay deterministic under test.
package clock

import "time"

// Clock is the source of "now" for the store, the validator, and the
// scheduler.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

// Fixed is a Clock frozen at a single instant. Tests mutate T directly to
// advance time.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

// FixedAt returns a Clock frozen at t.
func FixedAt(t time.Time) *Fixed {
	return &Fixed{T: t}
}

// DefaultTime returns the initial value for a freshly enabled time-of-day
// selection: one minute from now, so the default passes the strict
// minute-of-day check.
func DefaultTime(c Clock) time.Time {
	return c.Now().Add(time.Minute)
}
