package clock

import "time"

// Clock supplies the current wall-clock time. Every date comparison in the
// engine ("today", "this month", "last 24 hours") goes through a Clock.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
