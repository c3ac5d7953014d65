package timemath

import "time"

// Clock supplies the base time when the caller does not provide one.
// Injecting it keeps evaluation deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a Clock that always reports the same instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant in UTC.
func (c FixedClock) Now() time.Time {
	return c.Time.UTC()
}
