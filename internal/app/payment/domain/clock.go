package domain

import "time"

// Clock stamps charge and refund outcomes
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// StoppedClock always reports the same instant, for tests
type StoppedClock struct {
	At time.Time
}

func (c StoppedClock) Now() time.Time {
	return c.At
}
