// Package clock provides time to repositories and services so tests can pin it
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock -source=clock.go

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns the current UTC time
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return systemClock{}
}
