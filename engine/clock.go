package engine

import "github.com/coder/quartz"

// Clock is the time source used to stamp hand ids for log correlation.
// It never drives betting logic — Reset/Step are pure state transitions
// over table state, not wall-clock events — but using quartz.Clock here
// rather than time.Now() directly lets tests pin hand ids with
// quartz.NewMock instead of asserting against real timestamps.
type Clock = quartz.Clock

// NewClock returns the real wall-clock implementation, the default for
// production use.
func NewClock() Clock {
	return quartz.NewReal()
}
