package alert

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// clock supplies the sent time of alerts made by New. Tests replace it
// through SetClock.
var clock = clockwork.NewRealClock()

// SetClock sets the time source used by New. Pass nil to reset to real
// time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// New returns a CAP 1.2 Alert with a fresh identifier and the current
// time, truncated to the second, as its sent time.
func New() *Alert {
	sent := clock.Now().Truncate(time.Second)
	return &Alert{
		Version:    Version1_2,
		Identifier: uuid.NewString(),
		Sent:       &sent,
	}
}
