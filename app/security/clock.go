package security

import "time"

// SystemClock is the production clock.
type SystemClock struct{}

// Now implements port.Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
