// Package clock supplies the current time to the rest of adate.
package clock

import (
	"time"

	"github.com/mph-llm-experiments/adate/internal/chrono"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock, in local time unless UTC is set.
type System struct {
	UTC bool
}

func (s System) Now() time.Time {
	if s.UTC {
		return time.Now().UTC()
	}
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Today returns the calendar date of c.Now().
func Today(c Clock) chrono.Date {
	return chrono.DateOf(c.Now())
}

var (
	// Earliest and Latest bound FromUnixMilli.
	Earliest = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	Latest   = time.Date(9999, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
)

// UnixMilli returns t as milliseconds since the Unix epoch.
func UnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// FromUnixMilli converts milliseconds since the Unix epoch to a UTC time.
// Values outside [Earliest, Latest] are clamped rather than overflowing.
func FromUnixMilli(ms int64) time.Time {
	if ms > Latest.UnixMilli() {
		return Latest
	}
	if ms < Earliest.UnixMilli() {
		return Earliest
	}
	return time.UnixMilli(ms).UTC()
}
