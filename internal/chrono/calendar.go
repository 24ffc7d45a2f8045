package chrono

import (
	"fmt"
	"time"
)

// Date is a civil calendar date in the proleptic Gregorian calendar.
// It carries no time of day and no location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var (
	// MinDate is the earliest representable date. Failed interpretations
	// carry it as a placeholder.
	MinDate = Date{Year: 1, Month: time.January, Day: 1}
	// MaxDate is the latest representable date.
	MaxDate = Date{Year: 9999, Month: time.December, Day: 31}
)

const (
	minYear = 1
	maxYear = 9999
)

// NewDate returns the date for year, month and day, and reports whether
// that combination exists on the calendar.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	if year < minYear || year > maxYear {
		return Date{}, false
	}
	if month < time.January || month > time.December {
		return Date{}, false
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Time returns midnight of d in loc. A nil loc means UTC.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// IsZero reports whether d is the zero Date, which is not a valid date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// DaysBetween returns the absolute number of whole days between a and b.
func DaysBetween(a, b Date) int {
	n := a.ordinal() - b.ordinal()
	if n < 0 {
		return -n
	}
	return n
}

// ordinal counts days from the Unix epoch. time.Duration cannot span the
// full calendar, so the difference is taken on Unix seconds.
func (d Date) ordinal() int {
	return int(d.Time(time.UTC).Unix() / 86400)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for YYYY-MM-DD input.
// Empty text yields the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseISO(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseISO parses a strict YYYY-MM-DD date.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d, ok := NewDate(t.Year(), t.Month(), t.Day())
	if !ok {
		return Date{}, fmt.Errorf("invalid date %q: year out of range", s)
	}
	return d, nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
