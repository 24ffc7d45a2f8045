package chrono

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Failure -output=failure_string.go

// Failure names the reason an interpretation did not produce a date.
// The numeric values are the legacy format codes for each failure.
type Failure int

const (
	// Unspecified means resolution stopped before assigning every slot.
	Unspecified Failure = iota
	// BelowMinimumThreshold means the only candidate precedes the minimum.
	BelowMinimumThreshold
	// AboveMaximumThreshold means the only candidate follows the maximum.
	AboveMaximumThreshold
	// OutOfRange means no year or month/day ordering fits the range.
	OutOfRange
	// InvalidDate means the input is malformed or contradicts the calendar.
	InvalidDate
)

// severity orders failures so a resolution never trades a terminal
// failure for a milder one.
func (f Failure) severity() int {
	switch f {
	case InvalidDate:
		return 3
	case OutOfRange:
		return 2
	case BelowMinimumThreshold, AboveMaximumThreshold:
		return 1
	default:
		return 0
	}
}

// NoSlot marks a role with no source position, as for the year of a
// two-component date.
const NoSlot = -1

// Layout records which source position held each date role.
type Layout struct {
	Month int
	Day   int
	Year  int
}

var (
	MonthDayYear = Layout{Month: 0, Day: 1, Year: 2}
	DayMonthYear = Layout{Month: 1, Day: 0, Year: 2}
	YearMonthDay = Layout{Month: 1, Day: 2, Year: 0}
	YearDayMonth = Layout{Month: 2, Day: 1, Year: 0}

	// Two-component layouts. Interpret never produces these yet; they
	// exist so legacy codes decode.
	ImpliedYearMonthDay = Layout{Month: 0, Day: 1, Year: NoSlot}
	ImpliedYearDayMonth = Layout{Month: 1, Day: 0, Year: NoSlot}
)

// Layouts lists every layout with a legacy code, in code order.
var Layouts = []Layout{
	ImpliedYearMonthDay,
	MonthDayYear,
	ImpliedYearDayMonth,
	DayMonthYear,
	YearMonthDay,
	YearDayMonth,
}

// Code is the legacy positional encoding month*100 + day*10 + year.
func (l Layout) Code() int {
	code := l.Month*100 + l.Day*10
	if l.Year != NoSlot {
		code += l.Year
	}
	return code
}

// Len is the number of source components the layout describes.
func (l Layout) Len() int {
	if l.Year == NoSlot {
		return 2
	}
	return 3
}

// Arrange places month, day and year back into source order.
func (l Layout) Arrange(month, day, year int) []int {
	out := make([]int, l.Len())
	out[l.Month] = month
	out[l.Day] = day
	if l.Year != NoSlot {
		out[l.Year] = year
	}
	return out
}

// String names the roles in source order, e.g. "day-month-year".
func (l Layout) String() string {
	if !l.valid() {
		return fmt.Sprintf("Layout(%d,%d,%d)", l.Month, l.Day, l.Year)
	}
	parts := make([]string, l.Len())
	parts[l.Month] = "month"
	parts[l.Day] = "day"
	if l.Year != NoSlot {
		parts[l.Year] = "year"
	}
	return strings.Join(parts, "-")
}

func (l Layout) valid() bool {
	n := l.Len()
	in := func(slot int) bool { return slot >= 0 && slot < n }
	if !in(l.Month) || !in(l.Day) || l.Month == l.Day {
		return false
	}
	if l.Year == NoSlot {
		return true
	}
	return in(l.Year) && l.Year != l.Month && l.Year != l.Day
}

// Format is either a resolved Layout or a Failure. The zero Format is an
// Unspecified failure.
type Format struct {
	layout   Layout
	failure  Failure
	resolved bool
}

// Resolved returns the Format for a successful interpretation.
func Resolved(l Layout) Format {
	return Format{layout: l, resolved: true}
}

// Failed returns the Format for a failed interpretation.
func Failed(f Failure) Format {
	return Format{failure: f}
}

// OK reports whether the format describes a resolved layout.
func (f Format) OK() bool { return f.resolved }

// Layout returns the resolved layout, if any.
func (f Format) Layout() (Layout, bool) {
	return f.layout, f.resolved
}

// Failure returns the failure, if the format is not resolved.
func (f Format) Failure() (Failure, bool) {
	return f.failure, !f.resolved
}

// Is reports whether f is the given failure.
func (f Format) Is(failure Failure) bool {
	return !f.resolved && f.failure == failure
}

// Code returns the legacy integer encoding of f.
func (f Format) Code() int {
	if f.resolved {
		return f.layout.Code()
	}
	return int(f.failure)
}

func (f Format) String() string {
	if f.resolved {
		return f.layout.String()
	}
	return f.failure.String()
}

// MarshalText renders the format name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// FormatFromCode decodes a legacy integer encoding.
func FormatFromCode(code int) (Format, error) {
	if code >= int(Unspecified) && code <= int(InvalidDate) {
		return Failed(Failure(code)), nil
	}
	for _, l := range Layouts {
		if l.Code() == code {
			return Resolved(l), nil
		}
	}
	return Format{}, fmt.Errorf("unknown format code %d", code)
}
