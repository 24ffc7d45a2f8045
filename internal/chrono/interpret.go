// Package chrono interprets loosely formatted numeric dates such as
// "13/1/24" or "2024-1-13".
//
// Component order and the century of a two-digit year are inferred. A
// context date breaks ties and an inclusive range bounds the answer.
// Every Result carries a Confidence grade and a Format naming the source
// position of the month, the day and the year.
package chrono

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange        = errors.New("minimum date is after maximum date")
	ErrContextOutsideRange = errors.New("context date is outside the range")
)

// Anchors are the dates an interpretation is made against.
type Anchors struct {
	// Context breaks ties between equally plausible readings, usually today.
	Context Date
	// Min and Max bound acceptable results, inclusive.
	Min Date
	Max Date
}

// Contains reports whether d lies within [Min, Max].
func (a Anchors) Contains(d Date) bool {
	return !d.Before(a.Min) && !d.After(a.Max)
}

// Validate checks the anchors for consistency. Interpret does not call
// it; callers decide whether an inconsistent window is an error.
func (a Anchors) Validate() error {
	if a.Min.After(a.Max) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange, a.Min, a.Max)
	}
	if !a.Contains(a.Context) {
		return fmt.Errorf("%w: %s not in [%s, %s]", ErrContextOutsideRange, a.Context, a.Min, a.Max)
	}
	return nil
}

// Interpret reads raw against the anchors.
func (a Anchors) Interpret(raw string) Result {
	in, ok := extractComponents(raw)
	if !ok {
		return invalidResult()
	}
	// Two-component dates pass validation but are not resolved yet.
	if in.n != 3 {
		return invalidResult()
	}
	return newResolution(in, a).
		resolveYear().
		resolveMonthDay().
		result()
}

// Interpret reads raw as a numeric date. context breaks ties and the
// result must fall within [min, max]. Malformed input yields an
// InvalidDate result; Interpret never panics.
func Interpret(raw string, context, min, max Date) Result {
	return Anchors{Context: context, Min: min, Max: max}.Interpret(raw)
}

// Result is the outcome of an interpretation.
type Result struct {
	// Date is meaningful only when Format.OK() is true.
	Date       Date
	Format     Format
	Confidence Confidence
}

// OK reports whether a date was resolved.
func (r Result) OK() bool {
	return r.Format.OK()
}

// AtLeast reports whether a date was resolved with at least confidence c.
func (r Result) AtLeast(c Confidence) bool {
	return r.OK() && r.Confidence >= c
}

func invalidResult() Result {
	return Result{Date: MinDate, Format: Failed(InvalidDate), Confidence: ConfidenceNone}
}
