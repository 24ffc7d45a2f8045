// Package anchor parses the context and bound dates supplied on the
// command line.
package anchor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/mph-llm-experiments/acore"

	"github.com/mph-llm-experiments/adate/internal/chrono"
	"github.com/mph-llm-experiments/adate/internal/clock"
)

// ErrUnrecognized is returned when no parser accepts the input.
var ErrUnrecognized = errors.New("unrecognized date")

// Parse turns s into a calendar date. It accepts, in order:
//   - YYYY-MM-DD
//   - @<milliseconds since the Unix epoch>
//   - natural language such as "today" or "next friday"
//   - unambiguous timestamps such as "2024-01-15T10:00:00Z" or "Jan 15, 2024"
//
// An empty string means today according to c.
func Parse(s string, c clock.Clock) (chrono.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return clock.Today(c), nil
	}

	if d, err := chrono.ParseISO(s); err == nil {
		return d, nil
	}

	if rest, ok := strings.CutPrefix(s, "@"); ok {
		ms, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return chrono.Date{}, fmt.Errorf("%w: invalid epoch milliseconds %q", ErrUnrecognized, rest)
		}
		return chrono.DateOf(clock.FromUnixMilli(ms)), nil
	}

	if iso, err := acore.ParseNaturalDate(s); err == nil {
		if d, err := chrono.ParseISO(iso); err == nil {
			return d, nil
		}
	}

	// ParseStrict refuses dd/mm versus mm/dd guesses; those belong to the
	// interpreter, not to anchor parsing.
	if t, err := dateparse.ParseStrict(s); err == nil {
		if d, ok := chrono.NewDate(t.Year(), t.Month(), t.Day()); ok {
			return d, nil
		}
	}

	return chrono.Date{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
}

// Resolve parses the context, min and max strings into anchors. Empty
// bounds are filled from window, which receives the parsed context.
func Resolve(context, min, max string, c clock.Clock, window func(chrono.Date) (chrono.Date, chrono.Date, error)) (chrono.Anchors, error) {
	ctx, err := Parse(context, c)
	if err != nil {
		return chrono.Anchors{}, fmt.Errorf("context: %w", err)
	}
	lo, hi, err := window(ctx)
	if err != nil {
		return chrono.Anchors{}, err
	}
	if min != "" {
		if lo, err = Parse(min, c); err != nil {
			return chrono.Anchors{}, fmt.Errorf("min: %w", err)
		}
	}
	if max != "" {
		if hi, err = Parse(max, c); err != nil {
			return chrono.Anchors{}, fmt.Errorf("max: %w", err)
		}
	}
	return chrono.Anchors{Context: ctx, Min: lo, Max: hi}, nil
}
