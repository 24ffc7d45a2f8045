package chrono

import "time"

func monthOf(v int) time.Month { return time.Month(v) }

// resolveMonthDay assigns month and day to the two positions left over
// by the year and settles on a date.
func (r resolution) resolveMonthDay() resolution {
	md := r.in.others(r.yearSlot)

	if r.failed {
		r.monthSlot, r.daySlot = md[0], md[1]
		if r.failure != OutOfRange || len(r.years) == 0 {
			return r
		}
		// The year is already out of range, so this date is only a
		// placeholder in source order.
		if d, ok := r.build(r.years[0], md[0], md[1]); ok {
			return r.withDate(d)
		}
		return r.fail(InvalidDate)
	}

	a, b := r.in.values[md[0]], r.in.values[md[1]]
	if (a > 12 && b > 12) || a > 31 || b > 31 {
		r.monthSlot, r.daySlot = md[0], md[1]
		return r.fail(InvalidDate)
	}

	switch {
	case a > 12:
		return r.knownMonth(md[1], md[0])
	case b > 12 || a == b:
		return r.knownMonth(md[0], md[1])
	}
	return r.ambiguousMonth(md)
}

// knownMonth resolves a date whose month position is certain.
func (r resolution) knownMonth(monthSlot, daySlot int) resolution {
	r.monthSlot, r.daySlot = monthSlot, daySlot

	var candidates []Date
	for _, y := range r.years {
		if d, ok := r.build(y, monthSlot, daySlot); ok {
			candidates = append(candidates, d)
		}
	}

	switch len(candidates) {
	case 0:
		return r.fail(InvalidDate)
	case 1:
		r = r.withDate(candidates[0])
		r.confidence = scaleConfidence(r.confidence, ConfidenceHigh)
		switch {
		case r.date.Before(r.anchors.Min):
			return r.fail(BelowMinimumThreshold)
		case r.date.After(r.anchors.Max):
			return r.fail(AboveMaximumThreshold)
		}
		return r
	}

	best, unique := nearest(candidates, r.anchors.Context)
	r = r.withDate(best)
	if unique {
		r.confidence = scaleConfidence(r.confidence, ConfidenceMedium)
	} else {
		r.confidence = ConfidenceNone
	}
	return r
}

// ambiguousMonth resolves a date where either remaining position could
// be the month. Both orderings are tried for every candidate year.
func (r resolution) ambiguousMonth(md [2]int) resolution {
	orders := [2][2]int{{md[0], md[1]}, {md[1], md[0]}}

	var candidates []Date
	for _, y := range r.years {
		for _, o := range orders {
			if d, ok := r.build(y, o[0], o[1]); ok && r.anchors.Contains(d) {
				candidates = append(candidates, d)
			}
		}
	}

	if len(candidates) == 0 {
		r.monthSlot, r.daySlot = md[0], md[1]
		if d, ok := r.build(r.years[0], md[0], md[1]); ok {
			r = r.withDate(d)
		}
		return r.fail(OutOfRange)
	}

	yearConfidence := r.confidence
	var (
		pick       Date
		confidence Confidence
	)
	if len(candidates) == 1 {
		pick = candidates[0]
		confidence = scaleConfidence(yearConfidence, ConfidenceMedium)
	} else if d, ok := sameMonth(candidates, r.anchors.Context); ok {
		pick = d
		confidence = scaleConfidence(yearConfidence, ConfidenceMedium)
	} else {
		var unique bool
		pick, unique = nearest(candidates, r.anchors.Context)
		confidence = ConfidenceNone
		if unique {
			confidence = scaleConfidence(yearConfidence, ConfidenceLow)
		}
	}

	r = r.withDate(pick)
	r.confidence = confidence
	// The two values differ, so the chosen date names its positions.
	r.monthSlot, r.daySlot = md[0], md[1]
	if r.in.values[md[0]] != int(pick.Month) {
		r.monthSlot, r.daySlot = md[1], md[0]
	}
	return r
}

// nearest returns the first candidate closest to context and reports
// whether no other candidate is equally close.
func nearest(candidates []Date, context Date) (Date, bool) {
	best, bestDist, ties := Date{}, -1, 0
	for _, c := range candidates {
		d := DaysBetween(c, context)
		switch {
		case bestDist < 0 || d < bestDist:
			best, bestDist, ties = c, d, 1
		case d == bestDist:
			ties++
		}
	}
	return best, ties == 1
}

// sameMonth returns the first candidate in the context's month and year.
func sameMonth(candidates []Date, context Date) (Date, bool) {
	for _, c := range candidates {
		if c.Year == context.Year && c.Month == context.Month {
			return c, true
		}
	}
	return Date{}, false
}
