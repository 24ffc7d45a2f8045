package chrono

// yearSlots are the only positions a year may occupy.
var yearSlots = [2]int{0, 2}

// resolveYear picks the year position, its candidate years and the year
// confidence.
func (r resolution) resolveYear() resolution {
	v, digits := r.in.values, r.in.digits

	for _, i := range yearSlots {
		if digits[i] == 4 {
			r.yearSlot = i
			r.years = []int{v[i]}
			r.confidence = ConfidenceHigh
			return r
		}
	}

	// Two-digit years from here on. A single digit at either end rules
	// that end out.
	if digits[0] == 1 {
		return r.onlyYear(2)
	}
	if v[0] == v[2] || digits[2] == 1 {
		return r.onlyYear(0)
	}

	if v[0] > 31 && v[2] > 31 {
		r.yearSlot = 0
		return r.fail(InvalidDate)
	}
	for _, i := range yearSlots {
		if v[i] > 31 {
			return r.onlyYear(i)
		}
	}

	contextYY := r.anchors.Context.Year % 100
	for _, i := range yearSlots {
		if v[i] == contextYY {
			return r.preferredYear(i)
		}
	}

	minY, maxY := r.anchors.Min.Year, r.anchors.Max.Year
	left := plausibleYears(v[0], minY, maxY)
	right := plausibleYears(v[2], minY, maxY)
	switch {
	case len(left) == 0 && len(right) == 0:
		r.yearSlot = 0
		r.years = plausibleYears(v[0], minYear, maxYear)
		return r.fail(OutOfRange)
	case len(left) == 0:
		return r.preferredYear(2)
	case len(right) == 0:
		return r.preferredYear(0)
	}

	contextYear := r.anchors.Context.Year
	dl := nearestYear(left, contextYear)
	dr := nearestYear(right, contextYear)
	if dl == dr {
		r.yearSlot = 0
		r.years = left
		r.confidence = ConfidenceNone
		return r
	}

	r.yearSlot, r.years = 0, left
	if dr < dl {
		r.yearSlot, r.years = 2, right
	}
	r.confidence = ConfidenceNone
	if len(r.years) == 1 {
		r.confidence = ConfidenceLow
	}
	return r
}

// onlyYear settles on slot because no other position can hold the year.
func (r resolution) onlyYear(slot int) resolution {
	return r.yearAt(slot, ConfidenceHigh, ConfidenceMedium)
}

// preferredYear settles on slot over another position that could also
// have held the year.
func (r resolution) preferredYear(slot int) resolution {
	return r.yearAt(slot, ConfidenceMedium, ConfidenceLow)
}

func (r resolution) yearAt(slot int, unique, several Confidence) resolution {
	yy := r.in.values[slot]
	r.yearSlot = slot
	r.years = plausibleYears(yy, r.anchors.Min.Year, r.anchors.Max.Year)
	switch len(r.years) {
	case 0:
		// Keep some year so a placeholder date can still be formed.
		r.years = plausibleYears(yy, minYear, maxYear)
		return r.fail(OutOfRange)
	case 1:
		r.confidence = unique
	default:
		r.confidence = several
	}
	return r
}

// plausibleYears pairs a two-digit year with every century from
// minY/100 to maxY/100 and keeps the years inside [minY, maxY].
func plausibleYears(yy, minY, maxY int) []int {
	var years []int
	for century := minY / 100; century <= maxY/100; century++ {
		y := century*100 + yy
		if y >= minY && y <= maxY {
			years = append(years, y)
		}
	}
	return years
}

// nearestYear returns the smallest distance between contextYear and any
// of years.
func nearestYear(years []int, contextYear int) int {
	best := -1
	for _, y := range years {
		d := y - contextYear
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
