package chrono

// resolution is the state of one interpretation. Each stage takes a
// resolution by value and returns the next one, so stages never share
// mutable state.
type resolution struct {
	in      components
	anchors Anchors

	yearSlot  int
	years     []int
	monthSlot int
	daySlot   int

	date  Date
	dated bool

	confidence Confidence
	failure    Failure
	failed     bool
}

func newResolution(in components, anchors Anchors) resolution {
	return resolution{
		in:        in,
		anchors:   anchors,
		yearSlot:  NoSlot,
		monthSlot: NoSlot,
		daySlot:   NoSlot,
	}
}

// fail records a failure. A failure only replaces an earlier one of
// equal or greater severity.
func (r resolution) fail(f Failure) resolution {
	if !r.failed || f.severity() >= r.failure.severity() {
		r.failure = f
		r.failed = true
	}
	r.confidence = ConfidenceNone
	return r
}

// build constructs the date for year with the month and day taken from
// the given source positions.
func (r resolution) build(year, monthSlot, daySlot int) (Date, bool) {
	return NewDate(year, monthOf(r.in.values[monthSlot]), r.in.values[daySlot])
}

func (r resolution) withDate(d Date) resolution {
	r.date = d
	r.dated = true
	return r
}

// result assembles the public Result.
func (r resolution) result() Result {
	if r.failed {
		date := MinDate
		if r.dated && r.failure != InvalidDate {
			date = r.date
		}
		return Result{Date: date, Format: Failed(r.failure), Confidence: ConfidenceNone}
	}
	if !r.dated || r.yearSlot == NoSlot || r.monthSlot == NoSlot || r.daySlot == NoSlot {
		return Result{Date: MinDate, Format: Failed(Unspecified), Confidence: ConfidenceNone}
	}
	layout := Layout{Month: r.monthSlot, Day: r.daySlot, Year: r.yearSlot}
	return Result{Date: r.date, Format: Resolved(layout), Confidence: r.confidence}
}
