package chrono

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ymd(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestInterpret_Malformed(t *testing.T) {
	t.Parallel()

	context := ymd(2024, time.June, 15)
	inputs := []string{
		"",
		"   ",
		"\t\n",
		"1/1-2024",
		"1-1/2024",
		`1\1/2024`,
		"2024/1/2024",
		"1/1/1",
		"1/123/2024",
		"123/1/24",
		"1/1/123",
		"0/1/2024",
		"1/0/2024",
		"1/1/0000",
		"00/1/24",
		"1/1/24/5",
		"1.1.2024",
		"jan/1/2024",
		" 1/1/2024",
		"1/1/2024 ",
		"1/2024/1",
		"12345/1/1",
		"1//2024",
	}
	for _, in := range inputs {
		in := in
		t.Run(strconv.Quote(in), func(t *testing.T) {
			t.Parallel()
			r := Interpret(in, context, ymd(1900, time.January, 1), ymd(2100, time.January, 1))
			assert.True(t, r.Format.Is(InvalidDate), spew.Sdump(r))
			assert.Equal(t, ConfidenceNone, r.Confidence)
			assert.Equal(t, MinDate, r.Date)
		})
	}
}

func TestInterpret_TwoComponentsAreNotResolved(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1/2", "12-31", `5\6`} {
		r := Interpret(in, ymd(2024, time.January, 1), ymd(2000, time.January, 1), ymd(2030, time.January, 1))
		assert.True(t, r.Format.Is(InvalidDate), "%s: %s", in, spew.Sdump(r))
		assert.Equal(t, ConfidenceNone, r.Confidence)
	}
}

func TestInterpret(t *testing.T) {
	t.Parallel()

	type want struct {
		date       Date
		format     Format
		confidence Confidence
	}
	tests := []struct {
		name    string
		in      string
		context Date
		min     Date
		max     Date
		want    want
	}{
		{
			"only two-digit component is the year", "1/1/01",
			ymd(2010, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1),
			want{ymd(2001, 1, 1), Resolved(MonthDayYear), ConfidenceHigh},
		},
		{
			"four-digit year last", "1/1/2024",
			ymd(2010, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1),
			want{ymd(2024, 1, 1), Resolved(MonthDayYear), ConfidenceHigh},
		},
		{
			"four-digit year first", "2024/1/1",
			ymd(2010, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1),
			want{ymd(2024, 1, 1), Resolved(YearMonthDay), ConfidenceHigh},
		},
		{
			"context year picks first slot", "24/1/13",
			ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1),
			want{ymd(2024, 1, 13), Resolved(YearMonthDay), ConfidenceMedium},
		},
		{
			"context year picks last slot", "13/1/24",
			ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1),
			want{ymd(2024, 1, 13), Resolved(DayMonthYear), ConfidenceMedium},
		},
		{
			"only the first slot fits the range", "22/1/20",
			ymd(2024, 1, 1), ymd(2021, 1, 1), ymd(2025, 1, 1),
			want{ymd(2022, 1, 20), Resolved(YearMonthDay), ConfidenceMedium},
		},
		{
			"only the last slot fits the range", "20/1/22",
			ymd(2024, 1, 1), ymd(2021, 1, 1), ymd(2025, 1, 1),
			want{ymd(2022, 1, 20), Resolved(DayMonthYear), ConfidenceMedium},
		},
		{
			"value above 31 must be the last-slot year", "24/1/99",
			ymd(2024, 1, 1), ymd(1995, 1, 1), ymd(2025, 1, 1),
			want{ymd(1999, 1, 24), Resolved(DayMonthYear), ConfidenceHigh},
		},
		{
			"value above 31 must be the first-slot year", "99/1/24",
			ymd(2024, 1, 1), ymd(1995, 1, 1), ymd(2025, 1, 1),
			want{ymd(1999, 1, 24), Resolved(YearMonthDay), ConfidenceHigh},
		},
		{
			"closer year wins on the right", "24/1/21",
			ymd(2022, 1, 1), ymd(1995, 1, 1), ymd(2025, 1, 1),
			want{ymd(2021, 1, 24), Resolved(DayMonthYear), ConfidenceLow},
		},
		{
			"closer year wins on the left", "21/1/24",
			ymd(2022, 1, 1), ymd(1995, 1, 1), ymd(2025, 1, 1),
			want{ymd(2021, 1, 24), Resolved(YearMonthDay), ConfidenceLow},
		},
		{
			"equally close years fall back to the first slot", "21/1/23",
			ymd(2022, 1, 1), ymd(1995, 1, 1), ymd(2025, 1, 1),
			want{ymd(2021, 1, 23), Resolved(YearMonthDay), ConfidenceNone},
		},
		{
			"equal month and day", "12/12/2024",
			ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1),
			want{ymd(2024, 12, 12), Resolved(MonthDayYear), ConfidenceHigh},
		},
		{
			"two-digit year from the only century in range", "12/12/22",
			ymd(2024, 1, 1), ymd(2014, 1, 1), ymd(2024, 1, 1),
			want{ymd(2022, 12, 12), Resolved(MonthDayYear), ConfidenceMedium},
		},
		{
			"context year with equal month and day", "12/12/11",
			ymd(2011, 1, 1), ymd(1995, 1, 1), ymd(2025, 1, 1),
			want{ymd(2011, 12, 12), Resolved(MonthDayYear), ConfidenceMedium},
		},
		{
			"clear month and day inside the range", "7/20/2024",
			ymd(2024, 1, 1), ymd(2024, 4, 1), ymd(2024, 8, 1),
			want{ymd(2024, 7, 20), Resolved(MonthDayYear), ConfidenceHigh},
		},
		{
			"several centuries pick the date closest to context", "7/30/20",
			ymd(2022, 1, 1), ymd(1920, 1, 1), ymd(2024, 1, 1),
			want{ymd(2020, 7, 30), Resolved(MonthDayYear), ConfidenceLow},
		},
		{
			"only one ordering inside the range", "6/7/2024",
			ymd(2024, 5, 1), ymd(2024, 4, 1), ymd(2024, 7, 1),
			want{ymd(2024, 6, 7), Resolved(MonthDayYear), ConfidenceMedium},
		},
		{
			"ordering sharing the context month wins", "5/6/2024",
			ymd(2024, 5, 20), ymd(2024, 4, 1), ymd(2024, 8, 1),
			want{ymd(2024, 5, 6), Resolved(MonthDayYear), ConfidenceMedium},
		},
		{
			"ordering sharing the context month wins when swapped", "6/5/2024",
			ymd(2024, 5, 20), ymd(2024, 4, 1), ymd(2024, 8, 1),
			want{ymd(2024, 5, 6), Resolved(DayMonthYear), ConfidenceMedium},
		},
		{
			"ordering closest to context wins", "6/7/2024",
			ymd(2024, 8, 15), ymd(2024, 4, 1), ymd(2024, 9, 1),
			want{ymd(2024, 7, 6), Resolved(DayMonthYear), ConfidenceLow},
		},
		{
			"orderings equally close to context", "1/3/2024",
			ymd(2024, 2, 1), ymd(2024, 1, 1), ymd(2024, 12, 31),
			want{ymd(2024, 1, 3), Resolved(MonthDayYear), ConfidenceNone},
		},
		{
			"years equally far from context keep the first candidate", "6/15/50",
			ymd(1900, 6, 15), ymd(1800, 1, 1), ymd(2099, 12, 31),
			want{ymd(1850, 6, 15), Resolved(MonthDayYear), ConfidenceNone},
		},
		{
			"context year in several centuries", "24/1/13",
			ymd(2024, 1, 1), ymd(1900, 1, 1), ymd(2099, 12, 31),
			want{ymd(2024, 1, 13), Resolved(YearMonthDay), ConfidenceNone},
		},
		{
			"context year in several centuries on the right", "13/1/24",
			ymd(2024, 1, 1), ymd(1900, 1, 1), ymd(2099, 12, 31),
			want{ymd(2024, 1, 13), Resolved(DayMonthYear), ConfidenceNone},
		},
		{
			"leap day", "2/29/2024",
			ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1),
			want{ymd(2024, 2, 29), Resolved(MonthDayYear), ConfidenceHigh},
		},
		{
			"backslash separator", `31\12\1999`,
			ymd(2000, 1, 1), ymd(1990, 1, 1), ymd(2010, 1, 1),
			want{ymd(1999, 12, 31), Resolved(DayMonthYear), ConfidenceHigh},
		},
		{
			"year first with day before month", "2024-31-12",
			ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1),
			want{ymd(2024, 12, 31), Resolved(YearDayMonth), ConfidenceHigh},
		},
		{
			"zero-padded iso date", "2024-01-15",
			ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1),
			want{ymd(2024, 1, 15), Resolved(YearMonthDay), ConfidenceHigh},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Interpret(tt.in, tt.context, tt.min, tt.max)
			assert.Equal(t, tt.want.date, got.Date, spew.Sdump(got))
			assert.Equal(t, tt.want.format, got.Format, "format %s, want %s", got.Format, tt.want.format)
			assert.Equal(t, tt.want.confidence, got.Confidence, "confidence %s, want %s", got.Confidence, tt.want.confidence)
		})
	}
}

func TestInterpret_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		context Date
		min     Date
		max     Date
		want    Failure
	}{
		{"neither value can be a month", "13/14/2024", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1), InvalidDate},
		{"day above 31", "12/32/2024", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1), InvalidDate},
		{"day not in month", "2/30/2024", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1), InvalidDate},
		{"not a leap year", "2/29/2023", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1), InvalidDate},
		{"both ends above 31", "32/1/33", ymd(2032, 1, 1), ymd(2030, 1, 1), ymd(2035, 1, 1), InvalidDate},
		{"both two-digit years outside a degenerate range", "10/1/13", ymd(2024, 1, 1), ymd(2024, 1, 1), ymd(2024, 1, 1), OutOfRange},
		{"single candidate year outside the range", "1/1/50", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2030, 1, 1), OutOfRange},
		{"no ordering inside the range", "6/7/2024", ymd(2024, 4, 15), ymd(2024, 4, 1), ymd(2024, 5, 1), OutOfRange},
		{"before the minimum", "3/20/2024", ymd(2024, 5, 1), ymd(2024, 4, 1), ymd(2024, 6, 1), BelowMinimumThreshold},
		{"after the maximum", "7/20/2024", ymd(2024, 5, 1), ymd(2024, 4, 1), ymd(2024, 6, 1), AboveMaximumThreshold},
		{"out-of-range year with an impossible day", "2/30/50", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1), InvalidDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Interpret(tt.in, tt.context, tt.min, tt.max)
			require.False(t, got.OK(), spew.Sdump(got))
			failure, failed := got.Format.Failure()
			require.True(t, failed)
			assert.Equal(t, tt.want, failure)
			assert.Equal(t, ConfidenceNone, got.Confidence)
		})
	}
}

func TestInterpret_OutOfRangeKeepsPlaceholderDate(t *testing.T) {
	t.Parallel()

	got := Interpret("10/1/13", ymd(2024, 1, 1), ymd(2024, 1, 1), ymd(2024, 1, 1))
	require.True(t, got.Format.Is(OutOfRange))
	assert.Equal(t, ymd(10, 1, 13), got.Date)

	got = Interpret("3/20/2024", ymd(2024, 5, 1), ymd(2024, 4, 1), ymd(2024, 6, 1))
	require.True(t, got.Format.Is(BelowMinimumThreshold))
	assert.Equal(t, ymd(2024, 3, 20), got.Date)
}

func TestInterpret_RoundTrip(t *testing.T) {
	t.Parallel()

	anchors := Anchors{Context: ymd(2024, 6, 15), Min: ymd(1950, 1, 1), Max: ymd(2049, 12, 31)}
	seps := []string{"/", "-", `\`}
	values := []string{"1", "5", "12", "13", "24", "31", "49", "50", "99", "2024", "1987"}

	resolved := 0
	for _, a := range values {
		for _, b := range values {
			if len(b) == 4 {
				continue
			}
			for _, c := range values {
				for _, sep := range seps {
					raw := strings.Join([]string{a, b, c}, sep)
					got := anchors.Interpret(raw)
					if !got.OK() {
						continue
					}
					resolved++

					layout, _ := got.Format.Layout()
					rebuilt := layout.Arrange(int(got.Date.Month), got.Date.Day, got.Date.Year)
					for i, part := range []string{a, b, c} {
						want, err := strconv.Atoi(part)
						require.NoError(t, err)
						have := rebuilt[i]
						if i == layout.Year && len(part) == 2 {
							have %= 100
						}
						assert.Equal(t, want, have, "%s -> %s (%s)", raw, got.Date, got.Format)
					}
				}
			}
		}
	}
	assert.Positive(t, resolved)
}

func TestInterpret_Idempotent(t *testing.T) {
	t.Parallel()

	anchors := Anchors{Context: ymd(2022, 1, 1), Min: ymd(1995, 1, 1), Max: ymd(2025, 1, 1)}
	for _, in := range []string{"24/1/21", "6/7/2024", "10/1/13", "2/30/2024", "garbage"} {
		first := anchors.Interpret(in)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, anchors.Interpret(in), in)
		}
	}
}

func TestAnchors_Validate(t *testing.T) {
	t.Parallel()

	ok := Anchors{Context: ymd(2024, 1, 1), Min: ymd(2000, 1, 1), Max: ymd(2030, 1, 1)}
	assert.NoError(t, ok.Validate())

	inverted := Anchors{Context: ymd(2024, 1, 1), Min: ymd(2030, 1, 1), Max: ymd(2000, 1, 1)}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidRange)

	outside := Anchors{Context: ymd(1990, 1, 1), Min: ymd(2000, 1, 1), Max: ymd(2030, 1, 1)}
	assert.ErrorIs(t, outside.Validate(), ErrContextOutsideRange)
}

func TestResult_AtLeast(t *testing.T) {
	t.Parallel()

	r := Interpret("24/1/13", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1))
	assert.True(t, r.AtLeast(ConfidenceLow))
	assert.True(t, r.AtLeast(ConfidenceMedium))
	assert.False(t, r.AtLeast(ConfidenceHigh))

	bad := Interpret("nope", ymd(2024, 1, 1), ymd(2000, 1, 1), ymd(2025, 1, 1))
	assert.False(t, bad.AtLeast(ConfidenceNone))
}
