package chrono

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		ok    bool
	}{
		{"ordinary", 2024, time.March, 15, true},
		{"leap day in leap year", 2024, time.February, 29, true},
		{"leap day in century year", 1900, time.February, 29, false},
		{"leap day in 400th year", 2000, time.February, 29, true},
		{"thirty-first of april", 2024, time.April, 31, false},
		{"month zero", 2024, 0, 1, false},
		{"month thirteen", 2024, 13, 1, false},
		{"day zero", 2024, time.January, 0, false},
		{"year zero", 0, time.January, 1, false},
		{"year one", 1, time.January, 1, true},
		{"year past 9999", 10000, time.January, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := NewDate(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, Date{tt.year, tt.month, tt.day}, d)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 30, DaysIn(2023, time.November))
	assert.Equal(t, 31, DaysIn(2023, time.December))
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	a := ymd(2024, 1, 1)
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 366, DaysBetween(a, ymd(2025, 1, 1)))
	assert.Equal(t, 366, DaysBetween(ymd(2025, 1, 1), a))
	assert.Equal(t, 3652058, DaysBetween(MinDate, MaxDate))
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()

	a, b := ymd(2024, 5, 6), ymd(2024, 6, 5)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, ymd(2023, 12, 31).Compare(a))
	assert.Equal(t, 1, ymd(2024, 5, 7).Compare(a))
}

func TestDate_Text(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0010-01-13", ymd(10, 1, 13).String())

	data, err := json.Marshal(struct {
		Due Date `json:"due"`
	}{ymd(2024, 7, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-07-04"}`, string(data))

	var d Date
	require.NoError(t, d.UnmarshalText([]byte("1999-12-31")))
	assert.Equal(t, ymd(1999, 12, 31), d)

	assert.Error(t, d.UnmarshalText([]byte("12/31/1999")))

	require.NoError(t, d.UnmarshalText(nil))
	assert.True(t, d.IsZero())

	_, err = ParseISO("2023-02-29")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, ymd(2024, 3, 1), DateOf(ts))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ymd(2024, 3, 1).Time(nil))
}
