package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountWorkingDays(t *testing.T) {
	t.Parallel()

	// 2026-03-09 is a Monday, 2026-03-13 a Friday.
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		holidays map[string]struct{}
		want     int
	}{
		{
			name:  "plain monday to friday",
			start: date(2026, time.March, 9),
			end:   date(2026, time.March, 13),
			want:  5,
		},
		{
			name:  "weekend only",
			start: date(2026, time.March, 14),
			end:   date(2026, time.March, 15),
			want:  0,
		},
		{
			name:     "single weekday that is a holiday",
			start:    date(2026, time.March, 11),
			end:      date(2026, time.March, 11),
			holidays: map[string]struct{}{"2026-03-11": {}},
			want:     0,
		},
		{
			name:     "week with one holiday inside",
			start:    date(2026, time.March, 9),
			end:      date(2026, time.March, 13),
			holidays: map[string]struct{}{"2026-03-11": {}},
			want:     4,
		},
		{
			name:  "range spanning two weekends",
			start: date(2026, time.March, 6), // Friday
			end:   date(2026, time.March, 16), // Monday
			want:  7,
		},
		{
			name:  "end before start",
			start: date(2026, time.March, 13),
			end:   date(2026, time.March, 9),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountWorkingDays(tt.start, tt.end, tt.holidays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountWeekdays_IgnoresHolidays(t *testing.T) {
	t.Parallel()

	// Holiday exclusion is deliberately absent from the weekday count.
	got := CountWeekdays(date(2026, time.January, 1), date(2026, time.January, 7))
	assert.Equal(t, 5, got)
}

func TestWorkingDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.January, 22},
		{2026, time.February, 20},
		{2024, time.February, 21}, // leap year
		{2026, time.March, 22},
	}

	for _, tt := range tests {
		got := WorkingDaysInMonth(tt.year, tt.month)
		assert.Equal(t, tt.want, got, "%d-%s", tt.year, tt.month)
	}
}

func TestClipToMonth(t *testing.T) {
	t.Parallel()

	s, e, ok := ClipToMonth(date(2026, time.February, 25), date(2026, time.March, 5), 2026, time.March)
	assert.True(t, ok)
	assert.Equal(t, date(2026, time.March, 1), s)
	assert.Equal(t, date(2026, time.March, 5), e)

	s, e, ok = ClipToMonth(date(2026, time.March, 28), date(2026, time.April, 10), 2026, time.March)
	assert.True(t, ok)
	assert.Equal(t, date(2026, time.March, 28), s)
	assert.Equal(t, date(2026, time.March, 31), e)

	_, _, ok = ClipToMonth(date(2026, time.May, 1), date(2026, time.May, 2), 2026, time.March)
	assert.False(t, ok)
}
