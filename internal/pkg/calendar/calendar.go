// Package calendar provides working-day arithmetic shared by leave
// day-charging and salary computation.
package calendar

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey normalizes a timestamp to its calendar-day key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CountWorkingDays counts days in [start, end] inclusive that are neither
// weekend days nor present in holidays (keyed by DayKey). Returns 0 when the
// whole range is excluded or when end precedes start.
func CountWorkingDays(start, end time.Time, holidays map[string]struct{}) int {
	count := 0
	for d := truncateDay(start); !d.After(truncateDay(end)); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		if _, ok := holidays[DayKey(d)]; ok {
			continue
		}
		count++
	}
	return count
}

// CountWeekdays counts Monday-Friday days in [start, end] inclusive with no
// holiday exclusion. Salary deduction intentionally uses this raw weekday
// count rather than CountWorkingDays.
func CountWeekdays(start, end time.Time) int {
	count := 0
	for d := truncateDay(start); !d.After(truncateDay(end)); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}
	return count
}

// WorkingDaysInMonth counts the weekdays (Mon-Fri) of the given month.
// Holidays are ignored here; see CountWeekdays.
func WorkingDaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return CountWeekdays(first, last)
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// ClipToMonth intersects [start, end] with the given month. The boolean is
// false when the range does not touch the month at all.
func ClipToMonth(start, end time.Time, year int, month time.Month) (time.Time, time.Time, bool) {
	first, last := MonthBounds(year, month)
	s := truncateDay(start)
	e := truncateDay(end)
	if e.Before(first) || s.After(last) {
		return time.Time{}, time.Time{}, false
	}
	if s.Before(first) {
		s = first
	}
	if e.After(last) {
		e = last
	}
	return s, e, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
