package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOccursOn(t *testing.T) {
	republic := Holiday{Name: "Republic Day", Date: day("2020-01-26"), IsRecurring: true}
	offsite := Holiday{Name: "Company Offsite", Date: day("2026-04-17"), IsRecurring: false}

	assert.True(t, republic.OccursOn(day("2026-01-26")))
	assert.True(t, republic.OccursOn(day("2031-01-26")))
	assert.False(t, republic.OccursOn(day("2026-01-27")))

	assert.True(t, offsite.OccursOn(day("2026-04-17")))
	assert.False(t, offsite.OccursOn(day("2027-04-17")))
}

func TestDatesWithin(t *testing.T) {
	republic := Holiday{Name: "Republic Day", Date: day("2020-01-26"), IsRecurring: true}

	got := republic.DatesWithin(day("2026-01-01"), day("2027-12-31"))
	assert.Equal(t, []string{"2026-01-26", "2027-01-26"}, got)

	// Range that excludes the recurring date.
	assert.Empty(t, republic.DatesWithin(day("2026-02-01"), day("2026-12-31")))
}

func TestDateSet(t *testing.T) {
	holidays := []Holiday{
		{Name: "Republic Day", Date: day("2020-01-26"), IsRecurring: true},
		{Name: "Offsite", Date: day("2026-01-30"), IsRecurring: false},
		{Name: "Out of range", Date: day("2026-06-01"), IsRecurring: false},
	}

	set := DateSet(holidays, day("2026-01-01"), day("2026-01-31"))
	assert.Len(t, set, 2)
	assert.Contains(t, set, "2026-01-26")
	assert.Contains(t, set, "2026-01-30")
}
