package holiday

import "time"

type Category string

const (
	CategoryNational Category = "national"
	CategoryRegional Category = "regional"
	CategoryOptional Category = "optional"
	CategoryCompany  Category = "company"
)

type Holiday struct {
	ID       string
	Name     string
	Date     time.Time
	Category Category

	// IsRecurring marks holidays that fall on the same month and day every
	// year, such as national days.
	IsRecurring bool

	CreatedAt time.Time
}

// OccursOn reports whether the holiday falls on the given date, projecting
// recurring holidays into the date's year.
func (h *Holiday) OccursOn(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() && h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
}

// DatesWithin expands the holiday into the concrete dates it covers inside
// [from, to], keyed "2006-01-02". Non-recurring holidays contribute at most
// one date.
func (h *Holiday) DatesWithin(from, to time.Time) []string {
	var dates []string
	if h.IsRecurring {
		for year := from.Year(); year <= to.Year(); year++ {
			d := time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
			if !d.Before(from) && !d.After(to) {
				dates = append(dates, d.Format("2006-01-02"))
			}
		}
		return dates
	}
	if !h.Date.Before(from) && !h.Date.After(to) {
		dates = append(dates, h.Date.Format("2006-01-02"))
	}
	return dates
}

// DateSet flattens holidays into a working-day exclusion set over [from, to].
func DateSet(holidays []Holiday, from, to time.Time) map[string]struct{} {
	set := make(map[string]struct{})
	for i := range holidays {
		for _, d := range holidays[i].DatesWithin(from, to) {
			set[d] = struct{}{}
		}
	}
	return set
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	IsRecurring bool   `json:"is_recurring"`
}

func (h *Holiday) ToResponse() HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Category:    string(h.Category),
		IsRecurring: h.IsRecurring,
	}
}
