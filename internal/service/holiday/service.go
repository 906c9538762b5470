package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/holiday"
)

type Service struct {
	holiday.Repository
}

func NewService(repository holiday.Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) Create(ctx context.Context, dto holiday.CreateHolidayDTO) (*holiday.Holiday, error) {
	date, err := dto.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	h := &holiday.Holiday{
		Name:        dto.Name,
		Date:        date,
		Category:    holiday.Category(dto.Category),
		IsRecurring: dto.IsRecurring,
	}

	if err := s.Repository.Create(ctx, h); err != nil {
		return nil, err
	}

	return h, nil
}

// List returns all holidays, or only those relevant to the given year.
// Recurring holidays are relevant to every year.
func (s *Service) List(ctx context.Context, year *int) ([]holiday.Holiday, error) {
	if year == nil {
		return s.Repository.List(ctx)
	}

	from := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(*year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return s.Repository.ListInRange(ctx, from, to)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

// SeedDefaults inserts the stock national holidays for the current year,
// skipping dates that already exist. It returns how many were added.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	year := time.Now().UTC().Year()
	defaults := []struct {
		name  string
		month time.Month
		day   int
	}{
		{"New Year's Day", time.January, 1},
		{"Republic Day", time.January, 26},
		{"Holi", time.March, 17},
		{"Eid ul-Fitr", time.March, 31},
		{"Good Friday", time.April, 18},
		{"Independence Day", time.August, 15},
		{"Gandhi Jayanti", time.October, 2},
		{"Diwali", time.October, 20},
		{"Christmas Day", time.December, 25},
	}

	added := 0
	for _, d := range defaults {
		h := &holiday.Holiday{
			Name:     d.name,
			Date:     time.Date(year, d.month, d.day, 0, 0, 0, 0, time.UTC),
			Category: holiday.CategoryNational,
		}
		if err := s.Repository.Create(ctx, h); err != nil {
			if errors.Is(err, holiday.ErrDuplicateHoliday) {
				continue
			}
			return added, fmt.Errorf("failed to seed holiday %q: %w", d.name, err)
		}
		added++
	}

	return added, nil
}
