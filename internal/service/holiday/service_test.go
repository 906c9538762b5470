package holiday

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/holiday"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.Holiday
	nextID   int
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.Holiday)}
}

func (r *fakeHolidayRepo) Create(ctx context.Context, h *holiday.Holiday) error {
	for _, existing := range r.holidays {
		if existing.Date.Equal(h.Date) {
			return holiday.ErrDuplicateHoliday
		}
	}
	r.nextID++
	h.ID = fmt.Sprintf("hol-%d", r.nextID)
	r.holidays[h.ID] = *h
	return nil
}

func (r *fakeHolidayRepo) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	h, ok := r.holidays[id]
	if !ok {
		return nil, holiday.ErrHolidayNotFound
	}
	return &h, nil
}

func (r *fakeHolidayRepo) List(ctx context.Context) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.holidays {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHolidayRepo) ListInRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.holidays {
		if h.IsRecurring || (!h.Date.Before(from) && !h.Date.After(to)) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(r.holidays, id)
	return nil
}

func TestSeedDefaults(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)

	added, err := svc.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, added)

	// Re-seeding skips the existing dates.
	added, err = svc.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestListByYear(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), holiday.CreateHolidayDTO{
		Name: "Festival 2025", Date: "2025-03-14", Category: "national",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), holiday.CreateHolidayDTO{
		Name: "Festival 2026", Date: "2026-03-04", Category: "national",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), holiday.CreateHolidayDTO{
		Name: "Founders Day", Date: "2020-06-01", Category: "company", IsRecurring: true,
	})
	require.NoError(t, err)

	year := 2026
	holidays, err := svc.List(context.Background(), &year)
	require.NoError(t, err)
	require.Len(t, holidays, 2)

	names := []string{holidays[0].Name, holidays[1].Name}
	assert.ElementsMatch(t, []string{"Festival 2026", "Founders Day"}, names)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateDuplicateDate(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), holiday.CreateHolidayDTO{
		Name: "Festival", Date: "2026-03-04", Category: "national",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), holiday.CreateHolidayDTO{
		Name: "Other Festival", Date: "2026-03-04", Category: "regional",
	})
	assert.ErrorIs(t, err, holiday.ErrDuplicateHoliday)
}
