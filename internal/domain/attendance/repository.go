package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time, totalHours float64) error
	List(ctx context.Context, filter ListFilter) ([]Record, int, error)

	// GrantCompOff flips co_leave_granted from false to true in a single
	// conditional update. It reports whether this call performed the flip,
	// so the compensatory-off credit is applied exactly once per record.
	GrantCompOff(ctx context.Context, id string) (bool, error)
}
