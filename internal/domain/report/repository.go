package report

import (
	"context"
	"time"
)

type Repository interface {
	CountEmployees(ctx context.Context) (int, error)
	CountRequestsByStatus(ctx context.Context, status string, from, to *time.Time) (int, error)
	CountOnLeave(ctx context.Context, date time.Time) (int, error)
	UsageByType(ctx context.Context, from, to time.Time) ([]LeaveTypeUsage, error)
	UsageByDepartment(ctx context.Context, from, to time.Time) ([]DepartmentUsage, error)
}
