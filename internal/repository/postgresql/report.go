package postgresql

import (
	"context"
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/report"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

func (r *reportRepositoryImpl) CountEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Headcount covers the employee role only; reviewers and HR staff are
	// not part of the leave-taking population the overview reports on.
	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE role = 'employee' AND is_active = true`).Scan(&count)
	return count, err
}

func (r *reportRepositoryImpl) CountRequestsByStatus(ctx context.Context, status string, from, to *time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM leave_requests WHERE status = $1`
	args := []interface{}{status}

	if from != nil && to != nil {
		query += ` AND created_at >= $2 AND created_at <= $3`
		args = append(args, *from, *to)
	}

	var count int
	err := q.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *reportRepositoryImpl) CountOnLeave(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(DISTINCT employee_id)
		FROM leave_requests
		WHERE status = 'approved' AND start_date <= $1 AND end_date >= $1
	`, date).Scan(&count)
	return count, err
}

func (r *reportRepositoryImpl) UsageByType(ctx context.Context, from, to time.Time) ([]report.LeaveTypeUsage, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT leave_type, COUNT(*), COALESCE(SUM(number_of_days), 0)
		FROM leave_requests
		WHERE status = 'approved' AND start_date <= $2 AND end_date >= $1
		GROUP BY leave_type
		ORDER BY leave_type
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []report.LeaveTypeUsage
	for rows.Next() {
		var u report.LeaveTypeUsage
		if err := rows.Scan(&u.Type, &u.RequestCount, &u.TotalDays); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}

	return usages, rows.Err()
}

func (r *reportRepositoryImpl) UsageByDepartment(ctx context.Context, from, to time.Time) ([]report.DepartmentUsage, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT COALESCE(e.department, 'unassigned'), COUNT(*)
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.created_at >= $1 AND lr.created_at <= $2
		GROUP BY e.department
		ORDER BY COUNT(*) DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []report.DepartmentUsage
	for rows.Next() {
		var u report.DepartmentUsage
		if err := rows.Scan(&u.Department, &u.RequestCount); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}

	return usages, rows.Err()
}
