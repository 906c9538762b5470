package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type,
			start_date, end_date, is_half_day, half_day_segment, number_of_days,
			reason, attachment_url, status,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		req.EmployeeID, req.Type,
		req.StartDate, req.EndDate, req.IsHalfDay, req.HalfDaySegment, req.NumberOfDays,
		req.Reason, req.AttachmentURL, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type,
	lr.start_date, lr.end_date, lr.is_half_day, lr.half_day_segment, lr.number_of_days,
	lr.reason, lr.attachment_url, lr.status,
	lr.reviewed_by, lr.reviewed_at, lr.rejection_reason,
	lr.cancelled_at, lr.cancellation_reason,
	lr.created_at, lr.updated_at,
	e.name AS employee_name, e.email AS employee_email
`

func scanLeaveRequest(row pgx.Row) (*leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type,
		&req.StartDate, &req.EndDate, &req.IsHalfDay, &req.HalfDaySegment, &req.NumberOfDays,
		&req.Reason, &req.AttachmentURL, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.RejectionReason,
		&req.CancelledAt, &req.CancellationReason,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`, leaveRequestColumns)

	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequest, int, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeID != nil {
		addCondition("lr.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Status != nil {
		addCondition("lr.status = $%d", *filter.Status)
	}
	if filter.Type != nil {
		addCondition("lr.leave_type = $%d", *filter.Type)
	}
	if filter.From != nil {
		addCondition("lr.end_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCondition("lr.start_date <= $%d", *filter.To)
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) FROM leave_requests lr WHERE %s
	`, where)

	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, leave.Status, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ('pending', 'approved')
		  AND start_date <= $3
		  AND end_date >= $2
		LIMIT 1
	`

	var status leave.Status
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, status, nil
}

// MarkReviewed flips status only when the row is still pending, so two
// concurrent reviews cannot both succeed.
func (r *leaveRequestRepositoryImpl) MarkReviewed(ctx context.Context, id string, status leave.Status, reviewerID string, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(),
			rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, id, status, reviewerID, rejectionReason)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrAlreadyReviewed
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) MarkCancelled(ctx context.Context, id string, reason *string) (leave.Status, error) {
	q := GetQuerier(ctx, r.db)

	// The self-join reads the statement-start snapshot, so prev.status is
	// the status before the flip.
	query := `
		UPDATE leave_requests lr
		SET status = 'cancelled', cancelled_at = NOW(),
			cancellation_reason = $2, updated_at = NOW()
		FROM leave_requests prev
		WHERE prev.id = lr.id AND lr.id = $1 AND lr.status IN ('pending', 'approved')
		RETURNING prev.status
	`

	var previous leave.Status
	err := q.QueryRow(ctx, query, id, reason).Scan(&previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", leave.ErrNotCancellable
		}
		return "", err
	}
	return previous, nil
}

func (r *leaveRequestRepositoryImpl) ListApprovedLWPInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.employee_id = $1
		  AND lr.leave_type = 'LWP'
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date ASC
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}

	return requests, nil
}
