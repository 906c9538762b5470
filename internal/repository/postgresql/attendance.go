package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/attendance"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec *attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, clock_in, is_holiday_work, co_leave_granted,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, false,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Date, rec.ClockIn, rec.IsHolidayWork,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		// The unique index on (employee_id, date) backstops the service-level
		// duplicate check under concurrent clock-ins.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrAlreadyClockedIn
		}
		return err
	}

	return nil
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.total_hours,
	a.is_holiday_work, a.co_leave_granted, a.created_at, a.updated_at,
	e.name AS employee_name
`

func scanAttendance(row pgx.Row) (*attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut, &rec.TotalHours,
		&rec.IsHolidayWork, &rec.COLeaveGranted, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = $1 AND a.date = $2
	`, attendanceColumns)

	return scanAttendance(q.QueryRow(ctx, query, employeeID, date))
}

func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time, totalHours float64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE attendance_records
		SET clock_out = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $1
	`, id, clockOut, totalHours)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int, error) {
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
		addCondition("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.From != nil {
		addCondition("a.date >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCondition("a.date <= $%d", *filter.To)
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendance_records a WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		JOIN employees e ON a.employee_id = e.id
		WHERE %s
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *rec)
	}

	return records, total, nil
}

// GrantCompOff succeeds for exactly one caller per record: the conditional
// update only matches while co_leave_granted is still false.
func (r *attendanceRepositoryImpl) GrantCompOff(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE attendance_records
		SET co_leave_granted = true, updated_at = NOW()
		WHERE id = $1 AND co_leave_granted = false
	`, id)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() == 1, nil
}
