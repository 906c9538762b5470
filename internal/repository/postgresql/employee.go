package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.name, e.email, e.password_hash, e.role, e.gender, e.department, e.designation,
	e.is_active, e.joined_at, e.monthly_salary,
	e.balance_cl, e.balance_sl, e.balance_el, e.balance_ml, e.balance_pl,
	e.balance_co, e.balance_lwp, e.balance_bl, e.balance_sbl,
	e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Role, &e.Gender, &e.Department, &e.Designation,
		&e.IsActive, &e.JoinedAt, &e.Salary.MonthlyBase,
		&e.Balances.Casual, &e.Balances.Sick, &e.Balances.Earned, &e.Balances.Maternity, &e.Balances.Paternity,
		&e.Balances.CompOff, &e.Balances.WithoutPay, &e.Balances.Bereavement, &e.Balances.Study,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, password_hash, role, gender, department, designation,
			is_active, joined_at, monthly_salary,
			balance_cl, balance_sl, balance_el, balance_ml, balance_pl,
			balance_co, balance_lwp, balance_bl, balance_sbl,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7,
			true, $8, $9,
			$10, $11, $12, $13, $14,
			$15, $16, $17, $18,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.Name, e.Email, e.PasswordHash, e.Role, e.Gender, e.Department, e.Designation,
		e.JoinedAt, e.Salary.MonthlyBase,
		e.Balances.Casual, e.Balances.Sick, e.Balances.Earned, e.Balances.Maternity, e.Balances.Paternity,
		e.Balances.CompOff, e.Balances.WithoutPay, e.Balances.Bereavement, e.Balances.Study,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees e WHERE e.id = $1`, employeeColumns)
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees e WHERE e.email = $1`, employeeColumns)
	return scanEmployee(q.QueryRow(ctx, query, email))
}

func (r *employeeRepositoryImpl) List(ctx context.Context, limit, offset int) ([]employee.Employee, int, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees e
		WHERE e.is_active = true
		ORDER BY e.name ASC
		LIMIT $1 OFFSET $2
	`, employeeColumns)

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *e)
	}

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE employees SET password_hash = $2, updated_at = NOW() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) UpdateSalary(ctx context.Context, id string, monthlyBase int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE employees SET monthly_salary = $2, updated_at = NOW() WHERE id = $1
	`, id, monthlyBase)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE employees SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND is_active = true
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
