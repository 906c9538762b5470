package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) employee.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

// balanceColumn maps a leave type to its column. The type set is closed, so
// the column name never comes from request input.
func balanceColumn(t leave.Type) (string, error) {
	switch t {
	case leave.TypeCasual:
		return "balance_cl", nil
	case leave.TypeSick:
		return "balance_sl", nil
	case leave.TypeEarned:
		return "balance_el", nil
	case leave.TypeMaternity:
		return "balance_ml", nil
	case leave.TypePaternity:
		return "balance_pl", nil
	case leave.TypeCompOff:
		return "balance_co", nil
	case leave.TypeWithoutPay:
		return "balance_lwp", nil
	case leave.TypeBereavement:
		return "balance_bl", nil
	case leave.TypeStudy:
		return "balance_sbl", nil
	}
	return "", leave.ErrUnknownLeaveType
}

func (r *balanceRepositoryImpl) GetBalances(ctx context.Context, employeeID string) (employee.BalanceSheet, error) {
	q := GetQuerier(ctx, r.db)

	var b employee.BalanceSheet
	err := q.QueryRow(ctx, `
		SELECT balance_cl, balance_sl, balance_el, balance_ml, balance_pl,
			   balance_co, balance_lwp, balance_bl, balance_sbl
		FROM employees WHERE id = $1
	`, employeeID).Scan(
		&b.Casual, &b.Sick, &b.Earned, &b.Maternity, &b.Paternity,
		&b.CompOff, &b.WithoutPay, &b.Bereavement, &b.Study,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.BalanceSheet{}, employee.ErrEmployeeNotFound
		}
		return employee.BalanceSheet{}, err
	}
	return b, nil
}

// Debit performs the sufficiency check and the subtraction in one statement,
// so concurrent approvals cannot both spend the same balance.
func (r *balanceRepositoryImpl) Debit(ctx context.Context, employeeID string, t leave.Type, amount decimal.Decimal) error {
	if t.Unbounded() {
		return nil
	}

	col, err := balanceColumn(t)
	if err != nil {
		return err
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s - $2, updated_at = NOW()
		WHERE id = $1 AND %s >= $2
	`, col, col, col)

	commandTag, err := q.Exec(ctx, query, employeeID, amount)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrInsufficientBalance
	}
	return nil
}

func (r *balanceRepositoryImpl) Credit(ctx context.Context, employeeID string, t leave.Type, amount decimal.Decimal) error {
	if t.Unbounded() {
		return nil
	}

	col, err := balanceColumn(t)
	if err != nil {
		return err
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s + $2, updated_at = NOW()
		WHERE id = $1
	`, col, col)

	commandTag, err := q.Exec(ctx, query, employeeID, amount)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
