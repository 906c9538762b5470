package employee

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, limit, offset int) ([]Employee, int, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateSalary(ctx context.Context, id string, monthlyBase int64) error

	// Deactivate soft-deletes the account. Deactivated employees keep their
	// history but drop out of rosters and can no longer sign in.
	Deactivate(ctx context.Context, id string) error
}

// BalanceRepository mutates the per-type balance columns.
type BalanceRepository interface {
	// GetBalances returns the employee's current sheet.
	GetBalances(ctx context.Context, employeeID string) (BalanceSheet, error)

	// Debit subtracts amount from the employee's balance for t in a single
	// conditional update. It returns leave.ErrInsufficientBalance when the
	// stored balance is below amount. Debits against LWP are a no-op.
	Debit(ctx context.Context, employeeID string, t leave.Type, amount decimal.Decimal) error

	// Credit adds amount to the employee's balance for t. Credits against
	// LWP are a no-op.
	Credit(ctx context.Context, employeeID string, t leave.Type, amount decimal.Decimal) error
}
