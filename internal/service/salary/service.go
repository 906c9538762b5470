package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/calendar"
)

type Service struct {
	EmployeeRepository employee.Repository
	RequestRepository  leave.RequestRepository
}

func NewService(employeeRepository employee.Repository, requestRepository leave.RequestRepository) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		RequestRepository:  requestRepository,
	}
}

// Statement is one employee's salary breakdown for a month.
type Statement struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	BaseSalary    string `json:"base_salary"`
	WorkingDays   int    `json:"working_days"`
	PerDayRate    string `json:"per_day_rate"`
	LWPDays       string `json:"lwp_days"`
	LWPDeduction  string `json:"lwp_deduction"`
	NetSalary     string `json:"net_salary"`
}

// GetStatement computes the month's salary for one employee. Unpaid-leave
// days inside the month are priced at base divided by the month's weekday
// count, which ignores holidays on purpose: the divisor matches how the base
// is quoted.
func (s *Service) GetStatement(ctx context.Context, employeeID string, year int, month time.Month) (*Statement, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	monthStart, monthEnd := calendar.MonthBounds(year, month)
	requests, err := s.RequestRepository.ListApprovedLWPInRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid leave: %w", err)
	}

	lwpDays := countLWPDays(requests, year, month)
	return computeStatement(emp, year, month, lwpDays), nil
}

// GetAll computes statements for every employee.
func (s *Service) GetAll(ctx context.Context, year int, month time.Month, limit, offset int) ([]Statement, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	employees, total, err := s.EmployeeRepository.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	monthStart, monthEnd := calendar.MonthBounds(year, month)
	statements := make([]Statement, 0, len(employees))
	for i := range employees {
		emp := &employees[i]
		requests, err := s.RequestRepository.ListApprovedLWPInRange(ctx, emp.ID, monthStart, monthEnd)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list unpaid leave for %s: %w", emp.ID, err)
		}
		statements = append(statements, *computeStatement(emp, year, month, countLWPDays(requests, year, month)))
	}

	return statements, total, nil
}

// countLWPDays sums chargeable unpaid-leave days falling inside the month.
// Requests spanning month boundaries are clipped; weekends inside the
// clipped range do not count. Half-day requests charge their flat 0.5 when
// their date lands in the month.
func countLWPDays(requests []leave.LeaveRequest, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for i := range requests {
		req := &requests[i]

		if req.IsHalfDay {
			if req.StartDate.Year() == year && req.StartDate.Month() == month {
				total = total.Add(leave.HalfDayCharge)
			}
			continue
		}

		start, end, ok := calendar.ClipToMonth(req.StartDate, req.EndDate, year, month)
		if !ok {
			continue
		}
		days := calendar.CountWeekdays(start, end)
		total = total.Add(decimal.NewFromInt(int64(days)))
	}
	return total
}

func computeStatement(emp *employee.Employee, year int, month time.Month, lwpDays decimal.Decimal) *Statement {
	base := decimal.NewFromInt(emp.Salary.MonthlyBase)
	workingDays := calendar.WorkingDaysInMonth(year, month)

	// The per-day rate stays unrounded through the multiplication; only the
	// final amounts round to two decimals.
	perDay := base.Div(decimal.NewFromInt(int64(workingDays)))
	deduction := perDay.Mul(lwpDays).Round(2)
	net := base.Sub(deduction).Round(2)

	return &Statement{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Year:         year,
		Month:        int(month),
		BaseSalary:   base.Round(2).String(),
		WorkingDays:  workingDays,
		PerDayRate:   perDay.Round(2).String(),
		LWPDays:      lwpDays.String(),
		LWPDeduction: deduction.String(),
		NetSalary:    net.String(),
	}
}
