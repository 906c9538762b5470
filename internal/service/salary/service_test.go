package salary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
)

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context, limit, offset int) ([]employee.Employee, int, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, len(out), nil
}

func (r *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (r *fakeEmployeeRepo) UpdateSalary(ctx context.Context, id string, monthlyBase int64) error {
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakeRequestRepo struct {
	requests []leave.LeaveRequest
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *leave.LeaveRequest) error { return nil }

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return nil, leave.ErrLeaveRequestNotFound
}

func (r *fakeRequestRepo) List(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequest, int, error) {
	return nil, 0, nil
}

func (r *fakeRequestRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, leave.Status, error) {
	return false, "", nil
}

func (r *fakeRequestRepo) MarkReviewed(ctx context.Context, id string, status leave.Status, reviewerID string, rejectionReason *string) error {
	return nil
}

func (r *fakeRequestRepo) MarkCancelled(ctx context.Context, id string, reason *string) (leave.Status, error) {
	return "", leave.ErrNotCancellable
}

func (r *fakeRequestRepo) ListApprovedLWPInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID && leave.Overlaps(req.StartDate, req.EndDate, from, to) {
			out = append(out, req)
		}
	}
	return out, nil
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func lwpRequest(employeeID, start, end string, halfDay bool) leave.LeaveRequest {
	return leave.LeaveRequest{
		EmployeeID: employeeID,
		Type:       leave.TypeWithoutPay,
		Status:     leave.StatusApproved,
		StartDate:  day(start),
		EndDate:    day(end),
		IsHalfDay:  halfDay,
	}
}

func newTestService(requests []leave.LeaveRequest, emps ...*employee.Employee) *Service {
	empRepo := &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
	for _, e := range emps {
		empRepo.employees[e.ID] = e
	}
	return NewService(empRepo, &fakeRequestRepo{requests: requests})
}

func testEmployee(id string, monthlyBase int64) *employee.Employee {
	return &employee.Employee{
		ID:     id,
		Name:   "Asha Rao",
		Salary: employee.SalaryProfile{MonthlyBase: monthlyBase},
	}
}

// June 2026 starts on a Monday and has 22 weekdays.
func TestGetStatementWithLWPDeduction(t *testing.T) {
	svc := newTestService(
		[]leave.LeaveRequest{lwpRequest("emp-1", "2026-06-04", "2026-06-05", false)},
		testEmployee("emp-1", 30000),
	)

	stmt, err := svc.GetStatement(context.Background(), "emp-1", 2026, time.June)
	require.NoError(t, err)

	assert.Equal(t, 22, stmt.WorkingDays)
	assert.Equal(t, "30000", stmt.BaseSalary)
	assert.Equal(t, "1363.64", stmt.PerDayRate)
	assert.Equal(t, "2", stmt.LWPDays)
	assert.Equal(t, "2727.27", stmt.LWPDeduction)
	assert.Equal(t, "27272.73", stmt.NetSalary)
}

func TestGetStatementNoLWP(t *testing.T) {
	svc := newTestService(nil, testEmployee("emp-1", 30000))

	stmt, err := svc.GetStatement(context.Background(), "emp-1", 2026, time.June)
	require.NoError(t, err)

	assert.Equal(t, "0", stmt.LWPDays)
	assert.Equal(t, "0", stmt.LWPDeduction)
	assert.Equal(t, "30000", stmt.NetSalary)
}

func TestGetStatementClipsSpanningRequest(t *testing.T) {
	// May 28 through Jun 2 clips to Jun 1-2 inside June.
	svc := newTestService(
		[]leave.LeaveRequest{lwpRequest("emp-1", "2026-05-28", "2026-06-02", false)},
		testEmployee("emp-1", 30000),
	)

	stmt, err := svc.GetStatement(context.Background(), "emp-1", 2026, time.June)
	require.NoError(t, err)
	assert.Equal(t, "2", stmt.LWPDays)
}

func TestGetStatementSkipsWeekends(t *testing.T) {
	// Jun 5 2026 is a Friday, Jun 8 a Monday; the weekend between is free.
	svc := newTestService(
		[]leave.LeaveRequest{lwpRequest("emp-1", "2026-06-05", "2026-06-08", false)},
		testEmployee("emp-1", 30000),
	)

	stmt, err := svc.GetStatement(context.Background(), "emp-1", 2026, time.June)
	require.NoError(t, err)
	assert.Equal(t, "2", stmt.LWPDays)
}

func TestGetStatementHalfDayLWP(t *testing.T) {
	svc := newTestService(
		[]leave.LeaveRequest{lwpRequest("emp-1", "2026-06-04", "2026-06-04", true)},
		testEmployee("emp-1", 30000),
	)

	stmt, err := svc.GetStatement(context.Background(), "emp-1", 2026, time.June)
	require.NoError(t, err)

	assert.Equal(t, "0.5", stmt.LWPDays)
	expected := decimal.RequireFromString("30000").
		Div(decimal.NewFromInt(22)).
		Mul(decimal.RequireFromString("0.5")).
		Round(2)
	assert.Equal(t, expected.String(), stmt.LWPDeduction)
}

func TestGetStatementUnknownEmployee(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.GetStatement(context.Background(), "ghost", 2026, time.June)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetAllStatements(t *testing.T) {
	svc := newTestService(
		[]leave.LeaveRequest{lwpRequest("emp-1", "2026-06-04", "2026-06-05", false)},
		testEmployee("emp-1", 30000),
		testEmployee("emp-2", 44000),
	)

	statements, total, err := svc.GetAll(context.Background(), 2026, time.June, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, statements, 2)

	byID := make(map[string]Statement, len(statements))
	for _, s := range statements {
		byID[s.EmployeeID] = s
	}
	assert.Equal(t, "27272.73", byID["emp-1"].NetSalary)
	assert.Equal(t, "44000", byID["emp-2"].NetSalary)
}
