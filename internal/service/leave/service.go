package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/holiday"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/notification"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/calendar"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/email"
	"github.com/shopspring/decimal"
)

type Service struct {
	tx database.TxManager
	leave.RequestRepository
	EmployeeRepository employee.Repository
	BalanceRepository  employee.BalanceRepository
	HolidayRepository  holiday.Repository
	Notifier           notification.Enqueuer
	Email              email.EmailService
}

func NewService(
	tx database.TxManager,
	requestRepository leave.RequestRepository,
	employeeRepository employee.Repository,
	balanceRepository employee.BalanceRepository,
	holidayRepository holiday.Repository,
	notifier notification.Enqueuer,
	emailService email.EmailService,
) *Service {
	return &Service{
		tx:                 tx,
		RequestRepository:  requestRepository,
		EmployeeRepository: employeeRepository,
		BalanceRepository:  balanceRepository,
		HolidayRepository:  holidayRepository,
		Notifier:           notifier,
		Email:              emailService,
	}
}

// CreateRequest validates and files a new leave request in pending status.
// Balances are not debited here; the debit happens on approval.
func (s *Service) CreateRequest(ctx context.Context, employeeID string, dto leave.CreateLeaveRequestDTO) (*leave.LeaveRequest, error) {
	leaveType, err := leave.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := dto.ParsedDates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse request dates: %w", err)
	}
	if endDate.Before(startDate) {
		return nil, leave.ErrInvalidDateRange
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	hasOverlap, conflictStatus, err := s.RequestRepository.HasOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if hasOverlap {
		return nil, &leave.OverlapError{ConflictStatus: conflictStatus}
	}

	numberOfDays, err := s.calculateDays(ctx, startDate, endDate, dto.IsHalfDay)
	if err != nil {
		return nil, err
	}

	// Sufficiency is pre-checked here for early feedback; the authoritative
	// check is the conditional debit at approval time.
	if !emp.Balances.Sufficient(leaveType, numberOfDays) {
		return nil, &leave.InsufficientBalanceError{
			Type:      leaveType,
			Available: emp.Balances.Get(leaveType),
			Requested: numberOfDays,
		}
	}

	request := &leave.LeaveRequest{
		EmployeeID:    employeeID,
		Type:          leaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		IsHalfDay:     dto.IsHalfDay,
		NumberOfDays:  numberOfDays,
		Reason:        dto.Reason,
		AttachmentURL: dto.AttachmentURL,
		Status:        leave.StatusPending,
	}
	if dto.IsHalfDay && dto.HalfDaySegment != nil {
		segment := leave.HalfDaySegment(*dto.HalfDaySegment)
		request.HalfDaySegment = &segment
	}

	if err := s.RequestRepository.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	request.EmployeeName = &emp.Name
	request.EmployeeEmail = &emp.Email

	s.Notifier.Enqueue(notification.Notification{
		RecipientID: employeeID,
		Type:        notification.TypeLeaveRequested,
		Title:       "Leave request submitted",
		Message: fmt.Sprintf("Your %s request for %s day(s) from %s to %s is awaiting review.",
			leaveType.Name(), numberOfDays.String(), dto.StartDate, dto.EndDate),
	})

	return request, nil
}

// calculateDays returns the chargeable days for the range. Half-day requests
// cost a flat 0.5 regardless of the calendar; full-day requests count working
// days excluding weekends and holidays.
func (s *Service) calculateDays(ctx context.Context, startDate, endDate time.Time, isHalfDay bool) (decimal.Decimal, error) {
	if isHalfDay {
		return leave.HalfDayCharge, nil
	}

	holidays, err := s.HolidayRepository.ListInRange(ctx, startDate, endDate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list holidays: %w", err)
	}

	workingDays := calendar.CountWorkingDays(startDate, endDate, holiday.DateSet(holidays, startDate, endDate))
	if workingDays == 0 {
		return decimal.Zero, leave.ErrNoWorkingDays
	}

	return decimal.NewFromInt(int64(workingDays)), nil
}

// Approve flips a pending request to approved and debits the balance. The
// status flip and the debit share one transaction, and both are conditional
// updates, so concurrent reviewers or drained balances roll the whole thing
// back.
func (s *Service) Approve(ctx context.Context, requestID, reviewerID string) (*leave.LeaveRequest, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.EmployeeID == reviewerID {
		return nil, leave.ErrSelfReview
	}
	if !request.Reviewable() {
		return nil, leave.ErrAlreadyReviewed
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.RequestRepository.MarkReviewed(ctx, requestID, leave.StatusApproved, reviewerID, nil); err != nil {
			return err
		}
		if err := s.BalanceRepository.Debit(ctx, request.EmployeeID, request.Type, request.NumberOfDays); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = leave.StatusApproved
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now

	s.Notifier.Enqueue(notification.Notification{
		RecipientID: request.EmployeeID,
		Type:        notification.TypeLeaveApproved,
		Title:       "Leave request approved",
		Message: fmt.Sprintf("Your %s request from %s to %s was approved.",
			request.Type.Name(), request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")),
	})

	s.sendDecisionEmail(request, nil)

	return request, nil
}

// Reject flips a pending request to rejected. Balances are untouched.
func (s *Service) Reject(ctx context.Context, requestID, reviewerID, reason string) (*leave.LeaveRequest, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.EmployeeID == reviewerID {
		return nil, leave.ErrSelfReview
	}
	if !request.Reviewable() {
		return nil, leave.ErrAlreadyReviewed
	}

	if err := s.RequestRepository.MarkReviewed(ctx, requestID, leave.StatusRejected, reviewerID, &reason); err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = leave.StatusRejected
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now
	request.RejectionReason = &reason

	s.Notifier.Enqueue(notification.Notification{
		RecipientID: request.EmployeeID,
		Type:        notification.TypeLeaveRejected,
		Title:       "Leave request rejected",
		Message: fmt.Sprintf("Your %s request from %s to %s was rejected: %s",
			request.Type.Name(), request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), reason),
	})

	s.sendDecisionEmail(request, &reason)

	return request, nil
}

// sendDecisionEmail mails the employee about a review decision. Delivery runs
// off the request path and failures only get logged; the decision itself is
// already committed.
func (s *Service) sendDecisionEmail(request *leave.LeaveRequest, reason *string) {
	if request.EmployeeEmail == nil {
		return
	}

	to := *request.EmployeeEmail
	name := ""
	if request.EmployeeName != nil {
		name = *request.EmployeeName
	}
	typeName := request.Type.Name()
	startDate := request.StartDate.Format("2006-01-02")
	endDate := request.EndDate.Format("2006-01-02")
	status := string(request.Status)

	go func() {
		if err := s.Email.SendLeaveDecision(to, name, typeName, startDate, endDate, status, reason); err != nil {
			slog.Error("failed to send leave decision email", "request_id", request.ID, "error", err)
		}
	}()
}

// Cancel lets the owning employee withdraw a pending or approved request.
// Cancelling an approved request credits the debited days back.
func (s *Service) Cancel(ctx context.Context, requestID, employeeID string, reason *string) (*leave.LeaveRequest, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.EmployeeID != employeeID {
		return nil, leave.ErrNotRequestOwner
	}
	if !request.Cancellable() {
		return nil, leave.ErrNotCancellable
	}

	var previous leave.Status
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		previous, err = s.RequestRepository.MarkCancelled(ctx, requestID, reason)
		if err != nil {
			return err
		}
		if previous == leave.StatusApproved {
			if err := s.BalanceRepository.Credit(ctx, request.EmployeeID, request.Type, request.NumberOfDays); err != nil {
				return fmt.Errorf("failed to restore balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = leave.StatusCancelled
	request.CancelledAt = &now
	request.CancellationReason = reason

	s.Notifier.Enqueue(notification.Notification{
		RecipientID: request.EmployeeID,
		Type:        notification.TypeLeaveCancelled,
		Title:       "Leave request cancelled",
		Message: fmt.Sprintf("Your %s request from %s to %s was cancelled.",
			request.Type.Name(), request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")),
	})

	return request, nil
}

func (s *Service) GetRequest(ctx context.Context, requestID string) (*leave.LeaveRequest, error) {
	return s.RequestRepository.GetByID(ctx, requestID)
}

func (s *Service) ListRequests(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequest, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.RequestRepository.List(ctx, filter)
}

// GetBalances returns the employee's remaining days per leave type.
func (s *Service) GetBalances(ctx context.Context, employeeID string) (employee.BalanceSheet, error) {
	return s.BalanceRepository.GetBalances(ctx, employeeID)
}
