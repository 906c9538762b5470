package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/attendance"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/holiday"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/notification"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
)

type Service struct {
	tx database.TxManager
	attendance.Repository
	BalanceRepository employee.BalanceRepository
	HolidayRepository holiday.Repository
	Notifier          notification.Enqueuer

	// now is swappable for tests.
	now func() time.Time
}

func NewService(
	tx database.TxManager,
	repository attendance.Repository,
	balanceRepository employee.BalanceRepository,
	holidayRepository holiday.Repository,
	notifier notification.Enqueuer,
) *Service {
	return &Service{
		tx:                tx,
		Repository:        repository,
		BalanceRepository: balanceRepository,
		HolidayRepository: holidayRepository,
		Notifier:          notifier,
		now:               time.Now,
	}
}

// ClockIn opens today's attendance record. Clocking in on a holiday marks the
// record as holiday work, which earns a compensatory-off credit at clock-out.
func (s *Service) ClockIn(ctx context.Context, employeeID string) (*attendance.Record, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.Repository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && err != attendance.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return nil, attendance.ErrAlreadyClockedIn
	}

	isHoliday, err := s.isHoliday(ctx, today)
	if err != nil {
		return nil, err
	}

	record := &attendance.Record{
		EmployeeID:    employeeID,
		Date:          today,
		ClockIn:       &now,
		IsHolidayWork: isHoliday,
	}

	if err := s.Repository.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// ClockOut closes today's record, computes the clocked hours, and credits a
// compensatory off for holiday work. The credit is applied at most once per
// record even if clock-out retries.
func (s *Service) ClockOut(ctx context.Context, employeeID string) (*attendance.Record, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.Repository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if err == attendance.ErrRecordNotFound {
			return nil, attendance.ErrNotClockedIn
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record.ClockIn == nil {
		return nil, attendance.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return nil, attendance.ErrAlreadyClockedOut
	}

	totalHours := roundHours(now.Sub(*record.ClockIn))
	if err := s.Repository.SetClockOut(ctx, record.ID, now, totalHours); err != nil {
		return nil, fmt.Errorf("failed to set clock out: %w", err)
	}

	record.ClockOut = &now
	record.TotalHours = &totalHours

	if record.IsHolidayWork {
		if err := s.grantCompOff(ctx, record); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// grantCompOff credits one CO day for holiday work. The attendance flag flip
// and the balance credit share a transaction; the conditional flip makes the
// credit single-shot.
func (s *Service) grantCompOff(ctx context.Context, record *attendance.Record) error {
	var granted bool
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		granted, err = s.Repository.GrantCompOff(ctx, record.ID)
		if err != nil {
			return fmt.Errorf("failed to mark comp off granted: %w", err)
		}
		if !granted {
			return nil
		}
		if err := s.BalanceRepository.Credit(ctx, record.EmployeeID, leave.TypeCompOff, decimal.NewFromInt(1)); err != nil {
			return fmt.Errorf("failed to credit comp off: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if granted {
		record.COLeaveGranted = true
		s.Notifier.Enqueue(notification.Notification{
			RecipientID: record.EmployeeID,
			Type:        notification.TypeCompOffCredit,
			Title:       "Compensatory off credited",
			Message: fmt.Sprintf("You earned 1 compensatory off day for working on %s.",
				record.Date.Format("2006-01-02")),
		})
	}

	return nil
}

func (s *Service) isHoliday(ctx context.Context, date time.Time) (bool, error) {
	holidays, err := s.HolidayRepository.ListInRange(ctx, date, date)
	if err != nil {
		return false, fmt.Errorf("failed to list holidays: %w", err)
	}
	for i := range holidays {
		if holidays[i].OccursOn(date) {
			return true, nil
		}
	}
	return false, nil
}

// TodayStatus returns today's record for the employee, or nil when the
// employee has not clocked in yet.
func (s *Service) TodayStatus(ctx context.Context, employeeID string) (*attendance.Record, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.Repository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if err == attendance.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.Repository.List(ctx, filter)
}

// roundHours converts a clocked duration to hours with two decimals.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
