package report

import (
	"context"
	"fmt"
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/report"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/calendar"
)

type Service struct {
	report.Repository
}

func NewService(repository report.Repository) *Service {
	return &Service{Repository: repository}
}

// Overview assembles the manager dashboard numbers for the given month.
func (s *Service) Overview(ctx context.Context, year int, month time.Month) (*report.OverviewResponse, error) {
	monthStart, monthEnd := calendar.MonthBounds(year, month)

	totalEmployees, err := s.Repository.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	pending, err := s.Repository.CountRequestsByStatus(ctx, "pending", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}

	approved, err := s.Repository.CountRequestsByStatus(ctx, "approved", &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved requests: %w", err)
	}

	rejected, err := s.Repository.CountRequestsByStatus(ctx, "rejected", &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count rejected requests: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	onLeave, err := s.Repository.CountOnLeave(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	usage, err := s.Repository.UsageByType(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate usage: %w", err)
	}

	byDepartment, err := s.Repository.UsageByDepartment(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department usage: %w", err)
	}

	return &report.OverviewResponse{
		TotalEmployees:    totalEmployees,
		PendingRequests:   pending,
		ApprovedThisMonth: approved,
		RejectedThisMonth: rejected,
		OnLeaveToday:      onLeave,
		UsageByType:       usage,
		ByDepartment:      byDepartment,
	}, nil
}
