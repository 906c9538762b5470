package employee

import (
	"context"
	"fmt"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
)

type Service struct {
	employee.Repository
}

func NewService(repository employee.Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) Get(ctx context.Context, id string) (*employee.Employee, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]employee.Employee, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repository.List(ctx, limit, offset)
}

// UpdateSalary sets the monthly base used by salary statements.
func (s *Service) UpdateSalary(ctx context.Context, id string, dto employee.UpdateSalaryDTO) error {
	if err := s.Repository.UpdateSalary(ctx, id, dto.MonthlyBase); err != nil {
		return fmt.Errorf("failed to update salary: %w", err)
	}
	return nil
}

// Deactivate soft-deletes the account; leave and attendance history stays.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	if err := s.Repository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}
