package leave

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, filter ListLeaveRequestsFilter) ([]LeaveRequest, int, error)

	// HasOverlapping reports whether the employee has a pending or approved
	// request intersecting [start, end], returning its status when one exists.
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, Status, error)

	// MarkReviewed flips a pending request to approved or rejected. It
	// returns ErrAlreadyReviewed when the request was no longer pending.
	MarkReviewed(ctx context.Context, id string, status Status, reviewerID string, rejectionReason *string) error

	// MarkCancelled flips a pending or approved request to cancelled and
	// returns the status it held before the flip. It returns
	// ErrNotCancellable when the request was already terminal.
	MarkCancelled(ctx context.Context, id string, reason *string) (Status, error)

	// ListApprovedLWPInRange returns approved LWP requests for the employee
	// whose date range intersects [from, to].
	ListApprovedLWPInRange(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}
