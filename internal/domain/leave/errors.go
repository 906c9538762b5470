package leave

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrUnknownLeaveType     = errors.New("unknown leave type")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrOverlappingRequest   = errors.New("overlapping leave request exists")
	ErrAlreadyReviewed      = errors.New("leave request already reviewed")
	ErrNotCancellable       = errors.New("leave request can no longer be cancelled")
	ErrNotRequestOwner      = errors.New("leave request belongs to another employee")
	ErrSelfReview           = errors.New("cannot review own leave request")
	ErrNoWorkingDays        = errors.New("requested range contains no working days")
	ErrInvalidDateRange     = errors.New("end date is before start date")
)

// InsufficientBalanceError carries the figures behind a failed sufficiency
// check so handlers can report them.
type InsufficientBalanceError struct {
	Type      Type
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: available %s, requested %s",
		e.Type, e.Available.String(), e.Requested.String())
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// OverlapError reports the status of the conflicting request.
type OverlapError struct {
	ConflictStatus Status
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("date range overlaps an existing %s leave request", e.ConflictStatus)
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlappingRequest
}
