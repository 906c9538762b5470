package response

import (
	"errors"
	"net/http"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/attendance"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/holiday"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/notification"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Insufficient balance and overlap carry figures worth surfacing
	var insufficientErr *leave.InsufficientBalanceError
	if errors.As(err, &insufficientErr) {
		BadRequest(w, "Insufficient leave balance", map[string]string{
			"leave_type": string(insufficientErr.Type),
			"available":  insufficientErr.Available.String(),
			"requested":  insufficientErr.Requested.String(),
		})
		return
	}

	var overlapErr *leave.OverlapError
	if errors.As(err, &overlapErr) {
		Conflict(w, "Date range overlaps an existing leave request", map[string]string{
			"conflict_status": string(overlapErr.ConflictStatus),
		})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered", nil)
	case errors.Is(err, employee.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, employee.ErrInvalidOTP):
		BadRequest(w, "Invalid or expired OTP code", nil)
	case errors.Is(err, employee.ErrAccountInactive):
		Forbidden(w, "Account has been deactivated")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrUnknownLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Date range overlaps an existing leave request", nil)
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed", nil)
	case errors.Is(err, leave.ErrNotCancellable):
		Conflict(w, "Leave request can no longer be cancelled", nil)
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")
	case errors.Is(err, leave.ErrSelfReview):
		Forbidden(w, "Cannot review your own leave request")
	case errors.Is(err, leave.ErrNoWorkingDays):
		BadRequest(w, "Requested range contains no working days", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date is before start date", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today", nil)
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No clock-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateHoliday):
		Conflict(w, "Holiday already exists on that date", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
