package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is a leave-type code. The set is closed: balances and the request
// state machine are defined over exactly these nine codes.
type Type string

const (
	TypeCasual        Type = "CL"
	TypeSick          Type = "SL"
	TypeEarned        Type = "EL"
	TypeMaternity     Type = "ML"
	TypePaternity     Type = "PL"
	TypeCompOff       Type = "CO"
	TypeWithoutPay    Type = "LWP"
	TypeBereavement   Type = "BL"
	TypeStudy         Type = "SBL"
)

// AllTypes returns every recognized leave-type code.
func AllTypes() []Type {
	return []Type{
		TypeCasual, TypeSick, TypeEarned, TypeMaternity, TypePaternity,
		TypeCompOff, TypeWithoutPay, TypeBereavement, TypeStudy,
	}
}

// ParseType validates a leave-type code.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrUnknownLeaveType
}

// Name returns the human-readable name for a leave-type code.
func (t Type) Name() string {
	switch t {
	case TypeCasual:
		return "Casual Leave"
	case TypeSick:
		return "Sick Leave"
	case TypeEarned:
		return "Earned Leave"
	case TypeMaternity:
		return "Maternity Leave"
	case TypePaternity:
		return "Paternity Leave"
	case TypeCompOff:
		return "Compensatory Off"
	case TypeWithoutPay:
		return "Leave Without Pay"
	case TypeBereavement:
		return "Bereavement Leave"
	case TypeStudy:
		return "Study/Exam Leave"
	default:
		return string(t)
	}
}

// Unbounded reports whether requests of this type skip balance sufficiency
// checks. LWP is tracked through the request records themselves, not through
// a finite balance.
func (t Type) Unbounded() bool {
	return t == TypeWithoutPay
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// HalfDaySegment identifies which half of the day a half-day request covers.
type HalfDaySegment string

const (
	FirstHalf  HalfDaySegment = "first-half"
	SecondHalf HalfDaySegment = "second-half"
)

// HalfDayCharge is the fixed cost of a half-day request regardless of the
// weekday or holiday status of the chosen date.
var HalfDayCharge = decimal.RequireFromString("0.5")

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type

	StartDate time.Time
	EndDate   time.Time

	IsHalfDay      bool
	HalfDaySegment *HalfDaySegment

	NumberOfDays decimal.Decimal

	Reason        string
	AttachmentURL *string

	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time

	RejectionReason    *string
	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields (for responses)
	EmployeeName  *string
	EmployeeEmail *string
}

// Reviewable reports whether the request can still be approved or rejected.
func (r *LeaveRequest) Reviewable() bool {
	return r.Status == StatusPending
}

// Cancellable reports whether the owning employee can still cancel.
func (r *LeaveRequest) Cancellable() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] intersect at
// day granularity.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
