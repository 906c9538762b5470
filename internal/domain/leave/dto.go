package leave

import (
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestDTO struct {
	Type           string  `json:"type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	IsHalfDay      bool    `json:"is_half_day"`
	HalfDaySegment *string `json:"half_day_segment,omitempty"`
	Reason         string  `json:"reason"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
}

func (dto *CreateLeaveRequestDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(dto.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	} else if _, err := ParseType(dto.Type); err != nil {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of CL, SL, EL, ML, PL, CO, LWP, BL, SBL"})
	}

	if validator.IsEmpty(dto.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if !validator.IsValidDate(dto.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(dto.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if !validator.IsValidDate(dto.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}

	if dto.IsHalfDay {
		if dto.HalfDaySegment == nil || validator.IsEmpty(*dto.HalfDaySegment) {
			errs = append(errs, validator.ValidationError{Field: "half_day_segment", Message: "half_day_segment is required for half-day requests"})
		} else if !validator.IsInSlice(*dto.HalfDaySegment, []string{string(FirstHalf), string(SecondHalf)}) {
			errs = append(errs, validator.ValidationError{Field: "half_day_segment", Message: "half_day_segment must be first-half or second-half"})
		}
		if !validator.IsEmpty(dto.StartDate) && !validator.IsEmpty(dto.EndDate) && dto.StartDate != dto.EndDate {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "half-day requests must start and end on the same date"})
		}
	}

	if validator.IsEmpty(dto.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	return errs
}

// ParsedDates returns the request range at UTC day granularity.
func (dto *CreateLeaveRequestDTO) ParsedDates() (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02", dto.StartDate, time.UTC)
	if err != nil {
		return
	}
	end, err = time.ParseInLocation("2006-01-02", dto.EndDate, time.UTC)
	return
}

type RejectLeaveRequestDTO struct {
	Reason string `json:"reason"`
}

func (dto *RejectLeaveRequestDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(dto.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	return errs
}

type CancelLeaveRequestDTO struct {
	Reason string `json:"reason"`
}

type ListLeaveRequestsFilter struct {
	EmployeeID *string
	Status     *Status
	Type       *Type
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeEmail  *string `json:"employee_email,omitempty"`
	Type           string  `json:"type"`
	TypeName       string  `json:"type_name"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	IsHalfDay      bool    `json:"is_half_day"`
	HalfDaySegment *string `json:"half_day_segment,omitempty"`
	NumberOfDays   string  `json:"number_of_days"`
	Reason         string  `json:"reason"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
	Status         string  `json:"status"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// ToResponse maps the entity to its API shape.
func (r *LeaveRequest) ToResponse() LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   r.EmployeeName,
		EmployeeEmail:  r.EmployeeEmail,
		Type:           string(r.Type),
		TypeName:       r.Type.Name(),
		StartDate:      r.StartDate.Format("2006-01-02"),
		EndDate:        r.EndDate.Format("2006-01-02"),
		IsHalfDay:      r.IsHalfDay,
		NumberOfDays:   r.NumberOfDays.String(),
		Reason:         r.Reason,
		AttachmentURL:  r.AttachmentURL,
		Status:         string(r.Status),
		ReviewedBy:     r.ReviewedBy,
		RejectionReason:    r.RejectionReason,
		CancellationReason: r.CancellationReason,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
	if r.HalfDaySegment != nil {
		s := string(*r.HalfDaySegment)
		resp.HalfDaySegment = &s
	}
	if r.ReviewedAt != nil {
		s := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	if r.CancelledAt != nil {
		s := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}
	return resp
}
