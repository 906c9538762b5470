package attendance

import "time"

// Record is one employee-day of attendance. Date is stored at day
// granularity; ClockIn and ClockOut carry the full timestamps.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time

	// TotalHours is the clocked duration in hours, rounded to two decimals.
	TotalHours *float64

	// IsHolidayWork marks a clock-in on a company holiday. COLeaveGranted
	// flips to true when the resulting compensatory-off credit has been
	// applied, which happens at most once per record.
	IsHolidayWork  bool
	COLeaveGranted bool

	CreatedAt time.Time
	UpdatedAt time.Time

	EmployeeName *string
}

type RecordResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	Date           string   `json:"date"`
	ClockIn        *string  `json:"clock_in,omitempty"`
	ClockOut       *string  `json:"clock_out,omitempty"`
	TotalHours     *float64 `json:"total_hours,omitempty"`
	IsHolidayWork  bool     `json:"is_holiday_work"`
	COLeaveGranted bool     `json:"co_leave_granted"`
}

func (r *Record) ToResponse() RecordResponse {
	resp := RecordResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   r.EmployeeName,
		Date:           r.Date.Format("2006-01-02"),
		TotalHours:     r.TotalHours,
		IsHolidayWork:  r.IsHolidayWork,
		COLeaveGranted: r.COLeaveGranted,
	}
	if r.ClockIn != nil {
		s := r.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &s
	}
	if r.ClockOut != nil {
		s := r.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &s
	}
	return resp
}

type ListFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
