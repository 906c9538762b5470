package report

// LeaveTypeUsage is the aggregate of approved days for one leave type.
type LeaveTypeUsage struct {
	Type         string `json:"type"`
	RequestCount int    `json:"request_count"`
	TotalDays    string `json:"total_days"`
}

// DepartmentUsage is the count of leave requests filed by one department.
type DepartmentUsage struct {
	Department   string `json:"department"`
	RequestCount int    `json:"request_count"`
}

// OverviewResponse is the manager-facing summary of the leave system.
type OverviewResponse struct {
	TotalEmployees    int               `json:"total_employees"`
	PendingRequests   int               `json:"pending_requests"`
	ApprovedThisMonth int               `json:"approved_this_month"`
	RejectedThisMonth int               `json:"rejected_this_month"`
	OnLeaveToday      int               `json:"on_leave_today"`
	UsageByType       []LeaveTypeUsage  `json:"usage_by_type"`
	ByDepartment      []DepartmentUsage `json:"by_department"`
}
