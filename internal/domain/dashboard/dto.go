package dashboard

// ========== ADMIN OVERVIEW ==========

// OverviewResponse is the combined response for the admin dashboard endpoint
type OverviewResponse struct {
	EmployeeSummary EmployeeSummaryResponse `json:"employee_summary"`
	AttendanceToday AttendanceTodayResponse `json:"attendance_today"`
	LeaveSummary    LeaveSummaryResponse    `json:"leave_summary"`
	RecentActivity  []ActivityItem          `json:"recent_activity"`
}

// EmployeeSummaryResponse contains headcount figures
type EmployeeSummaryResponse struct {
	TotalEmployees    int64 `json:"total_employees"`
	ActiveEmployees   int64 `json:"active_employees"`
	InactiveEmployees int64 `json:"inactive_employees"`
	Departments       int64 `json:"departments"`
}

// AttendanceTodayResponse represents today's attendance counts
type AttendanceTodayResponse struct {
	Present        int64   `json:"present"` // checked in today
	OnTime         int64   `json:"on_time"`
	Late           int64   `json:"late"`
	CheckedOut     int64   `json:"checked_out"`
	Absent         int64   `json:"absent"` // active employees with no record
	OnTimePercent  float64 `json:"on_time_percent"`
	LatePercent    float64 `json:"late_percent"`
	PresentPercent float64 `json:"present_percent"`
	Date           string  `json:"date"` // Format: "YYYY-MM-DD"
}

// LeaveSummaryResponse represents leave request counts by status
type LeaveSummaryResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// ActivityItem is a single row in the recent activity feed
type ActivityItem struct {
	No           int     `json:"no"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Status       string  `json:"status"`              // on_time or late
	CheckIn      *string `json:"check_in,omitempty"`  // Format: "HH:MM"
	CheckOut     *string `json:"check_out,omitempty"` // Format: "HH:MM"
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeOverviewResponse is the personal dashboard for one employee
type EmployeeOverviewResponse struct {
	CheckedInToday  bool    `json:"checked_in_today"`
	CheckedOutToday bool    `json:"checked_out_today"`
	LateToday       bool    `json:"late_today"`
	HoursToday      float64 `json:"hours_today"`
	PendingLeaves   int64   `json:"pending_leaves"`
	ApprovedLeaves  int64   `json:"approved_leaves"`
}
