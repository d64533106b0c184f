package workhours

// DayStatus classifies a weekday bucket against its target hours
type DayStatus string

const (
	DayStatusOff      DayStatus = "off"      // no hours accrued
	DayStatusUnder    DayStatus = "under"    // below target
	DayStatusComplete DayStatus = "complete" // exactly on target
	DayStatusOver     DayStatus = "over"     // above target
)

// DaySummary is one weekday bucket of the work-hours breakdown
type DaySummary struct {
	Day         string    `json:"day"` // weekday name, Monday first
	Hours       float64   `json:"hours"`
	TargetHours float64   `json:"target_hours"`
	Status      DayStatus `json:"status"`
}

// Stats aggregates an employee's attendance records into totals.
// Every value is re-derived from the raw record set on each call.
type Stats struct {
	TotalHours      float64 `json:"total_hours"`
	TargetHours     float64 `json:"target_hours"`
	AverageDaily    float64 `json:"average_daily"`
	DaysWorked      int     `json:"days_worked"`
	DaysUnderTarget int     `json:"days_under_target"`
	OvertimeHours   float64 `json:"overtime_hours"`
}

// SummaryResponse is the combined work-hours view for one employee
type SummaryResponse struct {
	EmployeeID string       `json:"employee_id"`
	Weekdays   []DaySummary `json:"weekdays"`
	Stats      Stats        `json:"stats"`
}
