package dashboard

import (
	"context"
	"time"
)

// EmployeeSummaryStats combines all headcount counts in a single query
type EmployeeSummaryStats struct {
	Total       int64
	Active      int64
	Inactive    int64
	Departments int64
}

// AttendanceDayStats combines today's attendance counts
type AttendanceDayStats struct {
	Present    int64
	OnTime     int64
	Late       int64
	CheckedOut int64
}

// LeaveStatusStats combines leave request counts by status
type LeaveStatusStats struct {
	Pending  int64
	Approved int64
	Rejected int64
}

// EmployeeDayStats is one employee's attendance and leave state
type EmployeeDayStats struct {
	CheckedIn     bool
	CheckedOut    bool
	Late          bool
	WorkedMinutes int64
	PendingLeaves int64
	ApprovedLeaves int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetEmployeeSummary returns total, active, inactive, department counts in a single query
	GetEmployeeSummary(ctx context.Context) (*EmployeeSummaryStats, error)

	// GetAttendanceStatsByDay returns present/on_time/late/checked_out counts for a day
	GetAttendanceStatsByDay(ctx context.Context, date time.Time) (*AttendanceDayStats, error)

	// GetLeaveStatusStats returns leave request counts grouped by status
	GetLeaveStatusStats(ctx context.Context) (*LeaveStatusStats, error)

	// GetRecentActivity returns the latest attendance records for a day
	GetRecentActivity(ctx context.Context, date time.Time, limit int) ([]ActivityItem, error)

	// GetEmployeeDayStats returns one employee's state for a day in a single query
	GetEmployeeDayStats(ctx context.Context, employeeID string, date time.Time) (*EmployeeDayStats, error)
}
