package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/dashboard"
	"github.com/ems-labs/ems-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeSummary implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetEmployeeSummary(ctx context.Context) (*dashboard.EmployeeSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'inactive') AS inactive,
			COUNT(DISTINCT department) AS departments
		FROM employees
	`

	var stats dashboard.EmployeeSummaryStats
	err := q.QueryRow(ctx, query).Scan(&stats.Total, &stats.Active, &stats.Inactive, &stats.Departments)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee summary: %w", err)
	}

	return &stats, nil
}

// GetAttendanceStatsByDay implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetAttendanceStatsByDay(ctx context.Context, date time.Time) (*dashboard.AttendanceDayStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE check_in IS NOT NULL) AS present,
			COUNT(*) FILTER (WHERE check_in IS NOT NULL AND NOT is_late) AS on_time,
			COUNT(*) FILTER (WHERE check_in IS NOT NULL AND is_late) AS late,
			COUNT(*) FILTER (WHERE check_out IS NOT NULL) AS checked_out
		FROM attendances
		WHERE date = $1
	`

	var stats dashboard.AttendanceDayStats
	err := q.QueryRow(ctx, query, date).Scan(&stats.Present, &stats.OnTime, &stats.Late, &stats.CheckedOut)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance stats by day: %w", err)
	}

	return &stats, nil
}

// GetLeaveStatusStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetLeaveStatusStats(ctx context.Context) (*dashboard.LeaveStatusStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'approved') AS approved,
			COUNT(*) FILTER (WHERE status = 'rejected') AS rejected
		FROM leave_requests
	`

	var stats dashboard.LeaveStatusStats
	err := q.QueryRow(ctx, query).Scan(&stats.Pending, &stats.Approved, &stats.Rejected)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave status stats: %w", err)
	}

	return &stats, nil
}

// GetRecentActivity implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetRecentActivity(ctx context.Context, date time.Time, limit int) ([]dashboard.ActivityItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.full_name, e.department, a.is_late,
			   to_char(a.check_in, 'HH24:MI') AS check_in,
			   to_char(a.check_out, 'HH24:MI') AS check_out
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.check_in DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, date, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	var items []dashboard.ActivityItem
	no := 1
	for rows.Next() {
		var item dashboard.ActivityItem
		var isLate bool
		if err := rows.Scan(&item.EmployeeName, &item.Department, &isLate, &item.CheckIn, &item.CheckOut); err != nil {
			return nil, fmt.Errorf("failed to scan activity item: %w", err)
		}
		item.No = no
		if isLate {
			item.Status = "late"
		} else {
			item.Status = "on_time"
		}
		items = append(items, item)
		no++
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// GetEmployeeDayStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetEmployeeDayStats(ctx context.Context, employeeID string, date time.Time) (*dashboard.EmployeeDayStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2 AND check_in IS NOT NULL) AS checked_in,
			EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2 AND check_out IS NOT NULL) AS checked_out,
			COALESCE((SELECT is_late FROM attendances WHERE employee_id = $1 AND date = $2), false) AS late,
			COALESCE((SELECT worked_minutes FROM attendances WHERE employee_id = $1 AND date = $2), 0) AS worked_minutes,
			(SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1 AND status = 'pending') AS pending_leaves,
			(SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1 AND status = 'approved') AS approved_leaves
	`

	var stats dashboard.EmployeeDayStats
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&stats.CheckedIn, &stats.CheckedOut, &stats.Late,
		&stats.WorkedMinutes, &stats.PendingLeaves, &stats.ApprovedLeaves,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee day stats: %w", err)
	}

	return &stats, nil
}
