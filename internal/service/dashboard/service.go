package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/dashboard"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: repo}
}

// GetOverview returns combined admin dashboard data using parallel goroutines,
// one query per goroutine
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (*dashboard.OverviewResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		employeeSummary dashboard.EmployeeSummaryResponse
		attendanceToday dashboard.AttendanceTodayResponse
		leaveSummary    dashboard.LeaveSummaryResponse
		recentActivity  []dashboard.ActivityItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	var activeEmployees int64

	// 1. Headcount
	g.Go(func() error {
		stats, err := s.GetEmployeeSummary(gCtx)
		if err != nil {
			return err
		}
		activeEmployees = stats.Active
		employeeSummary = dashboard.EmployeeSummaryResponse{
			TotalEmployees:    stats.Total,
			ActiveEmployees:   stats.Active,
			InactiveEmployees: stats.Inactive,
			Departments:       stats.Departments,
		}
		return nil
	})

	// 2. Today's attendance
	g.Go(func() error {
		stats, err := s.GetAttendanceStatsByDay(gCtx, today)
		if err != nil {
			return err
		}
		attendanceToday = dashboard.AttendanceTodayResponse{
			Present:    stats.Present,
			OnTime:     stats.OnTime,
			Late:       stats.Late,
			CheckedOut: stats.CheckedOut,
			Date:       today.Format("2006-01-02"),
		}
		if stats.Present > 0 {
			attendanceToday.OnTimePercent = float64(stats.OnTime) / float64(stats.Present) * 100
			attendanceToday.LatePercent = float64(stats.Late) / float64(stats.Present) * 100
		}
		return nil
	})

	// 3. Leave requests by status
	g.Go(func() error {
		stats, err := s.GetLeaveStatusStats(gCtx)
		if err != nil {
			return err
		}
		leaveSummary = dashboard.LeaveSummaryResponse{
			Pending:  stats.Pending,
			Approved: stats.Approved,
			Rejected: stats.Rejected,
		}
		return nil
	})

	// 4. Latest check-ins
	g.Go(func() error {
		items, err := s.GetRecentActivity(gCtx, today, 10)
		if err != nil {
			return err
		}
		recentActivity = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Absent and present-percent need the headcount, so they are
	// derived after the goroutines join
	if activeEmployees > 0 {
		attendanceToday.Absent = activeEmployees - attendanceToday.Present
		if attendanceToday.Absent < 0 {
			attendanceToday.Absent = 0
		}
		attendanceToday.PresentPercent = float64(attendanceToday.Present) / float64(activeEmployees) * 100
	}

	return &dashboard.OverviewResponse{
		EmployeeSummary: employeeSummary,
		AttendanceToday: attendanceToday,
		LeaveSummary:    leaveSummary,
		RecentActivity:  recentActivity,
	}, nil
}

// GetMyOverview returns the authenticated employee's personal dashboard
func (s *DashboardServiceImpl) GetMyOverview(ctx context.Context) (*dashboard.EmployeeOverviewResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.GetEmployeeDayStats(ctx, employeeID, today)
	if err != nil {
		return nil, err
	}

	return &dashboard.EmployeeOverviewResponse{
		CheckedInToday:  stats.CheckedIn,
		CheckedOutToday: stats.CheckedOut,
		LateToday:       stats.Late,
		HoursToday:      float64(stats.WorkedMinutes) / 60,
		PendingLeaves:   stats.PendingLeaves,
		ApprovedLeaves:  stats.ApprovedLeaves,
	}, nil
}
