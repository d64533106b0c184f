package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetOverview returns combined admin dashboard data using goroutines
	GetOverview(ctx context.Context) (*OverviewResponse, error)

	// GetMyOverview returns the authenticated employee's personal dashboard
	GetMyOverview(ctx context.Context) (*EmployeeOverviewResponse, error)
}
