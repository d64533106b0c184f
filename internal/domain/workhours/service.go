package workhours

import "context"

// WorkHoursService derives work-hours summaries from attendance records
type WorkHoursService interface {
	// GetMySummary aggregates the authenticated employee's attendance
	// into weekday buckets and summary statistics. Sessions that are
	// still open accrue time up to the moment of the call.
	GetMySummary(ctx context.Context) (*SummaryResponse, error)

	// GetSummaryByEmployee aggregates any employee's records, for
	// admin views.
	GetSummaryByEmployee(ctx context.Context, employeeID string) (*SummaryResponse, error)
}
