package workhours

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/attendance"
	"github.com/ems-labs/ems-backend-go/internal/domain/workhours"
	"github.com/go-chi/jwtauth/v5"
)

type WorkHoursServiceImpl struct {
	attendance.AttendanceRepository
	aggregator Aggregator
}

func NewWorkHoursService(repo attendance.AttendanceRepository, aggregator Aggregator) workhours.WorkHoursService {
	return &WorkHoursServiceImpl{
		AttendanceRepository: repo,
		aggregator:           aggregator,
	}
}

// GetMySummary implements workhours.WorkHoursService.
func (s *WorkHoursServiceImpl) GetMySummary(ctx context.Context) (*workhours.SummaryResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	return s.summarize(ctx, employeeID)
}

// GetSummaryByEmployee implements workhours.WorkHoursService.
func (s *WorkHoursServiceImpl) GetSummaryByEmployee(ctx context.Context, employeeID string) (*workhours.SummaryResponse, error) {
	return s.summarize(ctx, employeeID)
}

func (s *WorkHoursServiceImpl) summarize(ctx context.Context, employeeID string) (*workhours.SummaryResponse, error) {
	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for summary: %w", err)
	}

	weekdays, stats := s.aggregator.Summarize(records, time.Now())

	return &workhours.SummaryResponse{
		EmployeeID: employeeID,
		Weekdays:   weekdays,
		Stats:      stats,
	}, nil
}
