package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee
	// on a specific work day. Used to prevent double check-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetMyAttendance retrieves attendance records for a specific employee
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployee retrieves every attendance record for an employee,
	// used by the work-hours aggregation fold
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListOpenSessionsBefore retrieves records with a check-in but no
	// check-out dated strictly before the given work day
	ListOpenSessionsBefore(ctx context.Context, date time.Time) ([]Attendance, error)
}
