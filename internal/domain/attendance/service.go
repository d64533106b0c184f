package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the authenticated employee's check-in for today,
	// classifying it against the on-time window
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut records the check-out and computes the worked duration
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetToday retrieves today's record for the authenticated employee
	GetToday(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
