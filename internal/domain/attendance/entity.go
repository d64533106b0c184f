package attendance

import (
	"time"
)

// Attendance is one employee's record for one work day. It is created by
// check-in and updated exactly once by check-out; (EmployeeID, Date) is
// the natural unique key.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time // work day, not a timestamp
	CheckIn       *time.Time
	CheckOut      *time.Time
	IsLate        bool // decided at check-in, immutable afterward
	WorkedMinutes int  // zero until check-out
	HoursWorked   float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
	Department   *string
}
