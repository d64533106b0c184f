package attendance

import (
	"github.com/ems-labs/ems-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceFilter struct {
	EmployeeID   *string
	EmployeeName *string
	Date         *string
	StartDate    *string
	EndDate      *string
	Late         *bool
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateDateFields(f.Date, f.StartDate, f.EndDate)...)

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"date", "check_in", "check_out", "employee_name"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: date, check_in, check_out, employee_name",
		})
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be either 'asc' or 'desc'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	Date      *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateDateFields(f.Date, f.StartDate, f.EndDate)...)

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"date", "check_in", "check_out"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: date, check_in, check_out",
		})
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be either 'asc' or 'desc'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateDateFields(fields ...*string) validator.ValidationErrors {
	names := []string{"date", "start_date", "end_date"}
	var errs validator.ValidationErrors
	for i, f := range fields {
		if f != nil && *f != "" {
			if _, ok := validator.IsValidDate(*f); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   names[i],
					Message: names[i] + " must be in YYYY-MM-DD format",
				})
			}
		}
	}
	return errs
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Department    *string `json:"department,omitempty"`
	Date          string  `json:"date"`
	CheckInTime   *string `json:"check_in_time"`
	CheckOutTime  *string `json:"check_out_time"`
	IsLate        bool    `json:"is_late"`
	WorkedMinutes int     `json:"worked_minutes"`
	HoursWorked   float64 `json:"hours_worked"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
