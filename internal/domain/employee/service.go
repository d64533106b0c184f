package employee

import "context"

// EmployeeService defines business logic for employee profile management
type EmployeeService interface {
	// CreateEmployee creates a new employee profile (admin)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// GetMyProfile retrieves the profile of the authenticated employee
	GetMyProfile(ctx context.Context) (EmployeeResponse, error)

	// ListEmployees retrieves employee profiles with filters (admin)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// UpdateEmployee updates an employee profile (admin)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee profile (admin)
	DeleteEmployee(ctx context.Context, id string) error
}
