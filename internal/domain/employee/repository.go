package employee

import "context"

// EmployeeRepository defines data access methods for employee profiles.
// Lookups are keyed by the canonical employee ID only; there is no
// fallback scan by email.
type EmployeeRepository interface {
	// Create creates a new employee profile
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID retrieves the employee linked to a user account
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// Update updates an existing employee profile
	Update(ctx context.Context, employee Employee) error

	// Delete removes an employee profile
	Delete(ctx context.Context, id string) error
}
