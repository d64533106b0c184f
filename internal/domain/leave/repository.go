package leave

import "context"

// LeaveRequestRepository defines data access methods for leave requests
type LeaveRequestRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves leave requests with filters, newest applied first
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// Update persists a status decision on a leave request. Only a
	// request still pending can be updated; a request decided in the
	// meantime returns ErrLeaveRequestAlreadyProcessed
	Update(ctx context.Context, request LeaveRequest) error
}
