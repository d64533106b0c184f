package leave

import "context"

// LeaveService defines business logic for the leave request lifecycle
type LeaveService interface {
	// Submit creates a pending leave request for the authenticated employee
	Submit(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequestResponse, error)

	// Decide approves or rejects a pending leave request (admin).
	// Decided requests are terminal; a second decision is rejected.
	Decide(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetMyLeaves retrieves leave requests of the authenticated employee
	GetMyLeaves(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	// ListLeaves retrieves all leave requests (admin)
	ListLeaves(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
}
