package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity. Created pending by an employee, decided exactly
// once by an admin, never deleted.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   string
	Email        string

	FromDate time.Time
	ToDate   time.Time
	Reason   string

	Status       LeaveRequestStatus
	AppliedAt    time.Time
	ReviewedAt   *time.Time
	ReviewerName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDecided reports whether the request has left the pending state.
// Approved and rejected are terminal: no transition leaves them.
func (r *LeaveRequest) IsDecided() bool {
	return r.Status == LeaveRequestStatusApproved || r.Status == LeaveRequestStatusRejected
}

// CanTransitionTo reports whether the request may move to the target
// status. The only legal transitions are pending to approved and
// pending to rejected.
func (r *LeaveRequest) CanTransitionTo(target LeaveRequestStatus) bool {
	if r.Status != LeaveRequestStatusPending {
		return false
	}
	return target == LeaveRequestStatusApproved || target == LeaveRequestStatusRejected
}
