package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrInvalidStatusTransition      = errors.New("invalid leave status transition")
)
