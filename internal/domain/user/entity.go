package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can manage employees and review leave requests
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	DisplayName     string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReviewLeaves checks if user can approve or reject leave requests
func (u *User) CanReviewLeaves() bool {
	return u.IsAdmin()
}
