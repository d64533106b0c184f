package user

import "context"

// UserRepository defines data access methods for user accounts
type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, user User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// LinkGoogleAccount attaches a Google OAuth identity to an existing user
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
