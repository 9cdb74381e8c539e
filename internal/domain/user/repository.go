package user

import "context"

// UserRepository defines data access for dashboard accounts.
type UserRepository interface {
	// Create inserts a new account
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves an account by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (User, error)
}
