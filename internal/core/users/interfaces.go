package users

import "context"

// Service defines the business logic interface for user accounts
type Service interface {
	// Register creates a new account. Duplicate username or email returns
	// ErrUserExists and no account is created.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies the credential for the given email.
	// Unknown email returns ErrUserNotFound; a wrong password returns
	// ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// GetByID retrieves a user by identifier
	GetByID(ctx context.Context, id string) (*User, error)

	// UpdateProfile applies a partial update to the caller's own record
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error)
}

// Repository defines the data access interface for users
type Repository interface {
	// Create inserts a new user. A username or email collision returns
	// ErrUserExists.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by identifier, ErrUserNotFound if absent
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by email, ErrUserNotFound if absent
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile field changes
	Update(ctx context.Context, user *User) error
}
