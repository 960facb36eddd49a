package users

import (
	"time"
)

// User represents a registered account.
// PasswordHash is never serialized; profile embedding in post and comment
// responses is restricted to the Profile subset.
type User struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`

	PasswordHash string `json:"-"`
}

// Profile is the public subset of a user embedded in post and comment
// responses. Email and credential fields must never appear here.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// Profile projects the public subset of the user.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

// PublicView is a user as shown on a public profile page: everything a
// visitor may see, excluding email and credentials.
type PublicView struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
}

// Public projects the public profile page view of the user.
func (u *User) Public() *PublicView {
	return &PublicView{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest represents input for account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents input for credential verification
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial profile update.
// Nil fields keep their current value; Bio may be cleared to empty.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}
