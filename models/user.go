package models

import "time"

// User is an account that can authenticate and own tenant-scoped rows.
// The password hash never leaves the server.
type User struct {
	// ID is the server-assigned identifier (UUID).
	ID string `json:"id"`

	// Username is unique across the whole system.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// IsAdmin marks tenant administrators. Employee-linked users are never admins.
	IsAdmin bool `json:"isAdmin"`

	// PasswordHint is an optional free-text reminder shown on request.
	PasswordHint *string `json:"passwordHint,omitempty"`

	// MustChangePassword is set after a reset or when the account was generated
	// for an employee, and cleared by the forced password change.
	MustChangePassword bool `json:"mustChangePassword"`

	// NationalID holds the digits of the CPF used as identity proof for admins.
	NationalID *string `json:"-"`

	// Birthdate is the identity proof companion of NationalID, compared verbatim.
	Birthdate *string `json:"-"`

	// CreatedAt orders users; the earliest user is the bootstrap admin.
	CreatedAt time.Time `json:"createdAt"`
}

// CurrentUser is the session view of the authenticated caller.
type CurrentUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	IsAdmin       bool   `json:"isAdmin"`
	IsMasterAdmin bool   `json:"isMasterAdmin"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	CurrentUser
	MustChangePassword bool `json:"mustChangePassword"`
}

// CreateUserRequest is sent by the master admin to register a new tenant admin.
type CreateUserRequest struct {
	Username     string  `json:"username" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	PasswordHint *string `json:"passwordHint,omitempty"`
	NationalID   string  `json:"nationalId" validate:"required"`
	Birthdate    string  `json:"birthdate" validate:"required"`
}

// CreatedUser is the response of a user creation.
type CreatedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ChangePasswordRequest changes the password of the target user.
// CurrentPassword is required only when the caller changes its own password.
type ChangePasswordRequest struct {
	CurrentPassword string  `json:"currentPassword,omitempty"`
	NewPassword     string  `json:"newPassword"`
	PasswordHint    *string `json:"passwordHint,omitempty"`
}

// ForceChangePasswordRequest is the post-login forced password change.
type ForceChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ResetPasswordRequest is the open password reset payload.
type ResetPasswordRequest struct {
	Username   string `json:"username"`
	NationalID string `json:"nationalId,omitempty"`
	Birthdate  string `json:"birthdate,omitempty"`
}

// ResetPasswordResult carries the temporary password, shown once.
type ResetPasswordResult struct {
	TempPassword string `json:"tempPassword"`
}

// UsernameRequest is the body of the open lookup endpoints keyed by username.
type UsernameRequest struct {
	Username string `json:"username"`
}
