package service

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionExpired     = errors.New("session expired")

	ErrForbidden             = errors.New("forbidden")
	ErrIdentityProofMismatch = errors.New("identity proof does not match")

	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrCredentialsRequired     = errors.New("username and password are required")
	ErrUsernameRequired        = errors.New("username is required")
	ErrWeakPassword            = errors.New("password is too short")
	ErrIdentityProofRequired   = errors.New("national id and birthdate are required")
	ErrInvalidPostalCode       = errors.New("postal code must have 8 digits")
	ErrCannotDeleteSelf        = errors.New("cannot delete the current user")
	ErrCurrentPasswordRequired = errors.New("current password is required")
	ErrWrongCurrentPassword    = errors.New("current password does not match")
	ErrUnknownEmployee         = errors.New("employee is not visible to the caller")
	ErrInvalidPeriod           = errors.New("invalid report period")
	ErrNoAdminFound            = errors.New("no admin user exists")

	ErrTokenCreationFailed = errors.New("session token creation failed")
)
