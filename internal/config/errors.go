package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	// ErrMissingSessionSecret is returned when no session secret is configured
	// outside DevMode.
	ErrMissingSessionSecret = errors.New("session secret is required (set APP_SESSION_SECRET or enable APP_DEV_MODE)")
	// ErrInvalidSessionTTL indicates a non-positive session lifetime.
	ErrInvalidSessionTTL = errors.New("session ttl must be positive")
	// ErrMissingMasterAdmin indicates an empty master admin username.
	ErrMissingMasterAdmin = errors.New("master admin username is required")
	// ErrUnsupportedDriver indicates a driver other than postgres or sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrMissingDSN indicates an empty database connection string.
	ErrMissingDSN = errors.New("database DSN is required")
)
