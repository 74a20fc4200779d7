package adapter

import "errors"

var (
	// ErrPostalCodeUnavailable is returned when no provider could resolve a CEP.
	ErrPostalCodeUnavailable = errors.New("postal code providers unavailable")

	ErrCEPNotFound       = errors.New("cep not found")
	ErrCEPRejected       = errors.New("cep rejected by provider")
	ErrProviderThrottled = errors.New("provider rate limit reached")
	ErrProviderDown      = errors.New("provider unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected provider status")
	ErrEmptyAddress      = errors.New("provider returned an empty address")
)
