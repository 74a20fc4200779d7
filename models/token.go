package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the signed session cookie value.
//
// The token carries no authority by itself: its "jti" claim names a row of the
// server-side session store, which is what the auth middleware trusts.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims gives access to sub, jti, exp and the rest of RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form written into the cookie.
	SignedString string `json:"-"`

	// SessionID is the parsed "jti" claim.
	SessionID string `json:"-"`
}

// GetSessionID returns the session identifier carried in the "jti" claim.
func (t *Token) GetSessionID() (string, error) {
	if t.ID == "" {
		return "", errors.New("token carries no session id")
	}
	return t.ID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
