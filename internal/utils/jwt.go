package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hcorbage/corb3d/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT naming a server-side session.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - ID        (jti): the session ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): expiresAt
//
// Returns an error if issuer, sessionID or signKey is empty.
func GenerateSessionToken(issuer, sessionID, userID string, expiresAt time.Time, signKey string) (models.Token, error) {
	if issuer == "" || sessionID == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, SessionID: sessionID}, nil
}

// ParseSessionToken validates the signature, issuer and expiry of tokenString
// and returns the token with SessionID taken from its jti claim.
//
// Tokens signed with any algorithm other than HS256 are rejected.
func ParseSessionToken(tokenString, signKey, issuer string) (models.Token, error) {
	parsed := models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	sessionID, err := parsed.GetSessionID()
	if err != nil {
		return models.Token{}, err
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.SessionID = sessionID

	return parsed, nil
}
