// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them with
// [errors.Is].
var (
	// ErrMissingSessionCookie is returned by the auth middleware when the
	// request carries no session cookie at all.
	ErrMissingSessionCookie = errors.New("missing session cookie")

	// ErrEmptySessionToken is returned when the session cookie is present but
	// holds an empty value.
	ErrEmptySessionToken = errors.New("empty session token in cookie")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoSessionInContext is returned by handlers behind the auth middleware
	// when the request context unexpectedly carries no session.
	ErrNoSessionInContext = errors.New("no session in request context")
)
