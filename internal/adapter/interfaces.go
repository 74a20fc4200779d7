// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the corb3d server.
//
// The only integration today is the postal-code (CEP) lookup. [PostalCodeProvider]
// decouples the service layer from the concrete providers: BrasilAPI is asked
// first and ViaCEP is used as a fallback on any failure, network or non-2xx.
//
// Provider failures are mapped from HTTP status codes by providerError so that
// callers can use [errors.Is]. When the whole chain fails the error wraps
// [ErrPostalCodeUnavailable].
package adapter

import (
	"context"

	"github.com/hcorbage/corb3d/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PostalCodeProvider resolves a Brazilian postal code into an address.
type PostalCodeProvider interface {
	// Lookup resolves cep, which must already be normalised to 8 digits.
	// Implementations return an error for network failures, non-2xx
	// responses and bodies that carry no address.
	Lookup(ctx context.Context, cep string) (models.PostalAddress, error)
}
