// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNoHTTPHandler = errors.New("server: no HTTP handler to serve")
	ErrNoHTTPAddress = errors.New("server: HTTP address is empty")
)
