// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/hcorbage/corb3d/internal/app"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{
			name:       "PUT on a resource item",
			method:     http.MethodPut,
			path:       "/api/clients/c1",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "PATCH, DELETE",
		},
		{
			name:       "DELETE on a collection",
			method:     http.MethodDelete,
			path:       "/api/materials",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "GET, POST",
		},
		{
			name:       "PATCH on a collection",
			method:     http.MethodPatch,
			path:       "/api/materials",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "GET, POST",
		},
		{
			name:       "PUT on a collection with trailing slash",
			method:     http.MethodPut,
			path:       "/api/stock-items/",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "GET, POST",
		},
		{
			name:       "GET on a nested item route",
			method:     http.MethodGet,
			path:       "/api/calculations/q1/status",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "PATCH",
		},
		{
			name:       "GET on login",
			method:     http.MethodGet,
			path:       "/api/auth/login",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "POST",
		},
		{
			name:       "POST on settings",
			method:     http.MethodPost,
			path:       "/api/settings",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "GET, PATCH",
		},
		{
			name:       "unknown path is 404",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveAs(t, &service.Services{}, &adminSession, tt.method, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			if tt.wantStatus == http.StatusMethodNotAllowed {
				assert.Equal(t, app.MsgMethodNotAllowed, messageOf(t, rec))
			} else {
				assert.Equal(t, app.MsgNotFound, messageOf(t, rec))
			}
		})
	}
}

func TestMatchSegments(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/clients/", "/api/clients", true},
		{"/api/clients/{id}", "/api/clients/c1", true},
		{"/api/clients/{id}", "/api/clients", false},
		{"/api/clients/{id}", "/api/clients/c1/extra", false},
		{"/api/calculations/{id}/status", "/api/calculations/q1/status", true},
		{"/api/calculations/{id}/status", "/api/calculations/q1/total", false},
		{"/assets/*", "/assets/css/app.css", true},
		{"/healthz", "/readyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSegments(splitPath(tt.pattern), splitPath(tt.path)))
		})
	}
}
