package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Get(t *testing.T) {
	var got policy.Principal
	svcs := &service.Services{SettingsService: &fakeSettingsService{
		getFn: func(_ context.Context, p policy.Principal) (models.Settings, error) {
			got = p
			s := models.DefaultSettings(p.UserID)
			s.LogoURL = strPtr("data:image/png;base64,AAAA")
			return s, nil
		},
	}}

	rec := serveAs(t, svcs, &sellerSession, http.MethodGet, "/api/settings", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-seller", got.UserID)
	settings := decodeBody[models.Settings](t, rec)
	assert.InDelta(t, float64(models.DefaultProfitMarginPercent), settings.ProfitMarginPercent, 1e-9)
	require.NotNil(t, settings.LogoURL)
	assert.Equal(t, "data:image/png;base64,AAAA", *settings.LogoURL)
}

func TestSettings_Update(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCall   bool
	}{
		{name: "partial update", body: `{"laborCostPerHour":8.5}`, wantStatus: http.StatusOK, wantCall: true},
		{name: "empty update", body: `{}`, wantStatus: http.StatusOK, wantCall: true},
		{name: "negative energy cost", body: `{"energyCostPerKWh":-0.1}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"laborCostPerHour":"abc"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svcs := &service.Services{SettingsService: &fakeSettingsService{
				updateFn: func(_ context.Context, p policy.Principal, u models.SettingsUpdate) (models.Settings, error) {
					called = true
					s := models.DefaultSettings(p.UserID)
					u.Apply(&s)
					return s, nil
				},
			}}

			rec := serveAs(t, svcs, &adminSession, http.MethodPatch, "/api/settings", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCall, called)
			if tt.name == "partial update" {
				settings := decodeBody[models.Settings](t, rec)
				assert.InDelta(t, 8.5, settings.LaborCostPerHour, 1e-9)
				assert.InDelta(t, float64(models.DefaultPrinterLifespanHours), settings.PrinterLifespanHours, 1e-9)
			}
		})
	}
}
