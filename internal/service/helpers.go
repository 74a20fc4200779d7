package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hcorbage/corb3d/internal/catalog"
	"github.com/hcorbage/corb3d/internal/crypto"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

// clock returns the current time. Services store and compare times in UTC.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// scopeOf asks the policy for the scope of op on kind and turns a refusal into
// [ErrForbidden].
func scopeOf(ctx context.Context, pol *policy.Policy, p policy.Principal, kind policy.Kind, op policy.Operation) (policy.Scope, error) {
	scope, err := pol.Scope(ctx, p, kind, op)
	if errors.Is(err, policy.ErrForbidden) {
		return policy.Scope{}, fmt.Errorf("%w: %w", ErrForbidden, err)
	}
	if err != nil {
		return policy.Scope{}, fmt.Errorf("evaluating access policy for %s: %w", kind, err)
	}
	return scope, nil
}

func checkPasswordStrength(password string) error {
	if len(password) < crypto.MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// seedMaterials copies the preset catalogue into the materials of ownerID when
// that owner has none. It returns the number of rows created.
func seedMaterials(ctx context.Context, materials store.MaterialRepository, ownerID string) (int, error) {
	count, err := materials.CountMaterials(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("counting materials: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	presets, err := catalog.Materials()
	if err != nil {
		return 0, err
	}

	for _, preset := range presets {
		if _, err = materials.CreateMaterial(ctx, models.Material{
			OwnerID:   ownerID,
			Name:      preset.Name,
			CostPerKg: preset.CostPerKg,
		}); err != nil {
			return 0, fmt.Errorf("seeding material %q: %w", preset.Name, err)
		}
	}

	logger.FromContext(ctx).Info().Str("owner_id", ownerID).Int("materials", len(presets)).Msg("seeded default materials")
	return len(presets), nil
}

// settingsOf returns the settings row of ownerID, creating it with defaults on
// first access.
func settingsOf(ctx context.Context, settings store.SettingsRepository, ownerID string) (models.Settings, error) {
	found, err := settings.GetSettings(ctx, ownerID)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Settings{}, fmt.Errorf("loading settings: %w", err)
	}

	created := models.DefaultSettings(ownerID)
	if err = settings.CreateSettings(ctx, created); err != nil {
		return models.Settings{}, fmt.Errorf("creating default settings: %w", err)
	}
	return created, nil
}
