package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

type settingsService struct {
	repos  *store.Repositories
	policy *policy.Policy

	logger *logger.Logger
}

func NewSettingsService(repos *store.Repositories, pol *policy.Policy, logger *logger.Logger) SettingsService {
	return &settingsService{repos: repos, policy: pol, logger: logger}
}

// GetSettings returns the settings of the caller, creating them with defaults
// on first access. Sellers without a logo of their own show the logo of the
// first admin.
func (s *settingsService) GetSettings(ctx context.Context, p policy.Principal) (models.Settings, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Settings, policy.Read)
	if err != nil {
		return models.Settings{}, err
	}

	settings, err := settingsOf(ctx, s.repos.Settings, scope.Owner())
	if err != nil {
		return models.Settings{}, err
	}

	if !p.IsAdmin && utils.TrimmedOrNil(settings.LogoURL) == nil {
		settings.LogoURL = s.inheritedLogo(ctx)
	}
	return settings, nil
}

func (s *settingsService) inheritedLogo(ctx context.Context) *string {
	log := logger.FromContext(ctx)

	admin, err := s.repos.Users.GetFirstAdmin(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Err(err).Msg("failed to load first admin for logo")
		}
		return nil
	}

	adminSettings, err := s.repos.Settings.GetSettings(ctx, admin.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn().Err(err).Msg("failed to load admin settings for logo")
		}
		return nil
	}
	return utils.TrimmedOrNil(adminSettings.LogoURL)
}

// UpdateSettings applies the fields present in update to the caller's settings.
func (s *settingsService) UpdateSettings(ctx context.Context, p policy.Principal, update models.SettingsUpdate) (models.Settings, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Settings, policy.Write)
	if err != nil {
		return models.Settings{}, err
	}

	settings, err := settingsOf(ctx, s.repos.Settings, scope.Owner())
	if err != nil {
		return models.Settings{}, err
	}

	update.Apply(&settings)
	if err = s.repos.Settings.UpdateSettings(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("updating settings: %w", err)
	}
	return settings, nil
}
