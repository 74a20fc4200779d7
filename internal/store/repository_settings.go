package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

// settingsRepository keeps the single settings row of each owner.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
	q      querier
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{db: db, q: db.DB, logger: logger}
}

// GetSettings returns the row of ownerID or [ErrNotFound].
func (r *settingsRepository) GetSettings(ctx context.Context, ownerID string) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSettingsQuery(r.db.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSettings").Msg("failed to build query")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := scanSettings(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSettings").Msg("error scanning settings")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return settings, nil
}

// CreateSettings inserts the row. A concurrent first access that already
// created it is not an error.
func (r *settingsRepository) CreateSettings(ctx context.Context, settings models.Settings) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSettingsQuery(r.db.builder, settings)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.CreateSettings").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return nil
		}
		log.Err(err).Str("func", "*settingsRepository.CreateSettings").Str("owner_id", settings.OwnerID).Msg("error inserting settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *settingsRepository) UpdateSettings(ctx context.Context, settings models.Settings) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSettingsQuery(r.db.builder, settings)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpdateSettings").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpdateSettings").Str("owner_id", settings.OwnerID).Msg("error updating settings")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
