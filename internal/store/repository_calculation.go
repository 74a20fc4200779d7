package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

// calculationRepository stores quotes. Reads take an owner set so that the
// admin fan-out resolved by the access policy is applied in SQL.
type calculationRepository struct {
	logger *logger.Logger
	db     *DB
	q      querier
}

func NewCalculationRepository(db *DB, logger *logger.Logger) CalculationRepository {
	logger.Debug().Msg("creating calculation repository")
	return &calculationRepository{db: db, q: db.DB, logger: logger}
}

// ListCalculations returns the quotes of every owner in ownerIDs, newest first.
func (r *calculationRepository) ListCalculations(ctx context.Context, ownerIDs []string) ([]models.Calculation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnedQuery(r.db.builder, calculationsTable, calculationColumns, ownerIDs, "date DESC", "id DESC")
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.ListCalculations").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	calculations, err := queryList(ctx, r.q, query, args, scanCalculation)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.ListCalculations").Strs("owner_ids", ownerIDs).Msg("error listing calculations")
		return nil, err
	}
	return calculations, nil
}

// GetCalculation returns the quote if its owner is one of ownerIDs.
func (r *calculationRepository) GetCalculation(ctx context.Context, calculationID string, ownerIDs []string) (models.Calculation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOneOwnedQuery(r.db.builder, calculationsTable, calculationColumns, calculationID, ownerIDs)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.GetCalculation").Msg("failed to build query")
		return models.Calculation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	calculation, err := scanCalculation(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Calculation{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.GetCalculation").Msg("error scanning calculation")
		return models.Calculation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return calculation, nil
}

// CreateCalculation inserts the quote. A zero Date is set to now and an empty
// Status to pending.
func (r *calculationRepository) CreateCalculation(ctx context.Context, calculation models.Calculation) (models.Calculation, error) {
	log := logger.FromContext(ctx)

	if calculation.ID == "" {
		calculation.ID = r.db.ids.Generate()
	}
	if calculation.Date.IsZero() {
		calculation.Date = time.Now()
	}
	calculation.Date = calculation.Date.UTC()
	if calculation.Status == "" {
		calculation.Status = models.StatusPending
	}

	query, args, err := buildInsertCalculationQuery(r.db.builder, calculation)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.CreateCalculation").Msg("failed to build query")
		return models.Calculation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*calculationRepository.CreateCalculation").Str("owner_id", calculation.OwnerID).Msg("error inserting calculation")
		return models.Calculation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return calculation, nil
}

// UpdateCalculation rewrites the quote matching (ID, OwnerID). Date is never changed.
func (r *calculationRepository) UpdateCalculation(ctx context.Context, calculation models.Calculation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCalculationQuery(r.db.builder, calculation)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.UpdateCalculation").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.UpdateCalculation").Str("calculation_id", calculation.ID).Msg("error updating calculation")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *calculationRepository) SetStatus(ctx context.Context, calculationID, ownerID string, status models.QuoteStatus) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetStatusQuery(r.db.builder, calculationID, ownerID, status)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.SetStatus").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.SetStatus").Str("calculation_id", calculationID).Msg("error updating status")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *calculationRepository) DeleteCalculation(ctx context.Context, calculationID, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedQuery(r.db.builder, calculationsTable, calculationID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.DeleteCalculation").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.DeleteCalculation").Str("calculation_id", calculationID).Msg("error deleting calculation")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *calculationRepository) DeleteAllCalculations(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllOwnedQuery(r.db.builder, calculationsTable, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*calculationRepository.DeleteAllCalculations").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffecting(ctx, r.q, query, args); err != nil {
		log.Err(err).Str("func", "*calculationRepository.DeleteAllCalculations").Str("owner_id", ownerID).Msg("error clearing calculations")
		return err
	}
	return nil
}
