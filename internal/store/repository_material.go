package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

type materialRepository struct {
	logger *logger.Logger
	db     *DB
	q      querier
}

func NewMaterialRepository(db *DB, logger *logger.Logger) MaterialRepository {
	logger.Debug().Msg("creating material repository")
	return &materialRepository{db: db, q: db.DB, logger: logger}
}

// ListMaterials keeps insertion order, so a seeded catalogue lists in preset order.
func (r *materialRepository) ListMaterials(ctx context.Context, ownerID string) ([]models.Material, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnedQuery(r.db.builder, materialsTable, materialColumns, []string{ownerID}, "id")
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.ListMaterials").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	materials, err := queryList(ctx, r.q, query, args, scanMaterial)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.ListMaterials").Str("owner_id", ownerID).Msg("error listing materials")
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) GetMaterial(ctx context.Context, materialID, ownerID string) (models.Material, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOneOwnedQuery(r.db.builder, materialsTable, materialColumns, materialID, []string{ownerID})
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.GetMaterial").Msg("failed to build query")
		return models.Material{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	material, err := scanMaterial(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Material{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.GetMaterial").Msg("error scanning material")
		return models.Material{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return material, nil
}

func (r *materialRepository) CountMaterials(ctx context.Context, ownerID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountOwnedQuery(r.db.builder, materialsTable, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.CountMaterials").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*materialRepository.CountMaterials").Msg("error counting materials")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count, nil
}

func (r *materialRepository) CreateMaterial(ctx context.Context, material models.Material) (models.Material, error) {
	log := logger.FromContext(ctx)

	if material.ID == "" {
		material.ID = r.db.ids.Generate()
	}

	query, args, err := buildInsertMaterialQuery(r.db.builder, material)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.CreateMaterial").Msg("failed to build query")
		return models.Material{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*materialRepository.CreateMaterial").Str("owner_id", material.OwnerID).Msg("error inserting material")
		return models.Material{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return material, nil
}

func (r *materialRepository) UpdateMaterial(ctx context.Context, material models.Material) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMaterialQuery(r.db.builder, material)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.UpdateMaterial").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.UpdateMaterial").Str("material_id", material.ID).Msg("error updating material")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *materialRepository) DeleteMaterial(ctx context.Context, materialID, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedQuery(r.db.builder, materialsTable, materialID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.DeleteMaterial").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.DeleteMaterial").Str("material_id", materialID).Msg("error deleting material")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *materialRepository) DeleteAllMaterials(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllOwnedQuery(r.db.builder, materialsTable, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.DeleteAllMaterials").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffecting(ctx, r.q, query, args); err != nil {
		log.Err(err).Str("func", "*materialRepository.DeleteAllMaterials").Str("owner_id", ownerID).Msg("error clearing materials")
		return err
	}
	return nil
}
