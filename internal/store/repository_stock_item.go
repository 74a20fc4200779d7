package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

// stockItemRepository stores filament rolls. The (owner, material, brand,
// lower(color)) unique index backs [ErrDuplicateStockItem].
type stockItemRepository struct {
	logger *logger.Logger
	db     *DB
	q      querier
}

func NewStockItemRepository(db *DB, logger *logger.Logger) StockItemRepository {
	logger.Debug().Msg("creating stock item repository")
	return &stockItemRepository{db: db, q: db.DB, logger: logger}
}

func (r *stockItemRepository) ListStockItems(ctx context.Context, ownerID string) ([]models.StockItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnedQuery(r.db.builder, stockItemsTable, stockItemColumns, []string{ownerID}, "id")
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.ListStockItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := queryList(ctx, r.q, query, args, scanStockItem)
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.ListStockItems").Str("owner_id", ownerID).Msg("error listing stock items")
		return nil, err
	}
	return items, nil
}

func (r *stockItemRepository) GetStockItem(ctx context.Context, stockItemID, ownerID string) (models.StockItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOneOwnedQuery(r.db.builder, stockItemsTable, stockItemColumns, stockItemID, []string{ownerID})
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.GetStockItem").Msg("failed to build query")
		return models.StockItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanStockItem(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockItem{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.GetStockItem").Msg("error scanning stock item")
		return models.StockItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return item, nil
}

func (r *stockItemRepository) CreateStockItem(ctx context.Context, item models.StockItem) (models.StockItem, error) {
	log := logger.FromContext(ctx)

	if item.ID == "" {
		item.ID = r.db.ids.Generate()
	}

	query, args, err := buildInsertStockItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.CreateStockItem").Msg("failed to build query")
		return models.StockItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.StockItem{}, ErrDuplicateStockItem
		}
		log.Err(err).Str("func", "*stockItemRepository.CreateStockItem").Str("owner_id", item.OwnerID).Msg("error inserting stock item")
		return models.StockItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return item, nil
}

func (r *stockItemRepository) UpdateStockItem(ctx context.Context, item models.StockItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStockItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.UpdateStockItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrDuplicateStockItem
		}
		log.Err(err).Str("func", "*stockItemRepository.UpdateStockItem").Str("stock_item_id", item.ID).Msg("error updating stock item")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementRemaining subtracts grams from the roll in one statement and
// returns the updated row. The result may go negative.
func (r *stockItemRepository) DecrementRemaining(ctx context.Context, stockItemID, ownerID string, grams float64) (models.StockItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDecrementStockQuery(r.db.builder, stockItemID, ownerID, grams)
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.DecrementRemaining").Msg("failed to build query")
		return models.StockItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanStockItem(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockItem{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.DecrementRemaining").Str("stock_item_id", stockItemID).Msg("error decrementing stock")
		return models.StockItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return item, nil
}

func (r *stockItemRepository) DeleteStockItem(ctx context.Context, stockItemID, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedQuery(r.db.builder, stockItemsTable, stockItemID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.DeleteStockItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.DeleteStockItem").Str("stock_item_id", stockItemID).Msg("error deleting stock item")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *stockItemRepository) DeleteAllStockItems(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllOwnedQuery(r.db.builder, stockItemsTable, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*stockItemRepository.DeleteAllStockItems").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffecting(ctx, r.q, query, args); err != nil {
		log.Err(err).Str("func", "*stockItemRepository.DeleteAllStockItems").Str("owner_id", ownerID).Msg("error clearing stock items")
		return err
	}
	return nil
}
