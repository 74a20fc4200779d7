package service

import (
	"context"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

type stockItemService struct {
	stock  store.StockItemRepository
	policy *policy.Policy

	logger *logger.Logger
}

func NewStockItemService(stock store.StockItemRepository, pol *policy.Policy, logger *logger.Logger) StockItemService {
	return &stockItemService{stock: stock, policy: pol, logger: logger}
}

func (s *stockItemService) ListStockItems(ctx context.Context, p policy.Principal) ([]models.StockItem, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.StockItem, policy.Read)
	if err != nil {
		return nil, err
	}

	items, err := s.stock.ListStockItems(ctx, scope.Owner())
	if err != nil {
		return nil, fmt.Errorf("listing stock items: %w", err)
	}
	return items, nil
}

// CreateStockItem stores a new roll under the caller. The repository rejects a
// second roll with the same material, brand and color.
func (s *stockItemService) CreateStockItem(ctx context.Context, p policy.Principal, item models.StockItem) (models.StockItem, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.StockItem, policy.Write)
	if err != nil {
		return models.StockItem{}, err
	}

	item.ID = ""
	item.OwnerID = scope.Owner()

	created, err := s.stock.CreateStockItem(ctx, item)
	if err != nil {
		return models.StockItem{}, fmt.Errorf("creating stock item: %w", err)
	}
	return created, nil
}

func (s *stockItemService) UpdateStockItem(ctx context.Context, p policy.Principal, stockItemID string, update models.StockItemUpdate) (models.StockItem, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.StockItem, policy.Write)
	if err != nil {
		return models.StockItem{}, err
	}

	item, err := s.stock.GetStockItem(ctx, stockItemID, scope.Owner())
	if err != nil {
		return models.StockItem{}, fmt.Errorf("loading stock item: %w", err)
	}

	update.Apply(&item)
	if err = s.stock.UpdateStockItem(ctx, item); err != nil {
		return models.StockItem{}, fmt.Errorf("updating stock item: %w", err)
	}
	return item, nil
}

func (s *stockItemService) DeleteStockItem(ctx context.Context, p policy.Principal, stockItemID string) error {
	scope, err := scopeOf(ctx, s.policy, p, policy.StockItem, policy.Write)
	if err != nil {
		return err
	}

	if err = s.stock.DeleteStockItem(ctx, stockItemID, scope.Owner()); err != nil {
		return fmt.Errorf("deleting stock item: %w", err)
	}
	return nil
}
