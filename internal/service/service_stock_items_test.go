package service

import (
	"context"
	"testing"

	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Stock items
// ─────────────────────────────────────────────

func TestStockItemService_ListRequiresAdmin(t *testing.T) {
	r := newTestRepos(t)
	svc := NewStockItemService(r.stock, r.policy(), nopLogger())

	_, err := svc.ListStockItems(context.Background(), seller)
	assert.ErrorIs(t, err, ErrForbidden)

	r.stock.EXPECT().ListStockItems(gomock.Any(), admin.UserID).Return([]models.StockItem{{ID: "s1"}}, nil)
	got, err := svc.ListStockItems(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStockItemService_CreateDuplicate(t *testing.T) {
	r := newTestRepos(t)
	svc := NewStockItemService(r.stock, r.policy(), nopLogger())

	item := models.StockItem{MaterialID: "m1", Brand: "Voolt", Color: "Preto", UnitCost: 110, RemainingGrams: 1000}
	r.stock.EXPECT().CreateStockItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.StockItem) (models.StockItem, error) {
			assert.Equal(t, admin.UserID, s.OwnerID)
			s.ID = "s1"
			return s, nil
		},
	)
	r.stock.EXPECT().CreateStockItem(gomock.Any(), gomock.Any()).Return(models.StockItem{}, store.ErrDuplicateStockItem)

	created, err := svc.CreateStockItem(context.Background(), admin, item)
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	_, err = svc.CreateStockItem(context.Background(), admin, item)
	assert.ErrorIs(t, err, store.ErrDuplicateStockItem)
}

func TestStockItemService_UpdateAllowsNegativeRemaining(t *testing.T) {
	r := newTestRepos(t)
	svc := NewStockItemService(r.stock, r.policy(), nopLogger())

	stored := models.StockItem{ID: "s1", OwnerID: admin.UserID, MaterialID: "m1", Brand: "Voolt", RemainingGrams: 50}
	r.stock.EXPECT().GetStockItem(gomock.Any(), "s1", admin.UserID).Return(stored, nil)
	r.stock.EXPECT().UpdateStockItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.StockItem) error {
			assert.InDelta(t, -30.0, s.RemainingGrams, 1e-9)
			assert.Equal(t, "Voolt", s.Brand)
			return nil
		},
	)

	got, err := svc.UpdateStockItem(context.Background(), admin, "s1", models.StockItemUpdate{RemainingGrams: floatPtr(-30)})
	require.NoError(t, err)
	assert.InDelta(t, -30.0, got.RemainingGrams, 1e-9)
}

func TestStockItemService_Delete(t *testing.T) {
	r := newTestRepos(t)
	svc := NewStockItemService(r.stock, r.policy(), nopLogger())

	r.stock.EXPECT().DeleteStockItem(gomock.Any(), "s1", seller.UserID).Return(store.ErrNotFound)

	err := svc.DeleteStockItem(context.Background(), seller, "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.ListStockItems(context.Background(), policy.Principal{})
	assert.ErrorIs(t, err, ErrForbidden)
}
