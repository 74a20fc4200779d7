package service

import (
	"context"
	"testing"

	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Clients
// ─────────────────────────────────────────────

func TestClientService_ListRequiresAdmin(t *testing.T) {
	r := newTestRepos(t)
	svc := NewClientService(r.clients, r.policy(), nopLogger())

	_, err := svc.ListClients(context.Background(), seller)
	assert.ErrorIs(t, err, ErrForbidden)

	r.clients.EXPECT().ListClients(gomock.Any(), admin.UserID).Return([]models.Client{{ID: "c1"}}, nil)
	got, err := svc.ListClients(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestClientService_CreateStripsIdentity(t *testing.T) {
	r := newTestRepos(t)
	svc := NewClientService(r.clients, r.policy(), nopLogger())

	r.clients.EXPECT().CreateClient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Client) (models.Client, error) {
			assert.Empty(t, c.ID)
			assert.Equal(t, seller.UserID, c.OwnerID)
			c.ID = "c1"
			return c, nil
		},
	)

	got, err := svc.CreateClient(context.Background(), seller, models.Client{ID: "forged", OwnerID: "victim", Name: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
}

func TestClientService_CreateDuplicateTaxID(t *testing.T) {
	r := newTestRepos(t)
	svc := NewClientService(r.clients, r.policy(), nopLogger())

	r.clients.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(models.Client{}, store.ErrDuplicateTaxID)

	_, err := svc.CreateClient(context.Background(), admin, models.Client{Name: "ACME", TaxID: "123"})
	assert.ErrorIs(t, err, store.ErrDuplicateTaxID)
}

func TestClientService_UpdateOutsideScope(t *testing.T) {
	r := newTestRepos(t)
	svc := NewClientService(r.clients, r.policy(), nopLogger())

	r.clients.EXPECT().GetClient(gomock.Any(), "c9", admin.UserID).Return(models.Client{}, store.ErrNotFound)

	_, err := svc.UpdateClient(context.Background(), admin, "c9", models.ClientUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientService_UpdateKeepsAbsentFields(t *testing.T) {
	r := newTestRepos(t)
	svc := NewClientService(r.clients, r.policy(), nopLogger())

	stored := models.Client{ID: "c1", OwnerID: admin.UserID, Name: "ACME", Email: "a@acme.com"}
	r.clients.EXPECT().GetClient(gomock.Any(), "c1", admin.UserID).Return(stored, nil)
	r.clients.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UpdateClient(context.Background(), admin, "c1", models.ClientUpdate{Phone: strPtr("1199")})
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Name)
	assert.Equal(t, "a@acme.com", got.Email)
	assert.Equal(t, "1199", got.Phone)
}

// ─────────────────────────────────────────────
// Materials and stock items
// ─────────────────────────────────────────────

func TestMaterialService_ScopedToCaller(t *testing.T) {
	r := newTestRepos(t)
	svc := NewMaterialService(r.materials, r.policy(), nopLogger())

	_, err := svc.ListMaterials(context.Background(), seller)
	assert.ErrorIs(t, err, ErrForbidden)

	r.materials.EXPECT().DeleteMaterial(gomock.Any(), "m1", admin.UserID).Return(nil)
	assert.NoError(t, svc.DeleteMaterial(context.Background(), admin, "m1"))
}

func TestStockItemService_DuplicateTriple(t *testing.T) {
	r := newTestRepos(t)
	svc := NewStockItemService(r.stock, r.policy(), nopLogger())

	r.stock.EXPECT().CreateStockItem(gomock.Any(), gomock.Any()).Return(models.StockItem{}, store.ErrDuplicateStockItem)

	_, err := svc.CreateStockItem(context.Background(), admin, models.StockItem{MaterialID: "m1", Brand: "Voolt", Color: "Red"})
	assert.ErrorIs(t, err, store.ErrDuplicateStockItem)
}

func TestStockItemService_UpdateRemainingGrams(t *testing.T) {
	r := newTestRepos(t)
	svc := NewStockItemService(r.stock, r.policy(), nopLogger())

	r.stock.EXPECT().GetStockItem(gomock.Any(), "s1", admin.UserID).
		Return(models.StockItem{ID: "s1", OwnerID: admin.UserID, MaterialID: "m1", RemainingGrams: 10}, nil)
	r.stock.EXPECT().UpdateStockItem(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UpdateStockItem(context.Background(), admin, "s1", models.StockItemUpdate{RemainingGrams: floatPtr(1000)})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.RemainingGrams)
	assert.Equal(t, "m1", got.MaterialID)
}
