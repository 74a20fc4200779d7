package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/hcorbage/corb3d/internal/app"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Clients
// ─────────────────────────────────────────────

func TestClients_List(t *testing.T) {
	var got policy.Principal
	svcs := &service.Services{ClientService: &fakeClientService{
		listFn: func(_ context.Context, p policy.Principal) ([]models.Client, error) {
			got = p
			return []models.Client{{ID: "c1", OwnerID: "u-seller", Name: "Maria"}}, nil
		},
	}}

	rec := serveAs(t, svcs, &sellerSession, http.MethodGet, "/api/clients", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, policy.Principal{UserID: "u-seller"}, got)
	clients := decodeBody[[]models.Client](t, rec)
	require.Len(t, clients, 1)
	assert.Equal(t, "Maria", clients[0].Name)
}

func TestClients_Create(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
		wantCall    bool
	}{
		{
			name:       "created",
			body:       `{"name":"Maria","taxId":"123.456.789-09","cep":"01310-100","city":"São Paulo"}`,
			wantStatus: http.StatusOK,
			wantCall:   true,
		},
		{
			name:        "missing name",
			body:        `{"taxId":"1"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "duplicate tax id",
			body:        `{"name":"Maria","taxId":"1"}`,
			serviceErr:  store.ErrDuplicateTaxID,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgDuplicateTaxID,
			wantCall:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svcs := &service.Services{ClientService: &fakeClientService{
				createFn: func(_ context.Context, _ policy.Principal, c models.Client) (models.Client, error) {
					called = true
					if tt.serviceErr != nil {
						return models.Client{}, tt.serviceErr
					}
					c.ID = "c-new"
					c.OwnerID = "u-admin"
					return c, nil
				},
			}}

			rec := serveAs(t, svcs, &adminSession, http.MethodPost, "/api/clients", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCall, called)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, messageOf(t, rec))
				return
			}
			created := decodeBody[models.Client](t, rec)
			assert.Equal(t, "c-new", created.ID)
			assert.Equal(t, "01310-100", created.CEP)
			assert.Equal(t, "São Paulo", created.City)
		})
	}
}

func TestClients_Update(t *testing.T) {
	var gotID string
	var gotUpdate models.ClientUpdate
	svcs := &service.Services{ClientService: &fakeClientService{
		updateFn: func(_ context.Context, _ policy.Principal, id string, u models.ClientUpdate) (models.Client, error) {
			gotID, gotUpdate = id, u
			c := models.Client{ID: id, Name: "Old"}
			u.Apply(&c)
			return c, nil
		},
	}}

	rec := serveAs(t, svcs, &adminSession, http.MethodPatch, "/api/clients/c1", `{"phone":"11 99999-0000"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", gotID)
	assert.Nil(t, gotUpdate.Name)
	require.NotNil(t, gotUpdate.Phone)
	updated := decodeBody[models.Client](t, rec)
	assert.Equal(t, "Old", updated.Name)
	assert.Equal(t, "11 99999-0000", updated.Phone)
}

func TestClients_UpdateEmptyName(t *testing.T) {
	svcs := &service.Services{ClientService: &fakeClientService{}}

	rec := serveAs(t, svcs, &adminSession, http.MethodPatch, "/api/clients/c1", `{"name":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClients_Delete(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "foreign row", serviceErr: store.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{ClientService: &fakeClientService{
				deleteFn: func(_ context.Context, _ policy.Principal, id string) error {
					assert.Equal(t, "c9", id)
					return tt.serviceErr
				},
			}}

			rec := serveAs(t, svcs, &sellerSession, http.MethodDelete, "/api/clients/c9", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.serviceErr == nil {
				assert.True(t, decodeBody[models.OKResponse](t, rec).OK)
			}
		})
	}
}

// ─────────────────────────────────────────────
// Materials
// ─────────────────────────────────────────────

func TestMaterials_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCall   bool
	}{
		{name: "valid", body: `{"name":"PLA","costPerKg":120.5}`, wantStatus: http.StatusOK, wantCall: true},
		{name: "negative cost", body: `{"name":"PLA","costPerKg":-1}`, wantStatus: http.StatusBadRequest},
		{name: "missing name", body: `{"costPerKg":10}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svcs := &service.Services{MaterialService: &fakeMaterialService{
				createFn: func(_ context.Context, _ policy.Principal, m models.Material) (models.Material, error) {
					called = true
					m.ID = "m1"
					return m, nil
				},
			}}

			rec := serveAs(t, svcs, &adminSession, http.MethodPost, "/api/materials", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCall, called)
			if tt.wantCall {
				m := decodeBody[models.Material](t, rec)
				assert.Equal(t, "m1", m.ID)
				assert.InDelta(t, 120.5, m.CostPerKg, 1e-9)
			}
		})
	}
}

func TestMaterials_ListUpdateDelete(t *testing.T) {
	svcs := &service.Services{MaterialService: &fakeMaterialService{
		listFn: func(context.Context, policy.Principal) ([]models.Material, error) {
			return []models.Material{{ID: "m1", Name: "PLA"}, {ID: "m2", Name: "PETG"}}, nil
		},
		updateFn: func(_ context.Context, _ policy.Principal, id string, u models.MaterialUpdate) (models.Material, error) {
			m := models.Material{ID: id, Name: "PLA", CostPerKg: 100}
			u.Apply(&m)
			return m, nil
		},
		deleteFn: func(_ context.Context, _ policy.Principal, id string) error {
			if id != "m1" {
				return store.ErrNotFound
			}
			return nil
		},
	}}

	rec := serveAs(t, svcs, &adminSession, http.MethodGet, "/api/materials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Material](t, rec), 2)

	rec = serveAs(t, svcs, &adminSession, http.MethodPatch, "/api/materials/m1", `{"costPerKg":150}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 150.0, decodeBody[models.Material](t, rec).CostPerKg, 1e-9)

	rec = serveAs(t, svcs, &adminSession, http.MethodDelete, "/api/materials/m1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveAs(t, svcs, &adminSession, http.MethodDelete, "/api/materials/zzz", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Stock items
// ─────────────────────────────────────────────

func TestStockItems_Create(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "created",
			body:       `{"materialId":"m1","brand":"Voolt","color":"Preto","unitCost":110,"remainingGrams":1000}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing material",
			body:        `{"brand":"Voolt","color":"Preto"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "duplicate triple",
			body:        `{"materialId":"m1","brand":"Voolt","color":"Preto"}`,
			serviceErr:  store.ErrDuplicateStockItem,
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgDuplicateStockItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{StockItemService: &fakeStockItemService{
				createFn: func(_ context.Context, _ policy.Principal, s models.StockItem) (models.StockItem, error) {
					if tt.serviceErr != nil {
						return models.StockItem{}, tt.serviceErr
					}
					s.ID = "s1"
					return s, nil
				},
			}}

			rec := serveAs(t, svcs, &adminSession, http.MethodPost, "/api/stock-items", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, messageOf(t, rec))
				return
			}
			item := decodeBody[models.StockItem](t, rec)
			assert.Equal(t, "s1", item.ID)
			assert.InDelta(t, 1000.0, item.RemainingGrams, 1e-9)
		})
	}
}

func TestStockItems_UpdateAllowsNegativeGrams(t *testing.T) {
	svcs := &service.Services{StockItemService: &fakeStockItemService{
		updateFn: func(_ context.Context, _ policy.Principal, id string, u models.StockItemUpdate) (models.StockItem, error) {
			s := models.StockItem{ID: id, MaterialID: "m1", RemainingGrams: 500}
			u.Apply(&s)
			return s, nil
		},
	}}

	rec := serveAs(t, svcs, &adminSession, http.MethodPatch, "/api/stock-items/s1", `{"remainingGrams":-20}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, -20.0, decodeBody[models.StockItem](t, rec).RemainingGrams, 1e-9)
}

func TestStockItems_ListAndDelete(t *testing.T) {
	svcs := &service.Services{StockItemService: &fakeStockItemService{
		listFn: func(context.Context, policy.Principal) ([]models.StockItem, error) {
			return []models.StockItem{}, nil
		},
		deleteFn: func(context.Context, policy.Principal, string) error { return nil },
	}}

	rec := serveAs(t, svcs, &sellerSession, http.MethodGet, "/api/stock-items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serveAs(t, svcs, &sellerSession, http.MethodDelete, "/api/stock-items/s1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// Employees
// ─────────────────────────────────────────────

func TestEmployees_Create(t *testing.T) {
	svcs := &service.Services{EmployeeService: &fakeEmployeeService{
		createFn: func(_ context.Context, p policy.Principal, e models.Employee) (models.CreatedEmployee, error) {
			assert.True(t, p.IsAdmin)
			e.ID = "e1"
			return models.CreatedEmployee{
				Employee:          e,
				GeneratedUsername: "joao.silva",
				GeneratedPassword: "Xk3mP9qa",
			}, nil
		},
	}}

	rec := serveAs(t, svcs, &adminSession, http.MethodPost, "/api/employees", `{"name":"João Silva","commissionRatePercent":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[models.CreatedEmployee](t, rec)
	assert.Equal(t, "e1", created.ID)
	assert.Equal(t, "joao.silva", created.GeneratedUsername)
	assert.Equal(t, "Xk3mP9qa", created.GeneratedPassword)
}

func TestEmployees_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"commissionRatePercent":5}`},
		{name: "rate above 100", body: `{"name":"A","commissionRatePercent":101}`},
		{name: "negative rate", body: `{"name":"A","commissionRatePercent":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{EmployeeService: &fakeEmployeeService{}}

			rec := serveAs(t, svcs, &adminSession, http.MethodPost, "/api/employees", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEmployees_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "seller cannot manage employees", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "employee already linked", err: store.ErrEmployeeAlreadyLinked, wantStatus: http.StatusConflict},
		{name: "not found", err: store.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{EmployeeService: &fakeEmployeeService{
				updateFn: func(context.Context, policy.Principal, string, models.EmployeeUpdate) (models.Employee, error) {
					return models.Employee{}, tt.err
				},
			}}

			rec := serveAs(t, svcs, &sellerSession, http.MethodPatch, "/api/employees/e1", `{"phone":"1"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestEmployees_ListAndDelete(t *testing.T) {
	linked := "u-seller"
	var deletedBy, deletedID string
	svcs := &service.Services{EmployeeService: &fakeEmployeeService{
		listFn: func(_ context.Context, p policy.Principal) ([]models.Employee, error) {
			return []models.Employee{{ID: "e1", Name: "João", LinkedUserID: &linked}}, nil
		},
		deleteFn: func(_ context.Context, p policy.Principal, id string) error {
			deletedBy, deletedID = p.UserID, id
			return nil
		},
	}}

	rec := serveAs(t, svcs, &sellerSession, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	employees := decodeBody[[]models.Employee](t, rec)
	require.Len(t, employees, 1)
	assert.Equal(t, &linked, employees[0].LinkedUserID)

	rec = serveAs(t, svcs, &adminSession, http.MethodDelete, "/api/employees/e1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminSession.UserID, deletedBy)
	assert.Equal(t, "e1", deletedID)
}
