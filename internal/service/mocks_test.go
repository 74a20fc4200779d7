package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/mock"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Shared fixtures
// ─────────────────────────────────────────────

var (
	errDB     = errors.New("db is down")
	fixedTime = time.Date(2026, 4, 15, 10, 30, 0, 0, time.UTC)

	master = policy.Principal{UserID: "master-id", IsAdmin: true, IsMasterAdmin: true}
	admin  = policy.Principal{UserID: "admin-id", IsAdmin: true}
	seller = policy.Principal{UserID: "seller-id"}
)

func fixedClock() time.Time { return fixedTime }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// testRepos bundles one gomock mock per repository and the
// [store.Repositories] view the services are built with.
type testRepos struct {
	users        *mock.MockUserRepository
	sessions     *mock.MockSessionRepository
	clients      *mock.MockClientRepository
	materials    *mock.MockMaterialRepository
	stock        *mock.MockStockItemRepository
	employees    *mock.MockEmployeeRepository
	calculations *mock.MockCalculationRepository
	settings     *mock.MockSettingsRepository

	repos *store.Repositories
	tx    *mock.MockTransactor
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	ctrl := gomock.NewController(t)

	r := &testRepos{
		users:        mock.NewMockUserRepository(ctrl),
		sessions:     mock.NewMockSessionRepository(ctrl),
		clients:      mock.NewMockClientRepository(ctrl),
		materials:    mock.NewMockMaterialRepository(ctrl),
		stock:        mock.NewMockStockItemRepository(ctrl),
		employees:    mock.NewMockEmployeeRepository(ctrl),
		calculations: mock.NewMockCalculationRepository(ctrl),
		settings:     mock.NewMockSettingsRepository(ctrl),
		tx:           mock.NewMockTransactor(ctrl),
	}
	r.repos = &store.Repositories{
		Users:        r.users,
		Sessions:     r.sessions,
		Clients:      r.clients,
		Materials:    r.materials,
		StockItems:   r.stock,
		Employees:    r.employees,
		Calculations: r.calculations,
		Settings:     r.settings,
	}
	return r
}

// expectTx makes the transactor run its callback once with the same mocked
// repositories, as a committed transaction would.
func (r *testRepos) expectTx() {
	r.tx.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(repos *store.Repositories) error) error {
			return fn(r.repos)
		},
	)
}

// expectSeededMaterials declares that ownerID already has a catalogue.
func (r *testRepos) expectSeededMaterials(ownerID string) {
	r.materials.EXPECT().CountMaterials(gomock.Any(), ownerID).Return(3, nil)
}

func (r *testRepos) policy() *policy.Policy {
	return policy.New(r.employees)
}

func nopLogger() *logger.Logger { return logger.Nop() }
