package service

import (
	"github.com/hcorbage/corb3d/internal/adapter"
	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/crypto"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	ClientService     ClientService
	MaterialService   MaterialService
	StockItemService  StockItemService
	EmployeeService   EmployeeService
	QuoteService      QuoteService
	CommissionService CommissionService
	SettingsService   SettingsService
	BackupService     BackupService
	PostalCodeService PostalCodeService
	AppInfoService    AppInfoService
	Pinger            Pinger
}

func NewServices(storages *store.Storages, postal adapter.PostalCodeProvider, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)
	creds := crypto.NewCredentialGenerator()
	pol := policy.New(storages.Employees)
	repos := storages.Repositories

	return &Services{
		AuthService:       NewAuthService(repos, hasher, creds, cfg.App, logger),
		UserService:       NewUserService(repos, storages, pol, hasher, logger),
		ClientService:     NewClientService(repos.Clients, pol, logger),
		MaterialService:   NewMaterialService(repos.Materials, pol, logger),
		StockItemService:  NewStockItemService(repos.StockItems, pol, logger),
		EmployeeService:   NewEmployeeService(repos.Employees, storages, pol, hasher, creds, logger),
		QuoteService:      NewQuoteService(repos, pol, logger),
		CommissionService: NewCommissionService(repos, pol, logger),
		SettingsService:   NewSettingsService(repos, pol, logger),
		BackupService:     NewBackupService(repos, storages, pol, logger),
		PostalCodeService: NewPostalCodeService(postal, logger),
		AppInfoService:    NewAppInfoService(buildInfo, logger),
		Pinger:            storages,
	}
}
