package service

import (
	"context"
	"time"

	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/models"
)

// AuthService covers identity and sessions: login, logout, session lookup and
// the open password recovery helpers.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, models.Token, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, tokenString string) (models.Session, error)
	CheckAdmin(ctx context.Context, username string) (bool, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordResult, error)
	ForceChangePassword(ctx context.Context, p policy.Principal, newPassword string) error
	PasswordHint(ctx context.Context, username string) (*string, error)
	AdminContact(ctx context.Context, username string) (*string, error)
	EnsureMasterAdmin(ctx context.Context) error
}

// UserService is the master admin's user management.
type UserService interface {
	ListUsers(ctx context.Context, p policy.Principal) ([]models.User, error)
	CreateUser(ctx context.Context, p policy.Principal, req models.CreateUserRequest) (models.CreatedUser, error)
	ChangePassword(ctx context.Context, p policy.Principal, targetUserID string, req models.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, p policy.Principal, targetUserID string) error
}

type ClientService interface {
	ListClients(ctx context.Context, p policy.Principal) ([]models.Client, error)
	CreateClient(ctx context.Context, p policy.Principal, client models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, p policy.Principal, clientID string, update models.ClientUpdate) (models.Client, error)
	DeleteClient(ctx context.Context, p policy.Principal, clientID string) error
}

type MaterialService interface {
	ListMaterials(ctx context.Context, p policy.Principal) ([]models.Material, error)
	CreateMaterial(ctx context.Context, p policy.Principal, material models.Material) (models.Material, error)
	UpdateMaterial(ctx context.Context, p policy.Principal, materialID string, update models.MaterialUpdate) (models.Material, error)
	DeleteMaterial(ctx context.Context, p policy.Principal, materialID string) error
}

type StockItemService interface {
	ListStockItems(ctx context.Context, p policy.Principal) ([]models.StockItem, error)
	CreateStockItem(ctx context.Context, p policy.Principal, item models.StockItem) (models.StockItem, error)
	UpdateStockItem(ctx context.Context, p policy.Principal, stockItemID string, update models.StockItemUpdate) (models.StockItem, error)
	DeleteStockItem(ctx context.Context, p policy.Principal, stockItemID string) error
}

type EmployeeService interface {
	ListEmployees(ctx context.Context, p policy.Principal) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, p policy.Principal, employee models.Employee) (models.CreatedEmployee, error)
	UpdateEmployee(ctx context.Context, p policy.Principal, employeeID string, update models.EmployeeUpdate) (models.Employee, error)
	DeleteEmployee(ctx context.Context, p policy.Principal, employeeID string) error
}

// QuoteService is the quote lifecycle: pricing, persistence, status and the
// stock consumption of new quotes.
type QuoteService interface {
	ListQuotes(ctx context.Context, p policy.Principal) ([]models.Calculation, error)
	PreviewQuote(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.QuoteBreakdown, error)
	CreateQuote(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.CreatedQuote, error)
	UpdateQuote(ctx context.Context, p policy.Principal, quoteID string, req models.QuoteRequest) (models.Calculation, error)
	SetStatus(ctx context.Context, p policy.Principal, quoteID string, status models.QuoteStatus) (models.Calculation, error)
	DeleteQuote(ctx context.Context, p policy.Principal, quoteID string) error
}

type CommissionService interface {
	MonthlyReport(ctx context.Context, p policy.Principal, year, month int) (models.CommissionReport, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context, p policy.Principal) (models.Settings, error)
	UpdateSettings(ctx context.Context, p policy.Principal, update models.SettingsUpdate) (models.Settings, error)
}

type BackupService interface {
	Export(ctx context.Context, p policy.Principal) (models.Backup, error)
	Import(ctx context.Context, p policy.Principal, backup models.Backup) (models.ImportSummary, error)
}

type PostalCodeService interface {
	Lookup(ctx context.Context, cep string) (models.PostalAddress, error)
}

type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
	Uptime(ctx context.Context) time.Duration
}

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
