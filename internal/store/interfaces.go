package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/hcorbage/corb3d/models"
)

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// PasswordUpdate rewrites the credentials of a user. A nil Hint leaves the
// stored hint untouched.
type PasswordUpdate struct {
	UserID             string
	PasswordHash       string
	MustChangePassword bool
	Hint               *string
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetFirstAdmin(ctx context.Context) (models.User, error)
	CountUsers(ctx context.Context) (int, error)
	ListUsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error)
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error
	UpdatePassword(ctx context.Context, update PasswordUpdate) error
	DeleteUser(ctx context.Context, userID string) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, userID string, now time.Time) (int64, error)
}

type ClientRepository interface {
	ListClients(ctx context.Context, ownerID string) ([]models.Client, error)
	GetClient(ctx context.Context, clientID, ownerID string) (models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) error
	DeleteClient(ctx context.Context, clientID, ownerID string) error
}

type MaterialRepository interface {
	ListMaterials(ctx context.Context, ownerID string) ([]models.Material, error)
	GetMaterial(ctx context.Context, materialID, ownerID string) (models.Material, error)
	CountMaterials(ctx context.Context, ownerID string) (int, error)
	CreateMaterial(ctx context.Context, material models.Material) (models.Material, error)
	UpdateMaterial(ctx context.Context, material models.Material) error
	DeleteMaterial(ctx context.Context, materialID, ownerID string) error
	DeleteAllMaterials(ctx context.Context, ownerID string) error
}

type StockItemRepository interface {
	ListStockItems(ctx context.Context, ownerID string) ([]models.StockItem, error)
	GetStockItem(ctx context.Context, stockItemID, ownerID string) (models.StockItem, error)
	CreateStockItem(ctx context.Context, item models.StockItem) (models.StockItem, error)
	UpdateStockItem(ctx context.Context, item models.StockItem) error
	DecrementRemaining(ctx context.Context, stockItemID, ownerID string, grams float64) (models.StockItem, error)
	DeleteStockItem(ctx context.Context, stockItemID, ownerID string) error
	DeleteAllStockItems(ctx context.Context, ownerID string) error
}

type EmployeeRepository interface {
	ListEmployees(ctx context.Context, ownerID string) ([]models.Employee, error)
	GetEmployee(ctx context.Context, employeeID, ownerID string) (models.Employee, error)
	GetEmployeeByLinkedUser(ctx context.Context, userID string) (models.Employee, error)
	LinkedUserIDs(ctx context.Context, ownerID string) ([]string, error)
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	DeleteEmployee(ctx context.Context, employeeID, ownerID string) error
}

type CalculationRepository interface {
	ListCalculations(ctx context.Context, ownerIDs []string) ([]models.Calculation, error)
	GetCalculation(ctx context.Context, calculationID string, ownerIDs []string) (models.Calculation, error)
	CreateCalculation(ctx context.Context, calculation models.Calculation) (models.Calculation, error)
	UpdateCalculation(ctx context.Context, calculation models.Calculation) error
	SetStatus(ctx context.Context, calculationID, ownerID string, status models.QuoteStatus) error
	DeleteCalculation(ctx context.Context, calculationID, ownerID string) error
	DeleteAllCalculations(ctx context.Context, ownerID string) error
}

type SettingsRepository interface {
	GetSettings(ctx context.Context, ownerID string) (models.Settings, error)
	CreateSettings(ctx context.Context, settings models.Settings) error
	UpdateSettings(ctx context.Context, settings models.Settings) error
}

// Transactor runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	InTx(ctx context.Context, fn func(repos *Repositories) error) error
}
