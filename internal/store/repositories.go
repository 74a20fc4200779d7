package store

import "github.com/hcorbage/corb3d/internal/logger"

// Repositories groups one repository per table. The same set is handed out
// for the connection pool and for every transaction opened by [Storages.InTx].
type Repositories struct {
	Users        UserRepository
	Sessions     SessionRepository
	Clients      ClientRepository
	Materials    MaterialRepository
	StockItems   StockItemRepository
	Employees    EmployeeRepository
	Calculations CalculationRepository
	Settings     SettingsRepository
}

// NewRepositories returns repositories running on the pool of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db, log),
		Sessions:     NewSessionRepository(db, log),
		Clients:      NewClientRepository(db, log),
		Materials:    NewMaterialRepository(db, log),
		StockItems:   NewStockItemRepository(db, log),
		Employees:    NewEmployeeRepository(db, log),
		Calculations: NewCalculationRepository(db, log),
		Settings:     NewSettingsRepository(db, log),
	}
}

// boundRepositories returns repositories running on q, usually a *sql.Tx.
func boundRepositories(db *DB, q querier, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:        &userRepository{db: db, q: q, logger: log},
		Sessions:     &sessionRepository{db: db, q: q, logger: log},
		Clients:      &clientRepository{db: db, q: q, logger: log},
		Materials:    &materialRepository{db: db, q: q, logger: log},
		StockItems:   &stockItemRepository{db: db, q: q, logger: log},
		Employees:    &employeeRepository{db: db, q: q, logger: log},
		Calculations: &calculationRepository{db: db, q: q, logger: log},
		Settings:     &settingsRepository{db: db, q: q, logger: log},
	}
}
