package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a row identified by (id, owner) does not
	// exist in the caller's scope.
	ErrNotFound = errors.New("entity was not found")

	// ErrNoUserWasFound is returned when a lookup by id or username matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUsernameAlreadyExists is returned when a user insert collides with the
	// unique username index.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrDuplicateStockItem is returned when a stock item with the same
	// material, brand and color (case-insensitive) already exists for the owner.
	ErrDuplicateStockItem = errors.New("stock item already exists")

	// ErrDuplicateTaxID is returned when a client tax id is already used by
	// another client of the same owner.
	ErrDuplicateTaxID = errors.New("client tax id already exists")

	// ErrEmployeeAlreadyLinked is returned when a user is already the companion
	// login of another employee.
	ErrEmployeeAlreadyLinked = errors.New("user is already linked to an employee")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
