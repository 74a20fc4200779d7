package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

// employeeRepository stores sellers. linked_user_id is the secondary index
// used for the user → employee lookup and for quote fan-out.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
	q      querier
}

func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{db: db, q: db.DB, logger: logger}
}

func (r *employeeRepository) ListEmployees(ctx context.Context, ownerID string) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnedQuery(r.db.builder, employeesTable, employeeColumns, []string{ownerID}, "name", "id")
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.ListEmployees").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employees, err := queryList(ctx, r.q, query, args, scanEmployee)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.ListEmployees").Str("owner_id", ownerID).Msg("error listing employees")
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) GetEmployee(ctx context.Context, employeeID, ownerID string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOneOwnedQuery(r.db.builder, employeesTable, employeeColumns, employeeID, []string{ownerID})
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.GetEmployee").Msg("failed to build query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employee, err := scanEmployee(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.GetEmployee").Msg("error scanning employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return employee, nil
}

// GetEmployeeByLinkedUser returns the employee whose companion login is
// userID, or [ErrNotFound].
func (r *employeeRepository) GetEmployeeByLinkedUser(ctx context.Context, userID string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeeByLinkedUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.GetEmployeeByLinkedUser").Msg("failed to build query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employee, err := scanEmployee(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.GetEmployeeByLinkedUser").Msg("error scanning employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return employee, nil
}

// LinkedUserIDs returns the companion user ids of the employees of ownerID.
func (r *employeeRepository) LinkedUserIDs(ctx context.Context, ownerID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLinkedUserIDsQuery(r.db.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.LinkedUserIDs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ids, err := queryList(ctx, r.q, query, args, func(row rowScanner) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.LinkedUserIDs").Str("owner_id", ownerID).Msg("error listing linked users")
		return nil, err
	}
	return ids, nil
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if employee.ID == "" {
		employee.ID = r.db.ids.Generate()
	}

	query, args, err := buildInsertEmployeeQuery(r.db.builder, employee)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Msg("failed to build query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Employee{}, ErrEmployeeAlreadyLinked
		}
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Str("owner_id", employee.OwnerID).Msg("error inserting employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return employee, nil
}

// UpdateEmployee rewrites the editable fields; the user link is left untouched.
func (r *employeeRepository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmployeeQuery(r.db.builder, employee)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.UpdateEmployee").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.UpdateEmployee").Str("employee_id", employee.ID).Msg("error updating employee")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEmployee removes the employee row only. Quotes keep their frozen
// employee name and the companion user keeps existing.
func (r *employeeRepository) DeleteEmployee(ctx context.Context, employeeID, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedQuery(r.db.builder, employeesTable, employeeID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.DeleteEmployee").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.DeleteEmployee").Str("employee_id", employeeID).Msg("error deleting employee")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
