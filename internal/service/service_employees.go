package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hcorbage/corb3d/internal/crypto"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

// employeeService manages sellers. Creating an employee also creates its
// companion login, so the seller can sign in and save quotes.
type employeeService struct {
	employees store.EmployeeRepository
	tx        store.Transactor
	policy    *policy.Policy
	hasher    crypto.PasswordHasher
	creds     crypto.CredentialGenerator

	logger *logger.Logger
}

func NewEmployeeService(employees store.EmployeeRepository, tx store.Transactor, pol *policy.Policy, hasher crypto.PasswordHasher, creds crypto.CredentialGenerator, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employees: employees,
		tx:        tx,
		policy:    pol,
		hasher:    hasher,
		creds:     creds,
		logger:    logger,
	}
}

// ListEmployees returns the employees of an admin, or the single employee
// linked to a seller's login.
func (s *employeeService) ListEmployees(ctx context.Context, p policy.Principal) ([]models.Employee, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Employee, policy.Read)
	if err != nil {
		return nil, err
	}

	if scope.LinkedUserID != "" {
		employee, err := s.employees.GetEmployeeByLinkedUser(ctx, scope.LinkedUserID)
		if errors.Is(err, store.ErrNotFound) {
			return []models.Employee{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading linked employee: %w", err)
		}
		return []models.Employee{employee}, nil
	}

	employees, err := s.employees.ListEmployees(ctx, scope.Owner())
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee stores employee and its companion user in one transaction.
// The generated credentials are returned once and never stored in plaintext.
func (s *employeeService) CreateEmployee(ctx context.Context, p policy.Principal, employee models.Employee) (models.CreatedEmployee, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Employee, policy.Write)
	if err != nil {
		return models.CreatedEmployee{}, err
	}

	password, err := s.creds.TempPassword()
	if err != nil {
		return models.CreatedEmployee{}, fmt.Errorf("generating employee password: %w", err)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.CreatedEmployee{}, fmt.Errorf("hashing employee password: %w", err)
	}

	base := s.creds.UsernameBase(employee.Name)

	var result models.CreatedEmployee
	err = s.tx.InTx(ctx, func(repos *store.Repositories) error {
		taken, err := repos.Users.ListUsernamesWithPrefix(ctx, base)
		if err != nil {
			return err
		}
		username := freeUsername(base, taken)

		user, err := repos.Users.CreateUser(ctx, models.User{
			Username:           username,
			PasswordHash:       hash,
			IsAdmin:            false,
			MustChangePassword: true,
		})
		if err != nil {
			return err
		}

		if _, err = seedMaterials(ctx, repos.Materials, user.ID); err != nil {
			return err
		}

		employee.ID = ""
		employee.OwnerID = scope.Owner()
		employee.LinkedUserID = &user.ID

		created, err := repos.Employees.CreateEmployee(ctx, employee)
		if err != nil {
			return err
		}

		result = models.CreatedEmployee{
			Employee:          created,
			GeneratedUsername: username,
			GeneratedPassword: password,
		}
		return nil
	})
	if err != nil {
		return models.CreatedEmployee{}, fmt.Errorf("creating employee: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("employee_id", result.ID).
		Str("username", result.GeneratedUsername).
		Msg("employee created")
	return result, nil
}

// freeUsername returns base when it is not taken, otherwise base followed by
// the smallest positive number that is free.
func freeUsername(base string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, name := range taken {
		used[strings.ToLower(name)] = struct{}{}
	}

	if _, ok := used[base]; !ok {
		return base
	}
	for n := 1; ; n++ {
		candidate := base + strconv.Itoa(n)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}

func (s *employeeService) UpdateEmployee(ctx context.Context, p policy.Principal, employeeID string, update models.EmployeeUpdate) (models.Employee, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Employee, policy.Write)
	if err != nil {
		return models.Employee{}, err
	}

	employee, err := s.employees.GetEmployee(ctx, employeeID, scope.Owner())
	if err != nil {
		return models.Employee{}, fmt.Errorf("loading employee: %w", err)
	}

	update.Apply(&employee)
	if err = s.employees.UpdateEmployee(ctx, employee); err != nil {
		return models.Employee{}, fmt.Errorf("updating employee: %w", err)
	}
	return employee, nil
}

// DeleteEmployee removes the employee row. The companion user and the quotes
// it saved are kept; commission reports fall back to the frozen seller name.
func (s *employeeService) DeleteEmployee(ctx context.Context, p policy.Principal, employeeID string) error {
	scope, err := scopeOf(ctx, s.policy, p, policy.Employee, policy.Write)
	if err != nil {
		return err
	}

	if err = s.employees.DeleteEmployee(ctx, employeeID, scope.Owner()); err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return nil
}
