package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

// userRepository implements [UserRepository] against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	q      querier
}

// NewUserRepository constructs a [UserRepository] running on the pool of db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		q:      db.DB,
		logger: logger,
	}
}

// CreateUser persists a new user. An empty ID and a zero CreatedAt are filled
// in before the insert.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = r.db.ids.Generate()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) getUser(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns every user ordered by creation time.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder, false, 0)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := queryList(ctx, r.q, query, args, scanUser)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}
	return users, nil
}

// GetFirstAdmin returns the admin created first, or [ErrNoUserWasFound].
func (r *userRepository) GetFirstAdmin(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder, true, 1)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetFirstAdmin").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetFirstAdmin").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return user, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select("COUNT(*)").From(usersTable).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count, nil
}

// ListUsernamesWithPrefix returns every username starting with prefix. The
// prefix must not contain LIKE wildcards.
func (r *userRepository) ListUsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsernamesWithPrefixQuery(r.db.builder, prefix)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsernamesWithPrefix").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	names, err := queryList(ctx, r.q, query, args, func(row rowScanner) (string, error) {
		var name string
		err := row.Scan(&name)
		return name, err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsernamesWithPrefix").Str("prefix", prefix).Msg("error listing usernames")
		return nil, err
	}
	return names, nil
}

func (r *userRepository) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Update(usersTable).
		Set("is_admin", isAdmin).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAdmin").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAdmin").Str("user_id", userID).Msg("error updating user")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, update PasswordUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Str("user_id", update.UserID).Msg("error updating password")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

// DeleteUser removes the user and every row it owns. It must run inside
// [Storages.InTx] for the cascade to be atomic.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	stmts := buildDeleteUserQueries(r.db.builder, userID)

	var affected int64
	for i, stmt := range stmts {
		query, args, err := stmt.ToSql()
		if err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Int("statement", i).Msg("failed to build query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		affected, err = execAffecting(ctx, r.q, query, args)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Int("statement", i).Str("user_id", userID).Msg("error deleting user data")
			return err
		}
	}

	// the last statement deletes the user row itself
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}
