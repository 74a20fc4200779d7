package store

import (
	"context"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
)

// maxTxAttempts bounds the retries of a transaction whose failure the
// dialect classifies as retryable (deadlock, serialization failure, busy).
const maxTxAttempts = 3

// Storages is the store entry point used by the services: the pool-bound
// repositories plus transactions, readiness and shutdown.
type Storages struct {
	*Repositories
	db     *DB
	logger *logger.Logger
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Repositories: NewRepositories(db, log),
		db:           db,
		logger:       log,
	}
}

// InTx runs fn inside one transaction and commits when fn returns nil.
// Retryable driver failures re-run fn from scratch, so fn must not have side
// effects outside the repositories it is given.
func (s *Storages) InTx(ctx context.Context, fn func(repos *Repositories) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		log.Warn().Err(err).Str("func", "*Storages.InTx").Int("attempt", attempt).Msg("retrying transaction")
	}
	return err
}

func (s *Storages) runTx(ctx context.Context, fn func(repos *Repositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*Storages.InTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(boundRepositories(s.db, tx, s.logger)); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*Storages.InTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}
	return nil
}

// Ping checks that the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
