package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

type clientRepository struct {
	logger *logger.Logger
	db     *DB
	q      querier
}

func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{db: db, q: db.DB, logger: logger}
}

func (r *clientRepository) ListClients(ctx context.Context, ownerID string) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnedQuery(r.db.builder, clientsTable, clientColumns, []string{ownerID}, "name", "id")
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.ListClients").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	clients, err := queryList(ctx, r.q, query, args, scanClient)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.ListClients").Str("owner_id", ownerID).Msg("error listing clients")
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) GetClient(ctx context.Context, clientID, ownerID string) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOneOwnedQuery(r.db.builder, clientsTable, clientColumns, clientID, []string{ownerID})
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.GetClient").Msg("failed to build query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	client, err := scanClient(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.GetClient").Msg("error scanning client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return client, nil
}

// CreateClient inserts client under a fresh id unless one is set.
// A tax id already used by the owner yields [ErrDuplicateTaxID].
func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	if client.ID == "" {
		client.ID = r.db.ids.Generate()
	}

	query, args, err := buildInsertClientQuery(r.db.builder, client)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Msg("failed to build query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Client{}, ErrDuplicateTaxID
		}
		log.Err(err).Str("func", "*clientRepository.CreateClient").Str("owner_id", client.OwnerID).Msg("error inserting client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return client, nil
}

// UpdateClient rewrites the row matching (client.ID, client.OwnerID).
func (r *clientRepository) UpdateClient(ctx context.Context, client models.Client) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateClientQuery(r.db.builder, client)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.UpdateClient").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrDuplicateTaxID
		}
		log.Err(err).Str("func", "*clientRepository.UpdateClient").Str("client_id", client.ID).Msg("error updating client")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, clientID, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedQuery(r.db.builder, clientsTable, clientID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffecting(ctx, r.q, query, args)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Str("client_id", clientID).Msg("error deleting client")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
