package service

import (
	"context"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

type clientService struct {
	clients store.ClientRepository
	policy  *policy.Policy

	logger *logger.Logger
}

func NewClientService(clients store.ClientRepository, pol *policy.Policy, logger *logger.Logger) ClientService {
	return &clientService{clients: clients, policy: pol, logger: logger}
}

func (s *clientService) ListClients(ctx context.Context, p policy.Principal) ([]models.Client, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Client, policy.Read)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.ListClients(ctx, scope.Owner())
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	return clients, nil
}

// CreateClient stores client under the caller. Client-supplied id and owner
// are ignored.
func (s *clientService) CreateClient(ctx context.Context, p policy.Principal, client models.Client) (models.Client, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Client, policy.Write)
	if err != nil {
		return models.Client{}, err
	}

	client.ID = ""
	client.OwnerID = scope.Owner()

	created, err := s.clients.CreateClient(ctx, client)
	if err != nil {
		return models.Client{}, fmt.Errorf("creating client: %w", err)
	}
	return created, nil
}

func (s *clientService) UpdateClient(ctx context.Context, p policy.Principal, clientID string, update models.ClientUpdate) (models.Client, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Client, policy.Write)
	if err != nil {
		return models.Client{}, err
	}

	client, err := s.clients.GetClient(ctx, clientID, scope.Owner())
	if err != nil {
		return models.Client{}, fmt.Errorf("loading client: %w", err)
	}

	update.Apply(&client)
	if err = s.clients.UpdateClient(ctx, client); err != nil {
		return models.Client{}, fmt.Errorf("updating client: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, p policy.Principal, clientID string) error {
	scope, err := scopeOf(ctx, s.policy, p, policy.Client, policy.Write)
	if err != nil {
		return err
	}

	if err = s.clients.DeleteClient(ctx, clientID, scope.Owner()); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}
