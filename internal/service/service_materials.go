package service

import (
	"context"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

// materialService manages the per-owner material catalogue.
type materialService struct {
	materials store.MaterialRepository
	policy    *policy.Policy

	logger *logger.Logger
}

func NewMaterialService(materials store.MaterialRepository, pol *policy.Policy, logger *logger.Logger) MaterialService {
	return &materialService{materials: materials, policy: pol, logger: logger}
}

func (s *materialService) ListMaterials(ctx context.Context, p policy.Principal) ([]models.Material, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Material, policy.Read)
	if err != nil {
		return nil, err
	}

	materials, err := s.materials.ListMaterials(ctx, scope.Owner())
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	return materials, nil
}

func (s *materialService) CreateMaterial(ctx context.Context, p policy.Principal, material models.Material) (models.Material, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Material, policy.Write)
	if err != nil {
		return models.Material{}, err
	}

	material.ID = ""
	material.OwnerID = scope.Owner()

	created, err := s.materials.CreateMaterial(ctx, material)
	if err != nil {
		return models.Material{}, fmt.Errorf("creating material: %w", err)
	}
	return created, nil
}

func (s *materialService) UpdateMaterial(ctx context.Context, p policy.Principal, materialID string, update models.MaterialUpdate) (models.Material, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Material, policy.Write)
	if err != nil {
		return models.Material{}, err
	}

	material, err := s.materials.GetMaterial(ctx, materialID, scope.Owner())
	if err != nil {
		return models.Material{}, fmt.Errorf("loading material: %w", err)
	}

	update.Apply(&material)
	if err = s.materials.UpdateMaterial(ctx, material); err != nil {
		return models.Material{}, fmt.Errorf("updating material: %w", err)
	}
	return material, nil
}

// DeleteMaterial removes a material. Stock rows pointing at it are kept; quotes
// priced from them keep their stored totals.
func (s *materialService) DeleteMaterial(ctx context.Context, p policy.Principal, materialID string) error {
	scope, err := scopeOf(ctx, s.policy, p, policy.Material, policy.Write)
	if err != nil {
		return err
	}

	if err = s.materials.DeleteMaterial(ctx, materialID, scope.Owner()); err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}
	return nil
}
