package service

import (
	"context"
	"fmt"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

// backupService moves the tenant data of one owner in and out as a single
// document.
type backupService struct {
	repos  *store.Repositories
	tx     store.Transactor
	policy *policy.Policy

	now    clock
	logger *logger.Logger
}

func NewBackupService(repos *store.Repositories, tx store.Transactor, pol *policy.Policy, logger *logger.Logger) BackupService {
	return &backupService{
		repos:  repos,
		tx:     tx,
		policy: pol,
		now:    utcNow,
		logger: logger,
	}
}

// Export returns every row owned by the caller.
func (s *backupService) Export(ctx context.Context, p policy.Principal) (models.Backup, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Client, policy.Read)
	if err != nil {
		return models.Backup{}, err
	}
	owner := scope.Owner()

	var backup models.Backup

	if backup.Clients, err = s.repos.Clients.ListClients(ctx, owner); err != nil {
		return models.Backup{}, fmt.Errorf("exporting clients: %w", err)
	}
	if backup.Inventory, err = s.repos.Materials.ListMaterials(ctx, owner); err != nil {
		return models.Backup{}, fmt.Errorf("exporting materials: %w", err)
	}
	if backup.StockItems, err = s.repos.StockItems.ListStockItems(ctx, owner); err != nil {
		return models.Backup{}, fmt.Errorf("exporting stock items: %w", err)
	}
	if backup.History, err = s.repos.Calculations.ListCalculations(ctx, []string{owner}); err != nil {
		return models.Backup{}, fmt.Errorf("exporting quotes: %w", err)
	}

	settings, err := settingsOf(ctx, s.repos.Settings, owner)
	if err != nil {
		return models.Backup{}, err
	}
	update := settings.AsUpdate()
	backup.Settings = &update

	return backup, nil
}

// Import loads backup into the caller's account in one transaction.
//
// Clients are added to the existing ones. Materials, stock items and history
// replace the existing rows when present in the document; a nil section is
// left alone. Stock rows are re-pointed at the new ids of imported materials.
// Settings are merged field by field.
func (s *backupService) Import(ctx context.Context, p policy.Principal, backup models.Backup) (models.ImportSummary, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Client, policy.Write)
	if err != nil {
		return models.ImportSummary{}, err
	}
	owner := scope.Owner()

	var summary models.ImportSummary
	err = s.tx.InTx(ctx, func(repos *store.Repositories) error {
		summary = models.ImportSummary{}

		for _, c := range backup.Clients {
			c.ID, c.OwnerID = "", owner
			if _, err := repos.Clients.CreateClient(ctx, c); err != nil {
				return fmt.Errorf("importing client %q: %w", c.Name, err)
			}
			summary.Clients++
		}

		materialIDs := make(map[string]string, len(backup.Inventory))
		if backup.Inventory != nil {
			if err := repos.Materials.DeleteAllMaterials(ctx, owner); err != nil {
				return fmt.Errorf("clearing materials: %w", err)
			}
			for _, m := range backup.Inventory {
				oldID := m.ID
				m.ID, m.OwnerID = "", owner
				created, err := repos.Materials.CreateMaterial(ctx, m)
				if err != nil {
					return fmt.Errorf("importing material %q: %w", m.Name, err)
				}
				if oldID != "" {
					materialIDs[oldID] = created.ID
				}
				summary.Materials++
			}
		}

		if backup.StockItems != nil {
			if err := repos.StockItems.DeleteAllStockItems(ctx, owner); err != nil {
				return fmt.Errorf("clearing stock items: %w", err)
			}
			for _, item := range backup.StockItems {
				item.ID, item.OwnerID = "", owner
				if newID, ok := materialIDs[item.MaterialID]; ok {
					item.MaterialID = newID
				}
				if _, err := repos.StockItems.CreateStockItem(ctx, item); err != nil {
					return fmt.Errorf("importing stock item: %w", err)
				}
				summary.StockItems++
			}
		}

		if backup.History != nil {
			if err := repos.Calculations.DeleteAllCalculations(ctx, owner); err != nil {
				return fmt.Errorf("clearing quotes: %w", err)
			}
			for _, q := range backup.History {
				q.ID, q.OwnerID = "", owner
				if !q.Status.Valid() {
					q.Status = models.StatusPending
				}
				if q.Date.IsZero() {
					q.Date = s.now()
				}
				if _, err := repos.Calculations.CreateCalculation(ctx, q); err != nil {
					return fmt.Errorf("importing quote %q: %w", q.ProjectName, err)
				}
				summary.History++
			}
		}

		if backup.Settings != nil {
			settings, err := settingsOf(ctx, repos.Settings, owner)
			if err != nil {
				return err
			}
			backup.Settings.Apply(&settings)
			if err = repos.Settings.UpdateSettings(ctx, settings); err != nil {
				return fmt.Errorf("importing settings: %w", err)
			}
			summary.Settings = true
		}

		return nil
	})
	if err != nil {
		return models.ImportSummary{}, err
	}

	summary.OK = true
	logger.FromContext(ctx).Info().
		Str("owner_id", owner).
		Int("clients", summary.Clients).
		Int("materials", summary.Materials).
		Int("stock_items", summary.StockItems).
		Int("history", summary.History).
		Msg("backup imported")
	return summary, nil
}
