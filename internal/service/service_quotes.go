// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hcorbage/corb3d/internal/costing"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

const (
	// LowStockThresholdGrams is the remaining weight at or below which a roll
	// is reported as low after a quote consumed it.
	LowStockThresholdGrams = 200

	// UnidentifiedClientName replaces a blank client name on save.
	UnidentifiedClientName = "Cliente Não Identificado"
)

// quoteService prices quotes with the costing engine, stores them and
// consumes stock for new quotes.
type quoteService struct {
	repos  *store.Repositories
	policy *policy.Policy

	now    clock
	logger *logger.Logger
}

func NewQuoteService(repos *store.Repositories, pol *policy.Policy, logger *logger.Logger) QuoteService {
	return &quoteService{
		repos:  repos,
		policy: pol,
		now:    utcNow,
		logger: logger,
	}
}

// ListQuotes returns the quotes visible to p: its own, plus those of the
// sellers linked to its employees when p is an admin.
func (s *quoteService) ListQuotes(ctx context.Context, p policy.Principal) ([]models.Calculation, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Calculation, policy.Read)
	if err != nil {
		return nil, err
	}

	quotes, err := s.repos.Calculations.ListCalculations(ctx, scope.Owners)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	return quotes, nil
}

// PreviewQuote prices req for the caller without storing anything.
func (s *quoteService) PreviewQuote(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.QuoteBreakdown, error) {
	if _, err := scopeOf(ctx, s.policy, p, policy.Calculation, policy.Read); err != nil {
		return models.QuoteBreakdown{}, err
	}

	settings, err := settingsOf(ctx, s.repos.Settings, p.UserID)
	if err != nil {
		return models.QuoteBreakdown{}, err
	}

	margin := settings.ProfitMarginPercent
	if req.ProfitMarginPercent != nil {
		margin = *req.ProfitMarginPercent
	}

	return s.price(ctx, p.UserID, settings, margin, req.Lines)
}

// CreateQuote prices and stores a new quote owned by the caller, then
// decrements the stock rolls it uses. Stock failures are logged and never fail
// the save.
func (s *quoteService) CreateQuote(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.CreatedQuote, error) {
	log := logger.FromContext(ctx)

	scope, err := scopeOf(ctx, s.policy, p, policy.Calculation, policy.Write)
	if err != nil {
		return models.CreatedQuote{}, err
	}
	owner := scope.Owner()

	settings, err := settingsOf(ctx, s.repos.Settings, owner)
	if err != nil {
		return models.CreatedQuote{}, err
	}

	employeeID, employeeName, err := s.resolveEmployee(ctx, p, req.EmployeeID)
	if err != nil {
		return models.CreatedQuote{}, err
	}

	margin := settings.ProfitMarginPercent
	if req.ProfitMarginPercent != nil {
		margin = *req.ProfitMarginPercent
	}

	breakdown, err := s.price(ctx, owner, settings, margin, req.Lines)
	if err != nil {
		return models.CreatedQuote{}, err
	}

	details, err := marshalDetails(req, margin, breakdown)
	if err != nil {
		return models.CreatedQuote{}, err
	}

	status := models.StatusPending
	if req.Status.Valid() {
		status = req.Status
	}

	created, err := s.repos.Calculations.CreateCalculation(ctx, models.Calculation{
		OwnerID:        owner,
		Date:           s.now(),
		ClientName:     clientNameOrDefault(req.ClientName),
		ProjectName:    strings.TrimSpace(req.ProjectName),
		TotalCost:      breakdown.TotalCost,
		SuggestedPrice: breakdown.SuggestedPrice,
		Status:         status,
		EmployeeID:     employeeID,
		EmployeeName:   employeeName,
		Details:        details,
	})
	if err != nil {
		return models.CreatedQuote{}, fmt.Errorf("creating quote: %w", err)
	}

	log.Info().
		Str("quote_id", created.ID).
		Str("owner_id", owner).
		Float64("suggested_price", created.SuggestedPrice).
		Msg("quote created")

	return models.CreatedQuote{
		Calculation: created,
		LowStock:    s.consumeStock(ctx, owner, req.Lines),
	}, nil
}

// UpdateQuote rewrites a stored quote. The creation date is kept, the saved
// margin applies unless req overrides it, and stock is not consumed again.
func (s *quoteService) UpdateQuote(ctx context.Context, p policy.Principal, quoteID string, req models.QuoteRequest) (models.Calculation, error) {
	scope, err := scopeOf(ctx, s.policy, p, policy.Calculation, policy.Write)
	if err != nil {
		return models.Calculation{}, err
	}

	found, err := s.repos.Calculations.GetCalculation(ctx, quoteID, scope.Owners)
	if err != nil {
		return models.Calculation{}, fmt.Errorf("loading quote: %w", err)
	}

	settings, err := settingsOf(ctx, s.repos.Settings, found.OwnerID)
	if err != nil {
		return models.Calculation{}, err
	}

	saved := savedDetails(found.Details)

	margin := settings.ProfitMarginPercent
	switch {
	case req.ProfitMarginPercent != nil:
		margin = *req.ProfitMarginPercent
	case saved != nil:
		margin = saved.ProfitMarginPercent
	}

	employeeID, employeeName := found.EmployeeID, found.EmployeeName
	if !sameEmployee(req.EmployeeID, found.EmployeeID) {
		if employeeID, employeeName, err = s.resolveEmployee(ctx, p, req.EmployeeID); err != nil {
			return models.Calculation{}, err
		}
	}

	breakdown, err := s.price(ctx, found.OwnerID, settings, margin, req.Lines)
	if err != nil {
		return models.Calculation{}, err
	}

	if len(req.Editor) == 0 && saved != nil {
		req.Editor = saved.Editor
	}
	details, err := marshalDetails(req, margin, breakdown)
	if err != nil {
		return models.Calculation{}, err
	}

	found.ClientName = clientNameOrDefault(req.ClientName)
	found.ProjectName = strings.TrimSpace(req.ProjectName)
	found.TotalCost = breakdown.TotalCost
	found.SuggestedPrice = breakdown.SuggestedPrice
	found.EmployeeID = employeeID
	found.EmployeeName = employeeName
	found.Details = details
	if req.Status.Valid() {
		found.Status = req.Status
	}

	if err = s.repos.Calculations.UpdateCalculation(ctx, found); err != nil {
		return models.Calculation{}, fmt.Errorf("updating quote: %w", err)
	}
	return found, nil
}

// SetStatus moves a quote to status. Any transition between known statuses
// is allowed.
func (s *quoteService) SetStatus(ctx context.Context, p policy.Principal, quoteID string, status models.QuoteStatus) (models.Calculation, error) {
	if !status.Valid() {
		return models.Calculation{}, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, status)
	}

	scope, err := scopeOf(ctx, s.policy, p, policy.Calculation, policy.Write)
	if err != nil {
		return models.Calculation{}, err
	}

	found, err := s.repos.Calculations.GetCalculation(ctx, quoteID, scope.Owners)
	if err != nil {
		return models.Calculation{}, fmt.Errorf("loading quote: %w", err)
	}

	if err = s.repos.Calculations.SetStatus(ctx, found.ID, found.OwnerID, status); err != nil {
		return models.Calculation{}, fmt.Errorf("setting quote status: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("quote_id", found.ID).
		Str("from", string(found.Status)).
		Str("to", string(status)).
		Msg("quote status changed")

	found.Status = status
	return found, nil
}

// DeleteQuote removes a quote. Consumed stock is not restored.
func (s *quoteService) DeleteQuote(ctx context.Context, p policy.Principal, quoteID string) error {
	scope, err := scopeOf(ctx, s.policy, p, policy.Calculation, policy.Write)
	if err != nil {
		return err
	}

	found, err := s.repos.Calculations.GetCalculation(ctx, quoteID, scope.Owners)
	if err != nil {
		return fmt.Errorf("loading quote: %w", err)
	}

	if err = s.repos.Calculations.DeleteCalculation(ctx, found.ID, found.OwnerID); err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}
	return nil
}

// price runs the costing engine over lines with the stock rows of owner.
func (s *quoteService) price(ctx context.Context, owner string, settings models.Settings, margin float64, lines []models.QuoteLine) (models.QuoteBreakdown, error) {
	stock, err := s.repos.StockItems.ListStockItems(ctx, owner)
	if err != nil {
		return models.QuoteBreakdown{}, fmt.Errorf("loading stock items: %w", err)
	}

	costPerKg := make(map[string]float64, len(stock))
	for _, item := range stock {
		costPerKg[item.ID] = item.UnitCost
	}

	result := costing.Calculate(costingSettings(settings, margin), costingLines(lines), func(id string) (float64, bool) {
		cost, ok := costPerKg[id]
		return cost, ok
	})
	return breakdownOf(margin, result), nil
}

// consumeStock decrements the rolls used by lines and reports every roll that
// ended at or below the low-stock threshold.
func (s *quoteService) consumeStock(ctx context.Context, owner string, lines []models.QuoteLine) []models.LowStockNotification {
	log := logger.FromContext(ctx)

	low := make(map[string]models.StockItem)
	var order []string

	for _, line := range lines {
		if line.StockItemID == "" || line.Grams <= 0 {
			continue
		}
		qty := line.Qty
		if qty < 1 {
			qty = 1
		}

		item, err := s.repos.StockItems.DecrementRemaining(ctx, line.StockItemID, owner, line.Grams*float64(qty))
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("stock_item_id", line.StockItemID).Msg("failed to decrement stock")
			continue
		}

		if item.RemainingGrams > LowStockThresholdGrams {
			delete(low, item.ID)
			continue
		}
		if _, seen := low[item.ID]; !seen {
			order = append(order, item.ID)
		}
		low[item.ID] = item
	}

	notifications := make([]models.LowStockNotification, 0, len(low))
	if len(low) == 0 {
		return notifications
	}

	names := s.materialNames(ctx, owner)
	for _, id := range order {
		item, ok := low[id]
		if !ok {
			continue
		}
		kind := models.LowStockLow
		if item.RemainingGrams <= 0 {
			kind = models.LowStockDepleted
		}
		notifications = append(notifications, models.LowStockNotification{
			StockItemID:    item.ID,
			MaterialName:   names[item.MaterialID],
			Brand:          item.Brand,
			Color:          item.Color,
			RemainingGrams: item.RemainingGrams,
			Kind:           kind,
		})
	}
	return notifications
}

func (s *quoteService) materialNames(ctx context.Context, owner string) map[string]string {
	materials, err := s.repos.Materials.ListMaterials(ctx, owner)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to load material names for low stock report")
		return nil
	}

	names := make(map[string]string, len(materials))
	for _, m := range materials {
		names[m.ID] = m.Name
	}
	return names
}

// resolveEmployee returns the id and frozen name of the seller named by
// employeeID. Admins may name their own employees; sellers only themselves.
func (s *quoteService) resolveEmployee(ctx context.Context, p policy.Principal, employeeID *string) (*string, *string, error) {
	if employeeID == nil || strings.TrimSpace(*employeeID) == "" {
		return nil, nil, nil
	}
	id := strings.TrimSpace(*employeeID)

	var (
		employee models.Employee
		err      error
	)
	if p.IsAdmin {
		employee, err = s.repos.Employees.GetEmployee(ctx, id, p.UserID)
	} else {
		employee, err = s.repos.Employees.GetEmployeeByLinkedUser(ctx, p.UserID)
		if err == nil && employee.ID != id {
			err = store.ErrNotFound
		}
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, ErrUnknownEmployee
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading employee: %w", err)
	}

	name := employee.Name
	return &employee.ID, &name, nil
}

func sameEmployee(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return strings.TrimSpace(*a) == *b
}

func clientNameOrDefault(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		return UnidentifiedClientName
	}
	return name
}

// savedDetails decodes the details of a stored quote. Imported history may
// carry any document, so undecodable details are treated as absent.
func savedDetails(raw json.RawMessage) *models.QuoteDetails {
	if len(raw) == 0 {
		return nil
	}
	var details models.QuoteDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil
	}
	return &details
}

func marshalDetails(req models.QuoteRequest, margin float64, breakdown models.QuoteBreakdown) (json.RawMessage, error) {
	lines := req.Lines
	if lines == nil {
		lines = []models.QuoteLine{}
	}

	raw, err := json.Marshal(models.QuoteDetails{
		Lines:               lines,
		ProfitMarginPercent: margin,
		Breakdown:           &breakdown,
		Editor:              req.Editor,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding quote details: %w", err)
	}
	return raw, nil
}

func costingSettings(s models.Settings, margin float64) costing.Settings {
	return costing.Settings{
		ProfitMarginPercent:  margin,
		LaborCostPerHour:     s.LaborCostPerHour,
		EnergyCostPerKWh:     s.EnergyCostPerKWh,
		PrinterPurchasePrice: s.PrinterPurchasePrice,
		PrinterLifespanHours: s.PrinterLifespanHours,
		PrinterPowerWatts:    s.PrinterPowerWatts,
	}
}

func costingLines(lines []models.QuoteLine) []costing.Line {
	out := make([]costing.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, costing.Line{
			Description: l.Description,
			StockItemID: l.StockItemID,
			Grams:       l.Grams,
			Hours:       l.Hours,
			Minutes:     l.Minutes,
			Qty:         l.Qty,
		})
	}
	return out
}

func breakdownOf(margin float64, r costing.Result) models.QuoteBreakdown {
	lines := make([]models.LineBreakdown, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, models.LineBreakdown{
			Description:      l.Description,
			Qty:              l.Qty,
			HoursTotal:       l.HoursTotal,
			MaterialUnitCost: l.MaterialUnitCost,
			UnitCost:         l.UnitCost,
			UnitPrice:        l.UnitPrice,
			LineTotal:        l.LineTotal,
		})
	}

	return models.QuoteBreakdown{
		ProfitMarginPercent: margin,
		EnergyPerHour:       r.EnergyPerHour,
		DepreciationPerHour: r.DepreciationPerHour,
		MaterialCost:        r.MaterialCost,
		EnergyCost:          r.EnergyCost,
		DepreciationCost:    r.DepreciationCost,
		LaborCost:           r.LaborCost,
		TotalCost:           r.TotalCost,
		SuggestedPrice:      r.SuggestedPrice,
		Profit:              r.Profit,
		QtyTotal:            r.QtyTotal,
		UnitAveragePrice:    r.UnitAveragePrice,
		Lines:               lines,
	}
}
