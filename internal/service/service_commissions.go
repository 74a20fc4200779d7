package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hcorbage/corb3d/internal/costing"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/models"
)

const (
	minReportYear = 1970
	maxReportYear = 9999
)

// commissionService aggregates confirmed quotes per seller and month.
type commissionService struct {
	repos  *store.Repositories
	policy *policy.Policy

	// location is the civil calendar month boundaries are computed in.
	location *time.Location

	logger *logger.Logger
}

func NewCommissionService(repos *store.Repositories, pol *policy.Policy, logger *logger.Logger) CommissionService {
	return &commissionService{
		repos:    repos,
		policy:   pol,
		location: time.Local,
		logger:   logger,
	}
}

// MonthlyReport builds the commission report of year/month over the quotes
// visible to p. Only confirmed quotes count. Rates are read from the live
// employee rows; a deleted employee earns no commission.
func (s *commissionService) MonthlyReport(ctx context.Context, p policy.Principal, year, month int) (models.CommissionReport, error) {
	if month < 1 || month > 12 || year < minReportYear || year > maxReportYear {
		return models.CommissionReport{}, ErrInvalidPeriod
	}

	scope, err := scopeOf(ctx, s.policy, p, policy.Calculation, policy.Read)
	if err != nil {
		return models.CommissionReport{}, err
	}

	rates, onlyEmployee, err := s.rates(ctx, p)
	if err != nil {
		return models.CommissionReport{}, err
	}

	report := models.CommissionReport{Year: year, Month: month, Groups: []models.CommissionGroup{}}
	if !p.IsAdmin && onlyEmployee == "" {
		return report, nil
	}

	quotes, err := s.repos.Calculations.ListCalculations(ctx, scope.Owners)
	if err != nil {
		return models.CommissionReport{}, fmt.Errorf("listing quotes: %w", err)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	end := start.AddDate(0, 1, 0)

	const noSeller = ""
	groups := make(map[string]*models.CommissionGroup)
	var order []string

	for _, q := range quotes {
		if q.Status != models.StatusConfirmed {
			continue
		}
		if q.Date.Before(start) || !q.Date.Before(end) {
			continue
		}

		key := noSeller
		if q.EmployeeID != nil && *q.EmployeeID != "" {
			key = *q.EmployeeID
		}
		if onlyEmployee != "" && key != onlyEmployee {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &models.CommissionGroup{SellerName: models.NoSellerLabel}
			if key != noSeller {
				id := key
				g.EmployeeID = &id
				g.SellerName = sellerName(q, rates[key])
				g.Rate = rates[key].CommissionRatePercent
			}
			groups[key] = g
			order = append(order, key)
		}

		g.QuoteCount++
		g.GrossRevenue += q.SuggestedPrice
	}

	for _, key := range order {
		g := groups[key]
		g.Commission = costing.Round2(g.GrossRevenue * g.Rate / 100)
		g.GrossRevenue = costing.Round2(g.GrossRevenue)

		report.Totals.QuoteCount += g.QuoteCount
		report.Totals.GrossRevenue += g.GrossRevenue
		report.Totals.Commission += g.Commission
		report.Groups = append(report.Groups, *g)
	}
	report.Totals.GrossRevenue = costing.Round2(report.Totals.GrossRevenue)
	report.Totals.Commission = costing.Round2(report.Totals.Commission)

	sort.SliceStable(report.Groups, func(i, j int) bool {
		a, b := report.Groups[i], report.Groups[j]
		if a.GrossRevenue != b.GrossRevenue {
			return a.GrossRevenue > b.GrossRevenue
		}
		return a.SellerName < b.SellerName
	})

	return report, nil
}

// rates returns the live employee rows keyed by id. For a seller it returns
// only the linked employee and its id; a seller without one gets an empty id.
func (s *commissionService) rates(ctx context.Context, p policy.Principal) (map[string]models.Employee, string, error) {
	if !p.IsAdmin {
		employee, err := s.repos.Employees.GetEmployeeByLinkedUser(ctx, p.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", nil
		}
		if err != nil {
			return nil, "", fmt.Errorf("loading linked employee: %w", err)
		}
		return map[string]models.Employee{employee.ID: employee}, employee.ID, nil
	}

	employees, err := s.repos.Employees.ListEmployees(ctx, p.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("listing employees: %w", err)
	}

	byID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return byID, "", nil
}

// sellerName prefers the name frozen on the quote, then the live employee name.
func sellerName(q models.Calculation, live models.Employee) string {
	if q.EmployeeName != nil && *q.EmployeeName != "" {
		return *q.EmployeeName
	}
	if live.Name != "" {
		return live.Name
	}
	return models.NoSellerLabel
}
