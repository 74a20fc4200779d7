package store

import (
	"encoding/json"

	"github.com/hcorbage/corb3d/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.PasswordHint,
		&u.MustChangePassword,
		&u.NationalID,
		&u.Birthdate,
		&u.CreatedAt,
	)
	return u, err
}

func scanSession(row rowScanner) (models.Session, error) {
	var s models.Session
	err := row.Scan(&s.ID, &s.UserID, &s.Username, &s.IsAdmin, &s.IsMasterAdmin, &s.CreatedAt, &s.ExpiresAt)
	return s, err
}

func addressDest(a *models.Address) []any {
	return []any{&a.CEP, &a.Neighborhood, &a.Street, &a.Number, &a.Complement, &a.City, &a.UF}
}

func scanClient(row rowScanner) (models.Client, error) {
	var c models.Client
	dest := append([]any{&c.ID, &c.OwnerID, &c.Name, &c.TaxID, &c.Phone, &c.Email}, addressDest(&c.Address)...)
	err := row.Scan(dest...)
	return c, err
}

func scanMaterial(row rowScanner) (models.Material, error) {
	var m models.Material
	err := row.Scan(&m.ID, &m.OwnerID, &m.Name, &m.CostPerKg)
	return m, err
}

func scanStockItem(row rowScanner) (models.StockItem, error) {
	var s models.StockItem
	err := row.Scan(&s.ID, &s.OwnerID, &s.MaterialID, &s.Brand, &s.Color, &s.UnitCost, &s.RemainingGrams)
	return s, err
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var e models.Employee
	dest := append([]any{&e.ID, &e.OwnerID, &e.Name, &e.CommissionRatePercent, &e.TaxID, &e.Phone, &e.Email}, addressDest(&e.Address)...)
	dest = append(dest, &e.LinkedUserID)
	err := row.Scan(dest...)
	return e, err
}

func scanCalculation(row rowScanner) (models.Calculation, error) {
	var (
		c       models.Calculation
		status  string
		details []byte
	)
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Date,
		&c.ClientName,
		&c.ProjectName,
		&c.TotalCost,
		&c.SuggestedPrice,
		&status,
		&c.EmployeeID,
		&c.EmployeeName,
		&details,
	)
	if err != nil {
		return models.Calculation{}, err
	}

	c.Status = models.QuoteStatus(status)
	if len(details) > 0 {
		c.Details = json.RawMessage(details)
	}
	return c, nil
}

func scanSettings(row rowScanner) (models.Settings, error) {
	var s models.Settings
	err := row.Scan(
		&s.OwnerID,
		&s.LogoURL,
		&s.ProfitMarginPercent,
		&s.LaborCostPerHour,
		&s.EnergyCostPerKWh,
		&s.PrinterPurchasePrice,
		&s.PrinterLifespanHours,
		&s.PrinterPowerWatts,
		&s.SelectedPrinterID,
		&s.AdminContactPhone,
	)
	return s, err
}
