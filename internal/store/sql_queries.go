package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/hcorbage/corb3d/models"
)

// Builders with the placeholder format of each supported dialect.
var (
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

const (
	usersTable        = "users"
	sessionsTable     = "sessions"
	clientsTable      = "clients"
	materialsTable    = "materials"
	stockItemsTable   = "stock_items"
	employeesTable    = "employees"
	calculationsTable = "calculations"
	settingsTable     = "settings"
)

var (
	userColumns = []string{
		"id", "username", "password_hash", "is_admin", "password_hint",
		"must_change_password", "national_id", "birthdate", "created_at",
	}
	sessionColumns = []string{
		"id", "user_id", "username", "is_admin", "is_master_admin", "created_at", "expires_at",
	}
	addressColumns = []string{
		"cep", "neighborhood", "street", "number", "complement", "city", "uf",
	}
	clientColumns    = append([]string{"id", "owner_id", "name", "tax_id", "phone", "email"}, addressColumns...)
	materialColumns  = []string{"id", "owner_id", "name", "cost_per_kg"}
	stockItemColumns = []string{
		"id", "owner_id", "material_id", "brand", "color", "unit_cost", "remaining_grams",
	}
	employeeColumns = append(
		append([]string{"id", "owner_id", "name", "commission_rate_percent", "tax_id", "phone", "email"}, addressColumns...),
		"linked_user_id",
	)
	calculationColumns = []string{
		"id", "owner_id", "date", "client_name", "project_name", "total_cost",
		"suggested_price", "status", "employee_id", "employee_name", "details",
	}
	settingsColumns = []string{
		"owner_id", "logo_url", "profit_margin_percent", "labor_cost_per_hour",
		"energy_cost_per_kwh", "printer_purchase_price", "printer_lifespan_hours",
		"printer_power_watts", "selected_printer_id", "admin_contact_phone",
	}
)

func addressValues(a models.Address) []any {
	return []any{a.CEP, a.Neighborhood, a.Street, a.Number, a.Complement, a.City, a.UF}
}

func addressSetMap(a models.Address) map[string]any {
	return map[string]any{
		"cep":          a.CEP,
		"neighborhood": a.Neighborhood,
		"street":       a.Street,
		"number":       a.Number,
		"complement":   a.Complement,
		"city":         a.City,
		"uf":           a.UF,
	}
}

// nullableJSON stores an empty document as NULL.
func nullableJSON(doc []byte) any {
	if len(doc) == 0 {
		return nil
	}
	return string(doc)
}

// ─── users ───────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Username, u.PasswordHash, u.IsAdmin, u.PasswordHint,
			u.MustChangePassword, u.NationalID, u.Birthdate, u.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(userColumns...).From(usersTable).Where(where).ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, adminsOnly bool, limit uint64) (string, []any, error) {
	q := b.Select(userColumns...).From(usersTable).OrderBy("created_at", "id")
	if adminsOnly {
		q = q.Where(sq.Eq{"is_admin": true})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}

// buildListUsernamesWithPrefixQuery expects a prefix without LIKE wildcards.
func buildListUsernamesWithPrefixQuery(b sq.StatementBuilderType, prefix string) (string, []any, error) {
	return b.Select("username").From(usersTable).
		Where(sq.Like{"username": prefix + "%"}).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, update PasswordUpdate) (string, []any, error) {
	q := b.Update(usersTable).
		Set("password_hash", update.PasswordHash).
		Set("must_change_password", update.MustChangePassword).
		Where(sq.Eq{"id": update.UserID})
	if update.Hint != nil {
		q = q.Set("password_hint", *update.Hint)
	}
	return q.ToSql()
}

// buildDeleteUserQueries returns the statements deleting a user and everything
// it owns, in execution order. Employees of other owners that were linked to
// the user lose their link instead of being deleted.
func buildDeleteUserQueries(b sq.StatementBuilderType, userID string) []sq.Sqlizer {
	return []sq.Sqlizer{
		b.Delete(sessionsTable).Where(sq.Eq{"user_id": userID}),
		b.Delete(clientsTable).Where(sq.Eq{"owner_id": userID}),
		b.Delete(stockItemsTable).Where(sq.Eq{"owner_id": userID}),
		b.Delete(materialsTable).Where(sq.Eq{"owner_id": userID}),
		b.Delete(calculationsTable).Where(sq.Eq{"owner_id": userID}),
		b.Delete(employeesTable).Where(sq.Eq{"owner_id": userID}),
		b.Update(employeesTable).Set("linked_user_id", nil).Where(sq.Eq{"linked_user_id": userID}),
		b.Delete(settingsTable).Where(sq.Eq{"owner_id": userID}),
		b.Delete(usersTable).Where(sq.Eq{"id": userID}),
	}
}

// ─── sessions ────────────────────────────────────────────────────────────────

func buildInsertSessionQuery(b sq.StatementBuilderType, s models.Session) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.ID, s.UserID, s.Username, s.IsAdmin, s.IsMasterAdmin, s.CreatedAt, s.ExpiresAt).
		ToSql()
}

// buildDeleteExpiredSessionsQuery purges expired sessions of userID, or of
// every user when userID is empty.
func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, userID string, now time.Time) (string, []any, error) {
	q := b.Delete(sessionsTable).Where(sq.LtOrEq{"expires_at": now})
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return q.ToSql()
}

// ─── owner scoped rows ───────────────────────────────────────────────────────

func buildSelectOwnedQuery(b sq.StatementBuilderType, table string, columns []string, ownerIDs []string, orderBy ...string) (string, []any, error) {
	q := b.Select(columns...).From(table).Where(sq.Eq{"owner_id": ownerIDs})
	if len(orderBy) > 0 {
		q = q.OrderBy(orderBy...)
	}
	return q.ToSql()
}

func buildSelectOneOwnedQuery(b sq.StatementBuilderType, table string, columns []string, id string, ownerIDs []string) (string, []any, error) {
	return b.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "owner_id": ownerIDs}).
		ToSql()
}

func buildDeleteOwnedQuery(b sq.StatementBuilderType, table, id, ownerID string) (string, []any, error) {
	return b.Delete(table).Where(sq.Eq{"id": id, "owner_id": ownerID}).ToSql()
}

func buildDeleteAllOwnedQuery(b sq.StatementBuilderType, table, ownerID string) (string, []any, error) {
	return b.Delete(table).Where(sq.Eq{"owner_id": ownerID}).ToSql()
}

func buildCountOwnedQuery(b sq.StatementBuilderType, table, ownerID string) (string, []any, error) {
	return b.Select("COUNT(*)").From(table).Where(sq.Eq{"owner_id": ownerID}).ToSql()
}

// ─── clients ─────────────────────────────────────────────────────────────────

func buildInsertClientQuery(b sq.StatementBuilderType, c models.Client) (string, []any, error) {
	values := append([]any{c.ID, c.OwnerID, c.Name, c.TaxID, c.Phone, c.Email}, addressValues(c.Address)...)
	return b.Insert(clientsTable).Columns(clientColumns...).Values(values...).ToSql()
}

func buildUpdateClientQuery(b sq.StatementBuilderType, c models.Client) (string, []any, error) {
	return b.Update(clientsTable).
		SetMap(map[string]any{
			"name":   c.Name,
			"tax_id": c.TaxID,
			"phone":  c.Phone,
			"email":  c.Email,
		}).
		SetMap(addressSetMap(c.Address)).
		Where(sq.Eq{"id": c.ID, "owner_id": c.OwnerID}).
		ToSql()
}

// ─── materials ───────────────────────────────────────────────────────────────

func buildInsertMaterialQuery(b sq.StatementBuilderType, m models.Material) (string, []any, error) {
	return b.Insert(materialsTable).
		Columns(materialColumns...).
		Values(m.ID, m.OwnerID, m.Name, m.CostPerKg).
		ToSql()
}

func buildUpdateMaterialQuery(b sq.StatementBuilderType, m models.Material) (string, []any, error) {
	return b.Update(materialsTable).
		Set("name", m.Name).
		Set("cost_per_kg", m.CostPerKg).
		Where(sq.Eq{"id": m.ID, "owner_id": m.OwnerID}).
		ToSql()
}

// ─── stock items ─────────────────────────────────────────────────────────────

func buildInsertStockItemQuery(b sq.StatementBuilderType, s models.StockItem) (string, []any, error) {
	return b.Insert(stockItemsTable).
		Columns(stockItemColumns...).
		Values(s.ID, s.OwnerID, s.MaterialID, s.Brand, s.Color, s.UnitCost, s.RemainingGrams).
		ToSql()
}

func buildUpdateStockItemQuery(b sq.StatementBuilderType, s models.StockItem) (string, []any, error) {
	return b.Update(stockItemsTable).
		Set("material_id", s.MaterialID).
		Set("brand", s.Brand).
		Set("color", s.Color).
		Set("unit_cost", s.UnitCost).
		Set("remaining_grams", s.RemainingGrams).
		Where(sq.Eq{"id": s.ID, "owner_id": s.OwnerID}).
		ToSql()
}

func buildDecrementStockQuery(b sq.StatementBuilderType, id, ownerID string, grams float64) (string, []any, error) {
	return b.Update(stockItemsTable).
		Set("remaining_grams", sq.Expr("remaining_grams - ?", grams)).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(stockItemColumns, ", ")).
		ToSql()
}

// ─── employees ───────────────────────────────────────────────────────────────

func buildInsertEmployeeQuery(b sq.StatementBuilderType, e models.Employee) (string, []any, error) {
	values := append([]any{e.ID, e.OwnerID, e.Name, e.CommissionRatePercent, e.TaxID, e.Phone, e.Email}, addressValues(e.Address)...)
	values = append(values, e.LinkedUserID)
	return b.Insert(employeesTable).Columns(employeeColumns...).Values(values...).ToSql()
}

func buildUpdateEmployeeQuery(b sq.StatementBuilderType, e models.Employee) (string, []any, error) {
	return b.Update(employeesTable).
		SetMap(map[string]any{
			"name":                    e.Name,
			"commission_rate_percent": e.CommissionRatePercent,
			"tax_id":                  e.TaxID,
			"phone":                   e.Phone,
			"email":                   e.Email,
		}).
		SetMap(addressSetMap(e.Address)).
		Where(sq.Eq{"id": e.ID, "owner_id": e.OwnerID}).
		ToSql()
}

func buildSelectEmployeeByLinkedUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(employeeColumns...).From(employeesTable).
		Where(sq.Eq{"linked_user_id": userID}).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildLinkedUserIDsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select("linked_user_id").From(employeesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.NotEq{"linked_user_id": nil}).
		OrderBy("id").
		ToSql()
}

// ─── calculations ────────────────────────────────────────────────────────────

func buildInsertCalculationQuery(b sq.StatementBuilderType, c models.Calculation) (string, []any, error) {
	return b.Insert(calculationsTable).
		Columns(calculationColumns...).
		Values(c.ID, c.OwnerID, c.Date, c.ClientName, c.ProjectName, c.TotalCost,
			c.SuggestedPrice, string(c.Status), c.EmployeeID, c.EmployeeName, nullableJSON(c.Details)).
		ToSql()
}

// buildUpdateCalculationQuery rewrites every field but the creation date.
func buildUpdateCalculationQuery(b sq.StatementBuilderType, c models.Calculation) (string, []any, error) {
	return b.Update(calculationsTable).
		SetMap(map[string]any{
			"client_name":     c.ClientName,
			"project_name":    c.ProjectName,
			"total_cost":      c.TotalCost,
			"suggested_price": c.SuggestedPrice,
			"status":          string(c.Status),
			"employee_id":     c.EmployeeID,
			"employee_name":   c.EmployeeName,
			"details":         nullableJSON(c.Details),
		}).
		Where(sq.Eq{"id": c.ID, "owner_id": c.OwnerID}).
		ToSql()
}

func buildSetStatusQuery(b sq.StatementBuilderType, id, ownerID string, status models.QuoteStatus) (string, []any, error) {
	return b.Update(calculationsTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// ─── settings ────────────────────────────────────────────────────────────────

func buildInsertSettingsQuery(b sq.StatementBuilderType, s models.Settings) (string, []any, error) {
	return b.Insert(settingsTable).
		Columns(settingsColumns...).
		Values(s.OwnerID, s.LogoURL, s.ProfitMarginPercent, s.LaborCostPerHour,
			s.EnergyCostPerKWh, s.PrinterPurchasePrice, s.PrinterLifespanHours,
			s.PrinterPowerWatts, s.SelectedPrinterID, s.AdminContactPhone).
		ToSql()
}

func buildUpdateSettingsQuery(b sq.StatementBuilderType, s models.Settings) (string, []any, error) {
	return b.Update(settingsTable).
		SetMap(map[string]any{
			"logo_url":               s.LogoURL,
			"profit_margin_percent":  s.ProfitMarginPercent,
			"labor_cost_per_hour":    s.LaborCostPerHour,
			"energy_cost_per_kwh":    s.EnergyCostPerKWh,
			"printer_purchase_price": s.PrinterPurchasePrice,
			"printer_lifespan_hours": s.PrinterLifespanHours,
			"printer_power_watts":    s.PrinterPowerWatts,
			"selected_printer_id":    s.SelectedPrinterID,
			"admin_contact_phone":    s.AdminContactPhone,
		}).
		Where(sq.Eq{"owner_id": s.OwnerID}).
		ToSql()
}

func buildSelectSettingsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select(settingsColumns...).From(settingsTable).Where(sq.Eq{"owner_id": ownerID}).ToSql()
}

