package models

// Default cost parameters of a freshly created settings row.
const (
	DefaultProfitMarginPercent  = 100
	DefaultLaborCostPerHour     = 5
	DefaultEnergyCostPerKWh     = 0.9
	DefaultPrinterPurchasePrice = 1200
	DefaultPrinterLifespanHours = 6000
	DefaultPrinterPowerWatts    = 150
)

// Settings holds the per-owner cost parameters. Exactly one row exists per owner.
type Settings struct {
	OwnerID              string  `json:"ownerId"`
	LogoURL              *string `json:"logoUrl"`
	ProfitMarginPercent  float64 `json:"profitMarginPercent"`
	LaborCostPerHour     float64 `json:"laborCostPerHour"`
	EnergyCostPerKWh     float64 `json:"energyCostPerKWh"`
	PrinterPurchasePrice float64 `json:"printerPurchasePrice"`
	PrinterLifespanHours float64 `json:"printerLifespanHours"`
	PrinterPowerWatts    float64 `json:"printerPowerWatts"`
	SelectedPrinterID    *string `json:"selectedPrinterId"`
	AdminContactPhone    *string `json:"adminContactPhone"`
}

// DefaultSettings returns the settings row created on first access.
func DefaultSettings(ownerID string) Settings {
	return Settings{
		OwnerID:              ownerID,
		ProfitMarginPercent:  DefaultProfitMarginPercent,
		LaborCostPerHour:     DefaultLaborCostPerHour,
		EnergyCostPerKWh:     DefaultEnergyCostPerKWh,
		PrinterPurchasePrice: DefaultPrinterPurchasePrice,
		PrinterLifespanHours: DefaultPrinterLifespanHours,
		PrinterPowerWatts:    DefaultPrinterPowerWatts,
	}
}

// SettingsUpdate is a partial settings update. Nil fields are left untouched.
type SettingsUpdate struct {
	LogoURL              *string  `json:"logoUrl,omitempty"`
	ProfitMarginPercent  *float64 `json:"profitMarginPercent,omitempty" validate:"omitempty,gte=0"`
	LaborCostPerHour     *float64 `json:"laborCostPerHour,omitempty" validate:"omitempty,gte=0"`
	EnergyCostPerKWh     *float64 `json:"energyCostPerKWh,omitempty" validate:"omitempty,gte=0"`
	PrinterPurchasePrice *float64 `json:"printerPurchasePrice,omitempty" validate:"omitempty,gte=0"`
	PrinterLifespanHours *float64 `json:"printerLifespanHours,omitempty" validate:"omitempty,gte=0"`
	PrinterPowerWatts    *float64 `json:"printerPowerWatts,omitempty" validate:"omitempty,gte=0"`
	SelectedPrinterID    *string  `json:"selectedPrinterId,omitempty"`
	AdminContactPhone    *string  `json:"adminContactPhone,omitempty"`
}

// Apply copies every non-nil field of u onto s.
func (u SettingsUpdate) Apply(s *Settings) {
	if u.LogoURL != nil {
		s.LogoURL = u.LogoURL
	}
	setFloat(&s.ProfitMarginPercent, u.ProfitMarginPercent)
	setFloat(&s.LaborCostPerHour, u.LaborCostPerHour)
	setFloat(&s.EnergyCostPerKWh, u.EnergyCostPerKWh)
	setFloat(&s.PrinterPurchasePrice, u.PrinterPurchasePrice)
	setFloat(&s.PrinterLifespanHours, u.PrinterLifespanHours)
	setFloat(&s.PrinterPowerWatts, u.PrinterPowerWatts)
	if u.SelectedPrinterID != nil {
		s.SelectedPrinterID = u.SelectedPrinterID
	}
	if u.AdminContactPhone != nil {
		s.AdminContactPhone = u.AdminContactPhone
	}
}

// AsUpdate returns an update that would reproduce s on any settings row.
func (s Settings) AsUpdate() SettingsUpdate {
	return SettingsUpdate{
		LogoURL:              s.LogoURL,
		ProfitMarginPercent:  &s.ProfitMarginPercent,
		LaborCostPerHour:     &s.LaborCostPerHour,
		EnergyCostPerKWh:     &s.EnergyCostPerKWh,
		PrinterPurchasePrice: &s.PrinterPurchasePrice,
		PrinterLifespanHours: &s.PrinterLifespanHours,
		PrinterPowerWatts:    &s.PrinterPowerWatts,
		SelectedPrinterID:    s.SelectedPrinterID,
		AdminContactPhone:    s.AdminContactPhone,
	}
}
