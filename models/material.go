package models

// Material is a catalogue entry with its price per kilogram.
type Material struct {
	ID        string  `json:"id"`
	OwnerID   string  `json:"ownerId"`
	Name      string  `json:"name" validate:"required"`
	CostPerKg float64 `json:"costPerKg" validate:"gte=0"`
}

// MaterialUpdate is a partial material update.
type MaterialUpdate struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	CostPerKg *float64 `json:"costPerKg,omitempty" validate:"omitempty,gte=0"`
}

// Apply copies every non-nil field of u onto m.
func (u MaterialUpdate) Apply(m *Material) {
	setString(&m.Name, u.Name)
	setFloat(&m.CostPerKg, u.CostPerKg)
}

// StockItem is a concrete filament roll. UnitCost is the roll's price per kilogram
// and RemainingGrams may drop below zero after quotes consume it.
type StockItem struct {
	ID             string  `json:"id"`
	OwnerID        string  `json:"ownerId"`
	MaterialID     string  `json:"materialId" validate:"required"`
	Brand          string  `json:"brand"`
	Color          string  `json:"color"`
	UnitCost       float64 `json:"unitCost" validate:"gte=0"`
	RemainingGrams float64 `json:"remainingGrams"`
}

// StockItemUpdate is a partial stock item update.
type StockItemUpdate struct {
	MaterialID     *string  `json:"materialId,omitempty" validate:"omitempty,min=1"`
	Brand          *string  `json:"brand,omitempty"`
	Color          *string  `json:"color,omitempty"`
	UnitCost       *float64 `json:"unitCost,omitempty" validate:"omitempty,gte=0"`
	RemainingGrams *float64 `json:"remainingGrams,omitempty"`
}

// Apply copies every non-nil field of u onto s.
func (u StockItemUpdate) Apply(s *StockItem) {
	setString(&s.MaterialID, u.MaterialID)
	setString(&s.Brand, u.Brand)
	setString(&s.Color, u.Color)
	setFloat(&s.UnitCost, u.UnitCost)
	setFloat(&s.RemainingGrams, u.RemainingGrams)
}

// LowStockKind distinguishes a low roll from an exhausted one.
type LowStockKind string

const (
	LowStockLow      LowStockKind = "low"
	LowStockDepleted LowStockKind = "depleted"
)

// LowStockNotification reports a stock row that crossed the low-stock threshold
// after a quote consumed it.
type LowStockNotification struct {
	StockItemID    string       `json:"stockItemId"`
	MaterialName   string       `json:"materialName"`
	Brand          string       `json:"brand"`
	Color          string       `json:"color"`
	RemainingGrams float64      `json:"remainingGrams"`
	Kind           LowStockKind `json:"kind"`
}
