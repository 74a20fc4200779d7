package models

import (
	"encoding/json"
	"time"
)

// QuoteStatus is the lifecycle state of a quote. Any transition between the
// three states is allowed.
type QuoteStatus string

const (
	StatusPending   QuoteStatus = "pending"
	StatusConfirmed QuoteStatus = "confirmed"
	StatusDenied    QuoteStatus = "denied"
)

// Valid reports whether s is one of the known statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDenied:
		return true
	}
	return false
}

// Calculation is a stored quote. Date is set once at creation. EmployeeName is a
// snapshot and survives the deletion of the employee.
//
// Details is kept as raw JSON: quotes created by this server store a
// [QuoteDetails] document, imported history keeps whatever the backup carried.
type Calculation struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"ownerId"`
	Date           time.Time       `json:"date"`
	ClientName     string          `json:"clientName"`
	ProjectName    string          `json:"projectName"`
	TotalCost      float64         `json:"totalCost"`
	SuggestedPrice float64         `json:"suggestedPrice"`
	Status         QuoteStatus     `json:"status"`
	EmployeeID     *string         `json:"employeeId"`
	EmployeeName   *string         `json:"employeeName"`
	Details        json.RawMessage `json:"details"`
}

// QuoteLine is one printable part of a quote. StockItemID refers to the roll the
// part is printed with; an empty id means no material cost.
type QuoteLine struct {
	Description string  `json:"description"`
	StockItemID string  `json:"stockItemId,omitempty"`
	Grams       float64 `json:"grams" validate:"gte=0"`
	Hours       float64 `json:"hours" validate:"gte=0"`
	Minutes     float64 `json:"minutes" validate:"gte=0"`
	Qty         int     `json:"qty" validate:"gte=0"`
}

// QuoteDetails is the input snapshot stored with a quote so that the editor can
// reopen it identically. Editor is an opaque client document kept verbatim.
type QuoteDetails struct {
	Lines               []QuoteLine     `json:"lines"`
	ProfitMarginPercent float64         `json:"profitMarginPercent"`
	Breakdown           *QuoteBreakdown `json:"breakdown,omitempty"`
	Editor              json.RawMessage `json:"editor,omitempty"`
}

// QuoteRequest is the body of quote creation, update and preview.
// Client-supplied totals are never accepted: the server recomputes them.
type QuoteRequest struct {
	ClientName          string          `json:"clientName"`
	ProjectName         string          `json:"projectName" validate:"required"`
	Status              QuoteStatus     `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed denied"`
	EmployeeID          *string         `json:"employeeId,omitempty"`
	ProfitMarginPercent *float64        `json:"profitMarginPercent,omitempty" validate:"omitempty,gte=0"`
	Lines               []QuoteLine     `json:"lines" validate:"dive"`
	Editor              json.RawMessage `json:"editor,omitempty"`
}

// StatusRequest is the body of a status transition.
type StatusRequest struct {
	Status QuoteStatus `json:"status" validate:"required,oneof=pending confirmed denied"`
}

// LineBreakdown is the computed view of one quote line.
type LineBreakdown struct {
	Description      string  `json:"description"`
	Qty              int     `json:"qty"`
	HoursTotal       float64 `json:"hoursTotal"`
	MaterialUnitCost float64 `json:"materialUnitCost"`
	UnitCost         float64 `json:"unitCost"`
	UnitPrice        float64 `json:"unitPrice"`
	LineTotal        float64 `json:"lineTotal"`
}

// QuoteBreakdown is the cost breakdown of a quote as computed by the costing engine.
type QuoteBreakdown struct {
	ProfitMarginPercent float64         `json:"profitMarginPercent"`
	EnergyPerHour       float64         `json:"energyPerHour"`
	DepreciationPerHour float64         `json:"depreciationPerHour"`
	MaterialCost        float64         `json:"materialCost"`
	EnergyCost          float64         `json:"energyCost"`
	DepreciationCost    float64         `json:"depreciationCost"`
	LaborCost           float64         `json:"laborCost"`
	TotalCost           float64         `json:"totalCost"`
	SuggestedPrice      float64         `json:"suggestedPrice"`
	Profit              float64         `json:"profit"`
	QtyTotal            int             `json:"qtyTotal"`
	UnitAveragePrice    float64         `json:"unitAveragePrice"`
	Lines               []LineBreakdown `json:"lines"`
}

// CreatedQuote is the response of a quote creation.
type CreatedQuote struct {
	Calculation Calculation            `json:"calculation"`
	LowStock    []LowStockNotification `json:"lowStock"`
}
