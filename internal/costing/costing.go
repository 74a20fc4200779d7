// Package costing turns printer, energy, labour and material parameters plus a
// list of quote lines into per-line prices and quote totals.
//
// Calculate is a pure function: it performs no I/O, never fails and treats
// missing inputs as zero. Line totals are rounded to cents and the suggested
// price is the sum of the rounded line totals, so displayed lines always add up
// to the displayed grand total.
package costing

import "math"

// MinLifespanHours floors the depreciation denominator so that an empty or
// zero printer lifespan does not blow up the hourly depreciation.
const MinLifespanHours = 6000

// Settings are the cost parameters in effect for one quote.
type Settings struct {
	ProfitMarginPercent  float64
	LaborCostPerHour     float64
	EnergyCostPerKWh     float64
	PrinterPurchasePrice float64
	PrinterLifespanHours float64
	PrinterPowerWatts    float64
}

// Line is one printable part. Qty below one counts as one.
type Line struct {
	Description string
	StockItemID string
	Grams       float64
	Hours       float64
	Minutes     float64
	Qty         int
}

// StockLookup resolves the price per kilogram of a stock item.
// ok is false when the item is unknown.
type StockLookup func(stockItemID string) (costPerKg float64, ok bool)

// LineResult is the computed view of one line. Unit values are exact; only
// LineTotal is rounded.
type LineResult struct {
	Line
	HoursTotal           float64
	MaterialUnitCost     float64
	EnergyUnitCost       float64
	DepreciationUnitCost float64
	LaborUnitCost        float64
	UnitCost             float64
	UnitPrice            float64
	LineTotal            float64
}

// Result holds the per-quote constants, lines and aggregates.
type Result struct {
	EnergyPerHour       float64
	DepreciationPerHour float64
	ProfitFactor        float64

	Lines []LineResult

	MaterialCost     float64
	EnergyCost       float64
	DepreciationCost float64
	LaborCost        float64
	TotalCost        float64
	SuggestedPrice   float64
	Profit           float64
	QtyTotal         int
	UnitAveragePrice float64
}

// EnergyPerHour returns the energy cost of one printing hour.
func EnergyPerHour(s Settings) float64 {
	return (s.PrinterPowerWatts / 1000) * s.EnergyCostPerKWh
}

// DepreciationPerHour returns the printer depreciation of one printing hour.
func DepreciationPerHour(s Settings) float64 {
	return s.PrinterPurchasePrice / math.Max(s.PrinterLifespanHours, MinLifespanHours)
}

// ProfitFactor returns the multiplier turning a cost into a price.
func ProfitFactor(s Settings) float64 {
	return 1 + s.ProfitMarginPercent/100
}

// Calculate prices lines under settings s. A nil lookup prices every line
// without material.
func Calculate(s Settings, lines []Line, lookup StockLookup) Result {
	res := Result{
		EnergyPerHour:       EnergyPerHour(s),
		DepreciationPerHour: DepreciationPerHour(s),
		ProfitFactor:        ProfitFactor(s),
		Lines:               make([]LineResult, 0, len(lines)),
	}

	var material, energy, depreciation, labor, suggested float64

	for _, line := range lines {
		lr := res.priceLine(s, line, lookup)
		qty := float64(lr.Qty)

		material += lr.MaterialUnitCost * qty
		energy += lr.EnergyUnitCost * qty
		depreciation += lr.DepreciationUnitCost * qty
		labor += lr.LaborUnitCost * qty
		suggested += lr.LineTotal

		res.QtyTotal += lr.Qty
		res.Lines = append(res.Lines, lr)
	}

	res.MaterialCost = Round2(material)
	res.EnergyCost = Round2(energy)
	res.DepreciationCost = Round2(depreciation)
	res.LaborCost = Round2(labor)
	res.TotalCost = Round2(material + energy + depreciation + labor)
	res.SuggestedPrice = Round2(suggested)
	res.Profit = Round2(res.SuggestedPrice - res.TotalCost)

	if res.QtyTotal > 0 {
		res.UnitAveragePrice = Round2(res.SuggestedPrice / float64(res.QtyTotal))
	}

	return res
}

func (r Result) priceLine(s Settings, line Line, lookup StockLookup) LineResult {
	if line.Qty < 1 {
		line.Qty = 1
	}

	lr := LineResult{Line: line}
	lr.HoursTotal = nonNegative(line.Hours) + nonNegative(line.Minutes)/60

	if line.StockItemID != "" && lookup != nil {
		if costPerKg, ok := lookup(line.StockItemID); ok {
			lr.MaterialUnitCost = costPerKg * nonNegative(line.Grams) / 1000
		}
	}

	lr.EnergyUnitCost = lr.HoursTotal * r.EnergyPerHour
	lr.DepreciationUnitCost = lr.HoursTotal * r.DepreciationPerHour
	lr.LaborUnitCost = lr.HoursTotal * s.LaborCostPerHour
	lr.UnitCost = lr.MaterialUnitCost + lr.EnergyUnitCost + lr.DepreciationUnitCost + lr.LaborUnitCost
	lr.UnitPrice = lr.UnitCost * r.ProfitFactor
	lr.LineTotal = Round2(lr.UnitPrice * float64(line.Qty))

	return lr
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
