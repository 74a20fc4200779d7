package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultSettings = Settings{
	ProfitMarginPercent:  100,
	LaborCostPerHour:     5,
	EnergyCostPerKWh:     0.9,
	PrinterPurchasePrice: 1200,
	PrinterLifespanHours: 6000,
	PrinterPowerWatts:    150,
}

func stockOf(prices map[string]float64) StockLookup {
	return func(id string) (float64, bool) {
		p, ok := prices[id]
		return p, ok
	}
}

func TestCalculate_SingleLine(t *testing.T) {
	lines := []Line{{Description: "vase", StockItemID: "roll-1", Grams: 100, Hours: 2, Minutes: 30, Qty: 1}}

	res := Calculate(defaultSettings, lines, stockOf(map[string]float64{"roll-1": 80}))

	assert.InDelta(t, 0.135, res.EnergyPerHour, 1e-12)
	assert.InDelta(t, 0.20, res.DepreciationPerHour, 1e-12)
	assert.Equal(t, 8.00, res.MaterialCost)
	assert.Equal(t, 0.34, res.EnergyCost)
	assert.Equal(t, 0.50, res.DepreciationCost)
	assert.Equal(t, 12.50, res.LaborCost)
	assert.Equal(t, 21.34, res.TotalCost)
	assert.Equal(t, 42.68, res.SuggestedPrice)
	assert.Equal(t, 21.34, res.Profit)
	assert.Equal(t, 1, res.QtyTotal)
	assert.Equal(t, 42.68, res.UnitAveragePrice)

	require.Len(t, res.Lines, 1)
	assert.Equal(t, 42.68, Round2(res.Lines[0].UnitPrice))
	assert.Equal(t, 42.68, res.Lines[0].LineTotal)
}

func TestCalculate_LineTotalsSumToSuggestedPrice(t *testing.T) {
	// unit price of both lines is 10/3
	s := Settings{LaborCostPerHour: 10}
	lines := []Line{
		{Description: "a", Minutes: 20, Qty: 3},
		{Description: "b", Minutes: 20, Qty: 2},
	}

	res := Calculate(s, lines, nil)

	require.Len(t, res.Lines, 2)
	assert.InDelta(t, 10.0/3, res.Lines[0].UnitPrice, 1e-9)
	assert.Equal(t, 10.00, res.Lines[0].LineTotal)
	assert.Equal(t, 6.67, res.Lines[1].LineTotal)
	assert.Equal(t, 16.67, res.SuggestedPrice)
	assert.Equal(t, Round2(res.Lines[0].LineTotal+res.Lines[1].LineTotal), res.SuggestedPrice)
	assert.Equal(t, 5, res.QtyTotal)
	assert.Equal(t, 3.33, res.UnitAveragePrice)
}

func TestCalculate_EmptyLines(t *testing.T) {
	res := Calculate(defaultSettings, nil, nil)

	assert.Zero(t, res.MaterialCost)
	assert.Zero(t, res.EnergyCost)
	assert.Zero(t, res.DepreciationCost)
	assert.Zero(t, res.LaborCost)
	assert.Zero(t, res.TotalCost)
	assert.Zero(t, res.SuggestedPrice)
	assert.Zero(t, res.Profit)
	assert.Zero(t, res.QtyTotal)
	assert.Zero(t, res.UnitAveragePrice)
	assert.Empty(t, res.Lines)
}

func TestCalculate_LifespanFloor(t *testing.T) {
	tests := []struct {
		name     string
		lifespan float64
		want     float64
	}{
		{name: "zero", lifespan: 0, want: 0.2},
		{name: "below floor", lifespan: 1000, want: 0.2},
		{name: "above floor", lifespan: 12000, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSettings
			s.PrinterLifespanHours = tt.lifespan
			assert.InDelta(t, tt.want, DepreciationPerHour(s), 1e-12)
		})
	}
}

func TestCalculate_MissingInputsCountAsZero(t *testing.T) {
	lines := []Line{
		{Description: "unknown roll", StockItemID: "missing", Grams: 500, Qty: 2},
		{Description: "no roll", Grams: 500, Hours: -3, Qty: 0},
	}

	res := Calculate(defaultSettings, lines, stockOf(nil))

	assert.Zero(t, res.MaterialCost)
	assert.Zero(t, res.TotalCost)
	assert.Zero(t, res.SuggestedPrice)
	assert.Equal(t, 3, res.QtyTotal, "qty below one counts as one")
}

func TestCalculate_QuantityMultipliesAggregates(t *testing.T) {
	lines := []Line{{StockItemID: "roll-1", Grams: 50, Hours: 1, Qty: 4}}

	res := Calculate(defaultSettings, lines, stockOf(map[string]float64{"roll-1": 100}))

	assert.Equal(t, 20.00, res.MaterialCost)
	assert.Equal(t, 0.54, res.EnergyCost)
	assert.Equal(t, 0.80, res.DepreciationCost)
	assert.Equal(t, 20.00, res.LaborCost)
	assert.Equal(t, 41.34, res.TotalCost)
	assert.Equal(t, res.Lines[0].LineTotal, res.SuggestedPrice)
	assert.Equal(t, Round2(res.SuggestedPrice-res.TotalCost), res.Profit)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	lines := []Line{
		{StockItemID: "a", Grams: 37, Hours: 1, Minutes: 7, Qty: 3},
		{StockItemID: "b", Grams: 212.5, Minutes: 45, Qty: 1},
	}
	lookup := stockOf(map[string]float64{"a": 89.9, "b": 120})

	first := Calculate(defaultSettings, lines, lookup)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Calculate(defaultSettings, lines, lookup))
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 1.005, want: 1.01},
		{in: 0.3375, want: 0.34},
		{in: 2.344, want: 2.34},
		{in: 42.675, want: 42.68},
		{in: 10, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}
