package models

// NoSellerLabel names the synthetic commission group of quotes saved without an employee.
const NoSellerLabel = "No seller"

// CommissionGroup aggregates the confirmed quotes of one seller in a month.
// Rate is read from the live employee row and falls back to zero when the
// employee no longer exists.
type CommissionGroup struct {
	EmployeeID   *string `json:"employeeId"`
	SellerName   string  `json:"sellerName"`
	QuoteCount   int     `json:"quoteCount"`
	GrossRevenue float64 `json:"grossRevenue"`
	Rate         float64 `json:"rate"`
	Commission   float64 `json:"commission"`
}

// CommissionTotals sums every group of a report.
type CommissionTotals struct {
	QuoteCount   int     `json:"quoteCount"`
	GrossRevenue float64 `json:"grossRevenue"`
	Commission   float64 `json:"commission"`
}

// CommissionReport is the monthly commission report, groups sorted by gross revenue.
type CommissionReport struct {
	Year   int               `json:"year"`
	Month  int               `json:"month"`
	Groups []CommissionGroup `json:"groups"`
	Totals CommissionTotals  `json:"totals"`
}
