package dto

import "github.com/shopspring/decimal"

// SummaryBucket is one aggregate row of the expense summary.
type SummaryBucket struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// ExpenseSummaryResponse is the analytical rollup for the reports screen.
// RemainingFloat is the configured opening float minus the petty-cash total.
type ExpenseSummaryResponse struct {
	TotalPettyCash   decimal.Decimal `json:"totalPettyCash"`
	TotalCashVoucher decimal.Decimal `json:"totalCashVoucher"`
	OpeningFloat     decimal.Decimal `json:"openingFloat"`
	RemainingFloat   decimal.Decimal `json:"remainingFloat"`
	ByDepartment     []SummaryBucket `json:"byDepartment"`
	ByCategory       []SummaryBucket `json:"byCategory"`
}

// SummaryParams are the optional query filters for the summary.
type SummaryParams struct {
	Timeframe string `form:"timeframe"` // all, 1h, 1m, 2m, 3m
}
