package services

import (
	"context"

	"github.com/finbook/voucher_backend/internal/dto"
)

// ReportingSvcFacade provides analytical rollups for the reports screen.
type ReportingSvcFacade interface {
	// GetSummary aggregates expense totals and the remaining float balance for
	// the requested timeframe.
	GetSummary(ctx context.Context, params dto.SummaryParams) (*dto.ExpenseSummaryResponse, error)
}
