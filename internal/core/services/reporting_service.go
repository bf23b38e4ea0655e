package services

import (
	"context"
	"sort"
	"time"

	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook/voucher_backend/internal/core/ports/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/finbook/voucher_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// reportingService rolls expense data up for the reports screen.
type reportingService struct {
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	openingFloat decimal.Decimal
}

// NewReportingService creates a new ReportingService.
func NewReportingService(expenseRepo portsrepo.ExpenseRepositoryFacade, openingFloat decimal.Decimal) portssvc.ReportingSvcFacade {
	return &reportingService{
		expenseRepo:  expenseRepo,
		openingFloat: openingFloat,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetSummary aggregates expense totals and the remaining float balance for
// the requested timeframe. The remaining float only tracks petty cash since
// cash vouchers are settled against bills, not the float.
func (s *reportingService) GetSummary(ctx context.Context, params dto.SummaryParams) (*dto.ExpenseSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	from, err := TimeframeBounds(params.Timeframe, time.Now())
	if err != nil {
		return nil, err
	}

	rows, err := s.expenseRepo.SummarizeExpenses(ctx, from, nil)
	if err != nil {
		logger.Error("failed to summarize expenses", "error", err)
		return nil, err
	}

	summary := &dto.ExpenseSummaryResponse{
		TotalPettyCash:   decimal.Zero,
		TotalCashVoucher: decimal.Zero,
		OpeningFloat:     s.openingFloat,
	}

	byDepartment := map[string]decimal.Decimal{}
	byCategory := map[string]decimal.Decimal{}
	for _, row := range rows {
		switch row.Type {
		case domain.PettyCash:
			summary.TotalPettyCash = summary.TotalPettyCash.Add(row.Total)
			if row.Category != "" {
				byCategory[row.Category] = byCategory[row.Category].Add(row.Total)
			}
		case domain.CashVoucher:
			summary.TotalCashVoucher = summary.TotalCashVoucher.Add(row.Total)
		}
		if row.Department != "" {
			byDepartment[row.Department] = byDepartment[row.Department].Add(row.Total)
		}
	}

	summary.RemainingFloat = s.openingFloat.Sub(summary.TotalPettyCash)
	summary.ByDepartment = bucketize(byDepartment)
	summary.ByCategory = bucketize(byCategory)

	return summary, nil
}

// bucketize converts an aggregation map into buckets sorted by total,
// largest first, for stable display ordering.
func bucketize(totals map[string]decimal.Decimal) []dto.SummaryBucket {
	buckets := make([]dto.SummaryBucket, 0, len(totals))
	for name, total := range totals {
		buckets = append(buckets, dto.SummaryBucket{Name: name, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Total.Equal(buckets[j].Total) {
			return buckets[i].Name < buckets[j].Name
		}
		return buckets[i].Total.GreaterThan(buckets[j].Total)
	})
	return buckets
}
