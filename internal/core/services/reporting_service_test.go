package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	"github.com/finbook/voucher_backend/internal/core/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockExpenseRepository)
	svc := services.NewReportingService(mockRepo, decimal.NewFromInt(10000))

	rows := []portsrepo.ExpenseSummaryRow{
		{Type: domain.PettyCash, Department: "Admin", Category: "Travel", Total: decimal.NewFromInt(1200)},
		{Type: domain.PettyCash, Department: "Sales", Category: "Food", Total: decimal.NewFromInt(800)},
		{Type: domain.PettyCash, Department: "Admin", Category: "Food", Total: decimal.NewFromInt(500)},
		{Type: domain.CashVoucher, Department: "Admin", Total: decimal.NewFromInt(3000)},
	}
	mockRepo.On("SummarizeExpenses", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(rows, nil).Once()

	summary, err := svc.GetSummary(ctx, dto.SummaryParams{Timeframe: "all"})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2500).Equal(summary.TotalPettyCash))
	assert.True(t, decimal.NewFromInt(3000).Equal(summary.TotalCashVoucher))
	assert.True(t, decimal.NewFromInt(7500).Equal(summary.RemainingFloat))

	require.Len(t, summary.ByDepartment, 2)
	assert.Equal(t, "Admin", summary.ByDepartment[0].Name)
	assert.True(t, decimal.NewFromInt(4700).Equal(summary.ByDepartment[0].Total))

	require.Len(t, summary.ByCategory, 2)
	assert.Equal(t, "Food", summary.ByCategory[0].Name)
	assert.True(t, decimal.NewFromInt(1300).Equal(summary.ByCategory[0].Total))
}

func TestGetSummary_InvalidTimeframe(t *testing.T) {
	svc := services.NewReportingService(new(MockExpenseRepository), decimal.Zero)

	_, err := svc.GetSummary(context.Background(), dto.SummaryParams{Timeframe: "bogus"})

	assert.ErrorIs(t, err, services.ErrInvalidTimeframe)
}
