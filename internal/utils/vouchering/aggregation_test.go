package vouchering_test

import (
	"testing"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/finbook/voucher_backend/internal/utils/vouchering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pettyCash(category, remarks string, amount int64) domain.Expense {
	return domain.Expense{
		Type:     domain.PettyCash,
		Category: category,
		Remarks:  remarks,
		Amount:   decimal.NewFromInt(amount),
	}
}

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Travel", "travel"},
		{"padded", "  travel  ", "travel"},
		{"upper", "TRAVEL", "travel"},
		{"empty falls back to default", "", "general"},
		{"whitespace only falls back to default", "   ", "general"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vouchering.CategoryKey(tt.raw))
		})
	}
}

func TestDisplayCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lower", "travel", "Travel"},
		{"upper", "TRAVEL", "Travel"},
		{"mixed padded", "  fOOd  ", "Food"},
		{"empty", "", "General"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vouchering.DisplayCategory(tt.raw))
		})
	}
}

func TestAggregatePettyCashGroupsByNormalizedCategory(t *testing.T) {
	expenses := []domain.Expense{
		pettyCash("Travel", "taxi", 100),
		pettyCash(" travel ", "taxi", 50),
		pettyCash("TRAVEL", "fuel", 25),
	}

	items := vouchering.Aggregate(expenses, domain.PettyCash)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].SrNo)
	assert.Equal(t, "Travel", items[0].Detail)
	assert.True(t, decimal.NewFromInt(175).Equal(items[0].Amount))
	assert.Equal(t, "taxi, fuel", items[0].Remarks)
}

func TestAggregatePettyCashDisplayFromFirstSpelling(t *testing.T) {
	expenses := []domain.Expense{
		pettyCash("fOOd", "", 100),
		pettyCash("food", "", 50),
		pettyCash("FOOD", "", 25),
	}

	items := vouchering.Aggregate(expenses, domain.PettyCash)

	require.Len(t, items, 1)
	assert.Equal(t, "Food", items[0].Detail)
	assert.True(t, decimal.NewFromInt(175).Equal(items[0].Amount))
}

func TestAggregatePettyCashFirstSeenOrder(t *testing.T) {
	expenses := []domain.Expense{
		pettyCash("Stationery", "", 10),
		pettyCash("Travel", "", 20),
		pettyCash("stationery", "", 30),
		pettyCash("", "", 5),
	}

	items := vouchering.Aggregate(expenses, domain.PettyCash)

	require.Len(t, items, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].SrNo, items[1].SrNo, items[2].SrNo})
	assert.Equal(t, "Stationery", items[0].Detail)
	assert.Equal(t, "Travel", items[1].Detail)
	assert.Equal(t, "General", items[2].Detail)
	assert.True(t, decimal.NewFromInt(40).Equal(items[0].Amount))
}

func TestAggregateCashVoucherOneToOne(t *testing.T) {
	expenses := []domain.Expense{
		{
			Type:          domain.CashVoucher,
			Description:   "Printer cartridges",
			VendorName:    "OfficeMart",
			Department:    "Admin",
			ConcernPerson: "R. Mehta",
			BillOfMonth:   "July",
			Amount:        decimal.NewFromInt(1200),
		},
		{
			Type:          domain.CashVoucher,
			Description:   "Courier charges",
			VendorName:    "SpeedPost",
			ConcernPerson: "S. Rao",
			BillOfMonth:   "July",
			Amount:        decimal.NewFromInt(340),
		},
	}

	items := vouchering.Aggregate(expenses, domain.CashVoucher)

	require.Len(t, items, 2)
	assert.Equal(t, "Printer cartridges (OfficeMart) - Admin", items[0].Detail)
	assert.Equal(t, "R. Mehta - July", items[0].Remarks)
	assert.Equal(t, "Courier charges (SpeedPost)", items[1].Detail)
	assert.Equal(t, 2, items[1].SrNo)
}

func TestAggregateIsDeterministic(t *testing.T) {
	expenses := []domain.Expense{
		pettyCash("Travel", "taxi", 100),
		pettyCash("Food", "lunch", 50),
		pettyCash("travel", "toll", 30),
	}

	first := vouchering.Aggregate(expenses, domain.PettyCash)
	second := vouchering.Aggregate(expenses, domain.PettyCash)

	assert.Equal(t, first, second)
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, vouchering.Aggregate(nil, domain.PettyCash))
	assert.Empty(t, vouchering.Aggregate([]domain.Expense{}, domain.CashVoucher))
}

func TestItemsTotalEqualsExpenseSum(t *testing.T) {
	expenses := []domain.Expense{
		pettyCash("Travel", "", 100),
		pettyCash("Food", "", 50),
		pettyCash("travel", "", 30),
	}

	items := vouchering.Aggregate(expenses, domain.PettyCash)

	expenseSum := decimal.Zero
	for _, e := range expenses {
		expenseSum = expenseSum.Add(e.Amount)
	}
	assert.True(t, expenseSum.Equal(vouchering.ItemsTotal(items)))
}
