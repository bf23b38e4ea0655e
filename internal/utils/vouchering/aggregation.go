package vouchering

import (
	"fmt"
	"strings"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// defaultCategory is used for petty-cash expenses entered without a category.
const defaultCategory = "General"

// CategoryKey returns the grouping key for a raw petty-cash category:
// trimmed and lower-cased. An empty category falls back to the default.
// This is the single normalization rule shared by data entry, filtering and
// aggregation.
func CategoryKey(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultCategory
	}
	return strings.ToLower(trimmed)
}

// DisplayCategory returns the display form of a raw category: trimmed, first
// character upper-cased, remainder lower-cased.
func DisplayCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultCategory
	}
	runes := []rune(trimmed)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}

// pettyCashGroup accumulates one category's expenses during aggregation.
type pettyCashGroup struct {
	detail  string
	amount  decimal.Decimal
	remarks []string
	seen    map[string]bool
}

// Aggregate deterministically transforms a set of expenses of a single type
// into ordered voucher line items. It is a pure function: aggregating the
// same input twice yields identical output, which generation and resync rely
// on. Callers must not pass mixed-type input.
//
// Petty cash expenses are grouped by normalized category; the display form of
// each group is taken from the first raw spelling seen, groups are emitted in
// first-seen order, amounts are summed and non-empty remarks joined
// de-duplicated in encounter order. Cash voucher expenses map one-to-one onto
// line items in input order.
func Aggregate(expenses []domain.Expense, expenseType domain.ExpenseType) []domain.VoucherItem {
	if expenseType == domain.PettyCash {
		return aggregatePettyCash(expenses)
	}
	return aggregateCashVoucher(expenses)
}

func aggregatePettyCash(expenses []domain.Expense) []domain.VoucherItem {
	groups := make(map[string]*pettyCashGroup)
	order := make([]string, 0, len(expenses))

	for _, exp := range expenses {
		key := CategoryKey(exp.Category)
		group, ok := groups[key]
		if !ok {
			group = &pettyCashGroup{
				detail: DisplayCategory(exp.Category),
				amount: decimal.Zero,
				seen:   make(map[string]bool),
			}
			groups[key] = group
			order = append(order, key)
		}
		group.amount = group.amount.Add(exp.Amount)
		if exp.Remarks != "" && !group.seen[exp.Remarks] {
			group.seen[exp.Remarks] = true
			group.remarks = append(group.remarks, exp.Remarks)
		}
	}

	items := make([]domain.VoucherItem, 0, len(order))
	for i, key := range order {
		group := groups[key]
		items = append(items, domain.VoucherItem{
			SrNo:    i + 1,
			Detail:  group.detail,
			Amount:  group.amount,
			Remarks: strings.Join(group.remarks, ", "),
		})
	}
	return items
}

func aggregateCashVoucher(expenses []domain.Expense) []domain.VoucherItem {
	items := make([]domain.VoucherItem, 0, len(expenses))
	for i, exp := range expenses {
		detail := fmt.Sprintf("%s (%s)", exp.Description, exp.VendorName)
		if exp.Department != "" {
			detail += " - " + exp.Department
		}
		items = append(items, domain.VoucherItem{
			SrNo:    i + 1,
			Detail:  detail,
			Amount:  exp.Amount,
			Remarks: fmt.Sprintf("%s - %s", exp.ConcernPerson, exp.BillOfMonth),
		})
	}
	return items
}

// ItemsTotal sums the amounts of the given line items. For any input set this
// equals the sum of the raw expense amounts that produced the items.
func ItemsTotal(items []domain.VoucherItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
