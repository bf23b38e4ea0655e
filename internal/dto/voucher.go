package dto

import (
	"time"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherPreview is the result of voucher generation before anything is
// persisted. ExpenseIDs are carried so the subsequent save can link exactly
// the previewed rows. The caller may discard a preview without cleanup.
type VoucherPreview struct {
	Serial     string               `json:"serial"`
	Items      []domain.VoucherItem `json:"items"`
	Total      decimal.Decimal      `json:"total"`
	ExpenseIDs []string             `json:"expenseIDs"`
}

// SaveVoucherRequest persists a previously previewed voucher.
// ExpenseIDs may be empty; the voucher is still created.
type SaveVoucherRequest struct {
	Serial     string               `json:"serial" binding:"required"`
	Date       time.Time            `json:"date" binding:"required"`
	Type       domain.ExpenseType   `json:"type" binding:"required,expensetype"`
	Total      decimal.Decimal      `json:"total"`
	Items      []domain.VoucherItem `json:"items" binding:"required"`
	ExpenseIDs []string             `json:"expenseIDs"`
}

// SaveVoucherResponse returns the identifiers of the saved voucher.
type SaveVoucherResponse struct {
	VoucherID    string `json:"voucherID"`
	SerialNumber string `json:"serialNumber"`
}

// ResyncVoucherRequest re-aggregates a saved voucher from its currently
// linked expenses.
type ResyncVoucherRequest struct {
	SerialNumber string `json:"serialNumber" binding:"required"`
}

// ResyncVoucherResponse reports the recomputed total.
type ResyncVoucherResponse struct {
	NewTotal decimal.Decimal `json:"newTotal"`
}

// ListVouchersResponse wraps the voucher list.
type ListVouchersResponse struct {
	Vouchers []domain.Voucher `json:"vouchers"`
}

// PendingDatesResponse lists dates that still have unvouchered expenses.
type PendingDatesResponse struct {
	Dates []string `json:"dates"` // YYYY-MM-DD, newest first
}

// BackfillPreparedByResponse reports how many vouchers were re-stamped.
type BackfillPreparedByResponse struct {
	Count int `json:"count"`
}
