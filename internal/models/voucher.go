package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates the clearing state of a voucher.
type VoucherStatus string

const (
	VoucherPending VoucherStatus = "PENDING"
	VoucherCleared VoucherStatus = "CLEARED"
)

// VoucherItem is one line of a voucher document, persisted as JSONB.
type VoucherItem struct {
	SrNo    int             `json:"srNo"`
	Detail  string          `json:"detail"`
	Amount  decimal.Decimal `json:"amount"`
	Remarks string          `json:"remarks"`
}

// Voucher mirrors the voucher_records table.
type Voucher struct {
	VoucherID    string          `json:"voucherID"`
	SerialNumber string          `json:"serialNumber"`
	Type         ExpenseType     `json:"type"`
	Date         time.Time       `json:"date"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Items        []VoucherItem   `json:"items"`
	Status       VoucherStatus   `json:"status"`
	PreparedBy   string          `json:"preparedBy"`
	NeedsSync    bool            `json:"needsSync"`
	AuditFields
}
