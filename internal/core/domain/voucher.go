package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates the clearing state of a voucher.
// Only petty-cash vouchers move to CLEARED; cash vouchers stay PENDING and are
// treated as recorded.
type VoucherStatus string

const (
	VoucherPending VoucherStatus = "PENDING"
	VoucherCleared VoucherStatus = "CLEARED"
)

// VoucherItem is one line of a voucher document. SrNo is 1-based and assigned
// after grouping and ordering are finalized.
type VoucherItem struct {
	SrNo    int             `json:"srNo"`
	Detail  string          `json:"detail"`
	Amount  decimal.Decimal `json:"amount"`
	Remarks string          `json:"remarks"`
}

// Voucher represents one issued voucher document.
//
// Items and TotalAmount are a point-in-time snapshot of the aggregation of the
// linked expenses. NeedsSync is raised when a linked expense is edited or
// deleted after the voucher was saved, and cleared only by an explicit resync.
type Voucher struct {
	VoucherID    string          `json:"voucherID"`
	SerialNumber string          `json:"serialNumber"` // unique, e.g. VC-20260214-003
	Type         ExpenseType     `json:"type"`
	Date         time.Time       `json:"date"` // business date, not a timestamp
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Items        []VoucherItem   `json:"items"`
	Status       VoucherStatus   `json:"status"`
	PreparedBy   string          `json:"preparedBy"`
	NeedsSync    bool            `json:"needsSync"`
	AuditFields
}
