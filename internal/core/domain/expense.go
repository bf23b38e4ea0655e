package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType determines which fields of an expense are meaningful and which
// aggregation strategy applies when the expense is vouchered.
type ExpenseType string

const (
	PettyCash   ExpenseType = "PETTY_CASH"
	CashVoucher ExpenseType = "CASH_VOUCHER"
)

// IsValid reports whether t is a known expense type.
func (t ExpenseType) IsValid() bool {
	return t == PettyCash || t == CashVoucher
}

// ExpenseStatus indicates the verification state of an expense entry.
type ExpenseStatus string

const (
	ExpenseVerified ExpenseStatus = "VERIFIED"
)

// Expense represents one atomic spend entry.
//
// The petty-cash and cash-voucher field groups are mutually exclusive in
// practice; Type decides which group is populated. VoucherID is nil until the
// expense has been incorporated into a saved voucher. New links carry the
// voucher's serial number, but historical rows may carry the voucher's
// internal ID, so lookups must accept both.
type Expense struct {
	ExpenseID string      `json:"expenseID"`
	Type      ExpenseType `json:"type"`
	Date      time.Time   `json:"date"`

	// Petty-cash fields
	Category   string `json:"category,omitempty"`
	EmpCode    string `json:"empCode,omitempty"`
	EmpName    string `json:"empName,omitempty"`
	NumPersons int    `json:"numPersons,omitempty"`
	NumDays    int    `json:"numDays,omitempty"`
	Remarks    string `json:"remarks,omitempty"`

	// Cash-voucher fields
	Description   string `json:"description,omitempty"`
	VendorName    string `json:"vendorName,omitempty"`
	ConcernPerson string `json:"concernPerson,omitempty"`
	BillOfMonth   string `json:"billOfMonth,omitempty"`

	// Shared fields
	Department string          `json:"department,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     ExpenseStatus   `json:"status"`
	VoucherID  *string         `json:"voucherID,omitempty"` // serial number or legacy internal ID
	AuditFields
}

// IsLinked reports whether the expense already belongs to a saved voucher.
func (e Expense) IsLinked() bool {
	return e.VoucherID != nil && *e.VoucherID != ""
}
