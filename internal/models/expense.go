package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType determines aggregation strategy for vouchering.
type ExpenseType string

const (
	PettyCash   ExpenseType = "PETTY_CASH"
	CashVoucher ExpenseType = "CASH_VOUCHER"
)

// ExpenseStatus indicates the verification state of an expense entry.
type ExpenseStatus string

const (
	ExpenseVerified ExpenseStatus = "VERIFIED"
)

// Expense mirrors the expenses table.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	Type          ExpenseType     `json:"type"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category,omitempty"`
	EmpCode       string          `json:"empCode,omitempty"`
	EmpName       string          `json:"empName,omitempty"`
	NumPersons    int             `json:"numPersons,omitempty"`
	NumDays       int             `json:"numDays,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	Description   string          `json:"description,omitempty"`
	VendorName    string          `json:"vendorName,omitempty"`
	ConcernPerson string          `json:"concernPerson,omitempty"`
	BillOfMonth   string          `json:"billOfMonth,omitempty"`
	Department    string          `json:"department,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        ExpenseStatus   `json:"status"`
	VoucherID     *string         `json:"voucherID,omitempty"` // nullable link to voucher_records
	AuditFields
}
