package dto

import (
	"time"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseInput is one row of a bulk expense submission. Rows come from single
// entry or pasted sheets, so per-type required fields are validated by the
// service rather than rejected wholesale here.
type ExpenseInput struct {
	Type          domain.ExpenseType `json:"type" binding:"required,expensetype"`
	Date          time.Time          `json:"date" binding:"required"`
	Category      string             `json:"category"`
	Department    string             `json:"department"`
	EmpCode       string             `json:"empCode"`
	EmpName       string             `json:"empName"`
	NumPersons    int                `json:"numPersons"`
	NumDays       int                `json:"numDays"`
	Description   string             `json:"description"`
	VendorName    string             `json:"vendorName"`
	ConcernPerson string             `json:"concernPerson"`
	BillOfMonth   string             `json:"billOfMonth"`
	Amount        decimal.Decimal    `json:"amount"`
	Remarks       string             `json:"remarks"`
}

// CreateExpensesRequest is the bulk expense-entry payload.
type CreateExpensesRequest struct {
	Expenses []ExpenseInput `json:"expenses" binding:"required,min=1,dive"`
}

// CreateExpensesResponse reports how many rows were accepted.
type CreateExpensesResponse struct {
	SavedCount int `json:"savedCount"`
}

// UpdateExpenseRequest carries a partial update; nil fields are left as-is.
type UpdateExpenseRequest struct {
	Date          *time.Time       `json:"date"`
	Category      *string          `json:"category"`
	Department    *string          `json:"department"`
	EmpCode       *string          `json:"empCode"`
	EmpName       *string          `json:"empName"`
	NumPersons    *int             `json:"numPersons"`
	NumDays       *int             `json:"numDays"`
	Description   *string          `json:"description"`
	VendorName    *string          `json:"vendorName"`
	ConcernPerson *string          `json:"concernPerson"`
	BillOfMonth   *string          `json:"billOfMonth"`
	Amount        *decimal.Decimal `json:"amount"`
	Remarks       *string          `json:"remarks"`
	VoucherID     *string          `json:"voucherID"`
}

// ListExpensesParams are the query filters for listing expenses.
type ListExpensesParams struct {
	Timeframe  string `form:"timeframe"` // all, 1h, 1m, 2m, 3m
	Department string `form:"department"`
	Category   string `form:"category"`
	Type       string `form:"type"`
}

// ListExpensesResponse wraps the filtered expense list.
type ListExpensesResponse struct {
	Expenses []domain.Expense `json:"expenses"`
}
