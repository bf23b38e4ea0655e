package services

import (
	"context"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/finbook/voucher_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a single expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the given filters.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpenses bulk-saves valid rows from a data-entry submission and
	// returns how many were accepted.
	CreateExpenses(ctx context.Context, req dto.CreateExpensesRequest, creatorUserID string) (int, error)

	// UpdateExpense applies a partial update; if the expense is linked to a
	// voucher the owning voucher is flagged for reconciliation.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense; if it was linked to a voucher the
	// owning voucher is flagged for reconciliation.
	DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
