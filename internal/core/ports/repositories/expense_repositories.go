package repositories

import (
	"context"
	"time"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ExpenseFilter narrows ListExpenses results. Nil/empty fields are ignored.
type ExpenseFilter struct {
	From       *time.Time
	To         *time.Time
	Department string
	Category   string
	Type       *domain.ExpenseType
}

// ExpenseSummaryRow is one aggregate bucket of the expense summary.
type ExpenseSummaryRow struct {
	Type       domain.ExpenseType
	Department string
	Category   string
	Total      decimal.Decimal
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter, newest first.
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)

	// FindUnlinkedByDay retrieves expenses of the given type within [start, end)
	// that are not yet linked to any voucher.
	FindUnlinkedByDay(ctx context.Context, start, end time.Time, expenseType domain.ExpenseType) ([]domain.Expense, error)

	// FindByVoucherLink retrieves expenses whose voucher link matches any of the
	// given values. Callers pass both the serial number and the internal voucher
	// ID because historical links carry either form.
	FindByVoucherLink(ctx context.Context, linkValues []string) ([]domain.Expense, error)

	// ListPendingDates returns the distinct calendar dates, newest first, that
	// still have at least one unlinked expense of the given type.
	ListPendingDates(ctx context.Context, expenseType domain.ExpenseType) ([]time.Time, error)

	// SummarizeExpenses aggregates expense totals by type, department and
	// category within the optional time window.
	SummarizeExpenses(ctx context.Context, from, to *time.Time) ([]ExpenseSummaryRow, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpenses bulk-inserts the given expenses and returns the saved count.
	SaveExpenses(ctx context.Context, expenses []domain.Expense) (int, error)

	// UpdateExpense persists changes to a single expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes a single expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// LinkExpensesInTx sets the voucher link on the given expenses inside an
	// existing transaction, skipping rows that were linked concurrently.
	LinkExpensesInTx(ctx context.Context, tx pgx.Tx, expenseIDs []string, link string, updatedBy string, updatedAt time.Time) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// ExpenseRepositoryWithTx extends ExpenseRepositoryFacade with transaction capabilities
type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	TransactionManager
}
