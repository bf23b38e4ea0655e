package pgsql

import (
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires up all pgsql repositories over a shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	expenseRepo := newPgxExpenseRepository(dbPool)
	return &portsrepo.RepositoryProvider{
		ExpenseRepo: expenseRepo,
		VoucherRepo: newPgxVoucherRepository(dbPool, expenseRepo),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
