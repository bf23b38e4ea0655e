package services

import (
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook/voucher_backend/internal/core/ports/services"
	"github.com/finbook/voucher_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first since voucher preparation resolves display names
	container.User = NewUserService(repos.UserRepo)

	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.VoucherRepo)
	container.Voucher = NewVoucherService(
		repos.VoucherRepo,
		repos.ExpenseRepo,
		container.User,
		cfg.PreparedByPlaceholder,
		cfg.SyncFreshnessWindow,
	)
	container.Reporting = NewReportingService(repos.ExpenseRepo, cfg.OpeningFloat)

	return container
}
