package repositories

// RepositoryProvider bundles every repository implementation behind its port,
// built once at startup and handed to the service container.
type RepositoryProvider struct {
	ExpenseRepo ExpenseRepositoryWithTx
	VoucherRepo VoucherRepositoryWithTx
	UserRepo    UserRepositoryFacade
}
