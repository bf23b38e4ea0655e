package services

import (
	"context"
	"time"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// VoucherGeneratorSvc defines the preview half of voucher generation.
type VoucherGeneratorSvc interface {
	// GeneratePreview aggregates the day's unlinked expenses of the given type
	// into a voucher preview with an advisory serial. Nothing is persisted.
	GeneratePreview(ctx context.Context, date time.Time, expenseType domain.ExpenseType) (*dto.VoucherPreview, error)

	// ListPendingDates returns the distinct dates that still have unlinked
	// expenses of the given type, newest first.
	ListPendingDates(ctx context.Context, expenseType domain.ExpenseType) ([]time.Time, error)
}

// VoucherWriterSvc defines the persisting voucher operations.
type VoucherWriterSvc interface {
	// SaveVoucher atomically creates the voucher and links its source expenses.
	SaveVoucher(ctx context.Context, req dto.SaveVoucherRequest, creatorUserID string) (*domain.Voucher, error)

	// ResyncVoucher re-aggregates a saved voucher from its currently linked
	// expenses, persists the fresh items and total, and clears needs-sync.
	ResyncVoucher(ctx context.Context, serialNumber string, requestingUserID string) (decimal.Decimal, error)

	// ClearVoucher marks a voucher as cleared. Finance role only.
	ClearVoucher(ctx context.Context, voucherID string, actorRole domain.UserRole, requestingUserID string) (*domain.Voucher, error)

	// BackfillPreparedBy replaces the placeholder preparer name with the
	// requesting user's display name on all vouchers still carrying it.
	BackfillPreparedBy(ctx context.Context, requestingUserID string) (int, error)
}

// VoucherReaderSvc defines read operations for voucher data.
type VoucherReaderSvc interface {
	// ListVouchers retrieves all vouchers. Recently created vouchers that still
	// have linked expenses are returned with freshly recomputed items and
	// totals for display; the persisted snapshot is not touched.
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherGeneratorSvc
	VoucherWriterSvc
	VoucherReaderSvc
}
