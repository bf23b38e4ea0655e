package repositories

import (
	"context"
	"time"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher by its internal identifier.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// FindVoucherBySerial retrieves a voucher by its serial number.
	FindVoucherBySerial(ctx context.Context, serialNumber string) (*domain.Voucher, error)

	// ListVouchers retrieves all vouchers, newest business date first.
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)

	// CountVouchersByDateRange counts vouchers whose business date falls within
	// [start, end). Used by the advisory serial allocator.
	CountVouchersByDateRange(ctx context.Context, start, end time.Time) (int, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher atomically inserts the voucher and stamps its serial number
	// onto the source expenses. A serial uniqueness violation rolls the whole
	// transaction back and surfaces as apperrors.ErrDuplicate.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, sourceExpenseIDs []string) error

	// UpdateVoucherItems overwrites a voucher's line items and total and clears
	// its needs-sync flag. This is the only post-creation item mutation path.
	UpdateVoucherItems(ctx context.Context, serialNumber string, items []domain.VoucherItem, total decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// MarkNeedsSync flags the voucher whose serial number or internal ID equals
	// linkRef. Returns the number of vouchers flagged.
	MarkNeedsSync(ctx context.Context, linkRef string, updatedBy string, updatedAt time.Time) (int, error)

	// UpdateVoucherStatus sets the clearing status of a voucher.
	UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error

	// BackfillPreparedBy replaces the placeholder preparer name with the given
	// display name on all matching vouchers. Returns the number updated.
	BackfillPreparedBy(ctx context.Context, placeholder, name string, updatedBy string, updatedAt time.Time) (int, error)
}

// VoucherRepositoryFacade combines all voucher repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transaction capabilities
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TransactionManager
}
