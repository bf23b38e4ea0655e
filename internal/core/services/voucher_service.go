package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/finbook/voucher_backend/internal/apperrors"
	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook/voucher_backend/internal/core/ports/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/finbook/voucher_backend/internal/middleware"
	"github.com/finbook/voucher_backend/internal/utils/vouchering"
	"github.com/shopspring/decimal"
)

var (
	ErrNoPendingRecords  = errors.New("no unvouchered expenses found for the given date and type")
	ErrNoLinkedExpenses  = errors.New("voucher has no linked expenses to resync from")
	ErrInvalidVoucherDay = errors.New("voucher date is invalid")
)

// voucherService implements voucher generation, persistence and
// reconciliation on top of the expense and voucher repositories.
type voucherService struct {
	voucherRepo portsrepo.VoucherRepositoryWithTx
	expenseRepo portsrepo.ExpenseRepositoryFacade
	userSvc     portssvc.UserSvcFacade

	preparedByPlaceholder string
	syncFreshnessWindow   time.Duration
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryWithTx, expenseRepo portsrepo.ExpenseRepositoryFacade, userSvc portssvc.UserSvcFacade, preparedByPlaceholder string, syncFreshnessWindow time.Duration) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:           voucherRepo,
		expenseRepo:           expenseRepo,
		userSvc:               userSvc,
		preparedByPlaceholder: preparedByPlaceholder,
		syncFreshnessWindow:   syncFreshnessWindow,
	}
}

// Ensure voucherService implements the portssvc.VoucherSvcFacade interface
var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// GeneratePreview aggregates the day's unlinked expenses into a voucher
// preview. The serial is advisory; the unique constraint at save time is the
// final authority.
func (s *voucherService) GeneratePreview(ctx context.Context, date time.Time, expenseType domain.ExpenseType) (*dto.VoucherPreview, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if date.IsZero() {
		return nil, ErrInvalidVoucherDay
	}

	start, end := vouchering.DayBounds(date)

	pending, err := s.expenseRepo.FindUnlinkedByDay(ctx, start, end, expenseType)
	if err != nil {
		logger.Error("failed to load unlinked expenses for preview", "error", err, "date", start.Format("2006-01-02"))
		return nil, err
	}
	if len(pending) == 0 {
		return nil, ErrNoPendingRecords
	}

	items := vouchering.Aggregate(pending, expenseType)
	total := vouchering.ItemsTotal(items)

	existing, err := s.voucherRepo.CountVouchersByDateRange(ctx, start, end)
	if err != nil {
		logger.Error("failed to count existing vouchers for serial allocation", "error", err)
		return nil, err
	}

	expenseIDs := make([]string, 0, len(pending))
	for _, e := range pending {
		expenseIDs = append(expenseIDs, e.ExpenseID)
	}

	preview := &dto.VoucherPreview{
		Serial:     vouchering.SerialNumber(start, existing),
		Items:      items,
		Total:      total,
		ExpenseIDs: expenseIDs,
	}

	logger.Info("generated voucher preview",
		"serial", preview.Serial,
		"type", expenseType,
		"itemCount", len(items),
		"expenseCount", len(expenseIDs),
	)
	return preview, nil
}

// ListPendingDates returns the distinct dates that still have unlinked
// expenses of the given type, newest first.
func (s *voucherService) ListPendingDates(ctx context.Context, expenseType domain.ExpenseType) ([]time.Time, error) {
	return s.expenseRepo.ListPendingDates(ctx, expenseType)
}

// SaveVoucher persists a previewed voucher and links its source expenses in
// one transaction. The stored total is recomputed from the submitted items so
// the snapshot always equals the sum of its lines.
func (s *voucherService) SaveVoucher(ctx context.Context, req dto.SaveVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Type.IsValid() || req.Date.IsZero() || req.Serial == "" {
		return nil, apperrors.NewAppError(400, "voucher payload is incomplete", apperrors.ErrValidation)
	}

	now := time.Now()
	preparedBy := s.userSvc.ResolveDisplayName(ctx, creatorUserID, s.preparedByPlaceholder)

	voucher := domain.Voucher{
		VoucherID:    uuid.NewString(),
		SerialNumber: req.Serial,
		Type:         req.Type,
		Date:         req.Date,
		TotalAmount:  vouchering.ItemsTotal(req.Items),
		Items:        req.Items,
		Status:       domain.VoucherPending,
		PreparedBy:   preparedBy,
		NeedsSync:    false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher, req.ExpenseIDs); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("voucher serial already taken", "serial", req.Serial)
		} else {
			logger.Error("failed to save voucher", "error", err, "serial", req.Serial)
		}
		return nil, err
	}

	logger.Info("saved voucher", "voucherID", voucher.VoucherID, "serial", voucher.SerialNumber, "linkedExpenses", len(req.ExpenseIDs))
	return &voucher, nil
}

// resyncFromLinked recomputes a voucher's items and total from the expenses
// currently linked to it.
func (s *voucherService) resyncFromLinked(ctx context.Context, voucher *domain.Voucher) ([]domain.VoucherItem, decimal.Decimal, error) {
	linked, err := s.expenseRepo.FindByVoucherLink(ctx, []string{voucher.SerialNumber, voucher.VoucherID})
	if err != nil {
		return nil, decimal.Zero, err
	}
	if len(linked) == 0 {
		return nil, decimal.Zero, ErrNoLinkedExpenses
	}

	items := vouchering.Aggregate(linked, voucher.Type)
	return items, vouchering.ItemsTotal(items), nil
}

// ResyncVoucher re-aggregates a saved voucher from its currently linked
// expenses and persists the fresh snapshot.
func (s *voucherService) ResyncVoucher(ctx context.Context, serialNumber string, requestingUserID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.voucherRepo.FindVoucherBySerial(ctx, serialNumber)
	if err != nil {
		return decimal.Zero, err
	}

	items, total, err := s.resyncFromLinked(ctx, voucher)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.voucherRepo.UpdateVoucherItems(ctx, serialNumber, items, total, requestingUserID, time.Now()); err != nil {
		logger.Error("failed to persist resynced voucher", "error", err, "serial", serialNumber)
		return decimal.Zero, err
	}

	logger.Info("resynced voucher", "serial", serialNumber, "newTotal", total.String(), "itemCount", len(items))
	return total, nil
}

// ClearVoucher marks a voucher as cleared. Only finance users may clear.
func (s *voucherService) ClearVoucher(ctx context.Context, voucherID string, actorRole domain.UserRole, requestingUserID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actorRole != domain.RoleFinance {
		return nil, apperrors.NewAppError(403, "only finance users may clear vouchers", apperrors.ErrForbidden)
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, domain.VoucherCleared, requestingUserID, now); err != nil {
		logger.Error("failed to clear voucher", "error", err, "voucherID", voucherID)
		return nil, err
	}

	voucher.Status = domain.VoucherCleared
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = requestingUserID

	logger.Info("cleared voucher", "voucherID", voucherID, "serial", voucher.SerialNumber)
	return voucher, nil
}

// ListVouchers retrieves all vouchers. Vouchers created within the freshness
// window that still have linked expenses are returned with a recomputed
// snapshot for display; persisted rows are not modified here.
func (s *voucherService) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-s.syncFreshnessWindow)
	for i := range vouchers {
		if vouchers[i].CreatedAt.Before(cutoff) {
			continue
		}
		items, total, err := s.resyncFromLinked(ctx, &vouchers[i])
		if err != nil {
			if errors.Is(err, ErrNoLinkedExpenses) {
				continue
			}
			logger.Warn("failed to refresh voucher for display", "error", err, "serial", vouchers[i].SerialNumber)
			continue
		}
		vouchers[i].Items = items
		vouchers[i].TotalAmount = total
	}

	return vouchers, nil
}

// BackfillPreparedBy replaces the placeholder preparer name with the
// requesting user's display name on all vouchers still carrying it.
func (s *voucherService) BackfillPreparedBy(ctx context.Context, requestingUserID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.GetUserByID(ctx, requestingUserID)
	if err != nil {
		return 0, err
	}

	count, err := s.voucherRepo.BackfillPreparedBy(ctx, s.preparedByPlaceholder, user.Name, requestingUserID, time.Now())
	if err != nil {
		logger.Error("failed to backfill prepared_by", "error", err)
		return 0, err
	}

	logger.Info("backfilled prepared_by", "count", count, "name", user.Name)
	return count, nil
}
