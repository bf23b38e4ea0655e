package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook/voucher_backend/internal/core/ports/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/finbook/voucher_backend/internal/middleware"
	"github.com/finbook/voucher_backend/internal/utils/vouchering"
)

var (
	ErrNoValidExpenses    = errors.New("no valid expense rows in submission")
	ErrInvalidTimeframe   = errors.New("timeframe must be one of: all, 1h, 1m, 2m, 3m")
	ErrInvalidExpenseType = errors.New("unknown expense type")
)

// expenseService implements expense data entry, listing and mutation. Edits
// and deletions of vouchered expenses flag the owning voucher for resync.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryWithTx
	voucherRepo portsrepo.VoucherRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryWithTx, voucherRepo portsrepo.VoucherRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		voucherRepo: voucherRepo,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// isValidRow reports whether a submitted row carries the fields its type
// requires. Invalid rows are skipped, not rejected wholesale, because bulk
// submissions come from pasted sheets with trailing garbage rows.
func isValidRow(in dto.ExpenseInput) bool {
	if in.Amount.IsZero() || in.Amount.IsNegative() {
		return false
	}
	switch in.Type {
	case domain.PettyCash:
		return strings.TrimSpace(in.Category) != ""
	case domain.CashVoucher:
		return strings.TrimSpace(in.Description) != ""
	default:
		return false
	}
}

// TimeframeBounds translates a timeframe keyword into an optional lower time
// bound. "all" and "" mean unbounded.
func TimeframeBounds(timeframe string, now time.Time) (*time.Time, error) {
	var from time.Time
	switch timeframe {
	case "", "all":
		return nil, nil
	case "1h":
		from = now.Add(-time.Hour)
	case "1m":
		from = now.AddDate(0, -1, 0)
	case "2m":
		from = now.AddDate(0, -2, 0)
	case "3m":
		from = now.AddDate(0, -3, 0)
	default:
		return nil, ErrInvalidTimeframe
	}
	return &from, nil
}

// GetExpenseByID retrieves a single expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses retrieves expenses matching the given filters.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error) {
	from, err := TimeframeBounds(params.Timeframe, time.Now())
	if err != nil {
		return nil, err
	}

	filter := portsrepo.ExpenseFilter{
		From:       from,
		Department: strings.TrimSpace(params.Department),
		Category:   strings.TrimSpace(params.Category),
	}
	if params.Type != "" {
		t := domain.ExpenseType(params.Type)
		if !t.IsValid() {
			return nil, ErrInvalidExpenseType
		}
		filter.Type = &t
	}

	return s.expenseRepo.ListExpenses(ctx, filter)
}

// CreateExpenses bulk-saves valid rows from a data-entry submission and
// returns how many were accepted.
func (s *expenseService) CreateExpenses(ctx context.Context, req dto.CreateExpensesRequest, creatorUserID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	expenses := make([]domain.Expense, 0, len(req.Expenses))
	for _, in := range req.Expenses {
		if !isValidRow(in) {
			continue
		}
		expenses = append(expenses, domain.Expense{
			ExpenseID:     uuid.NewString(),
			Type:          in.Type,
			Date:          in.Date,
			Category:      vouchering.DisplayCategory(in.Category),
			Department:    strings.TrimSpace(in.Department),
			EmpCode:       strings.TrimSpace(in.EmpCode),
			EmpName:       strings.TrimSpace(in.EmpName),
			NumPersons:    in.NumPersons,
			NumDays:       in.NumDays,
			Description:   strings.TrimSpace(in.Description),
			VendorName:    strings.TrimSpace(in.VendorName),
			ConcernPerson: strings.TrimSpace(in.ConcernPerson),
			BillOfMonth:   strings.TrimSpace(in.BillOfMonth),
			Amount:        in.Amount,
			Remarks:       strings.TrimSpace(in.Remarks),
			Status:        domain.ExpenseVerified,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
	}

	if len(expenses) == 0 {
		return 0, ErrNoValidExpenses
	}

	saved, err := s.expenseRepo.SaveExpenses(ctx, expenses)
	if err != nil {
		logger.Error("failed to save expenses", "error", err, "submitted", len(req.Expenses))
		return 0, err
	}

	logger.Info("saved expenses", "saved", saved, "skipped", len(req.Expenses)-len(expenses))
	return saved, nil
}

// flagOwningVoucher marks the voucher linked to the expense as needing
// resync. A stale link that matches no voucher is not an error.
func (s *expenseService) flagOwningVoucher(ctx context.Context, expense *domain.Expense, requestingUserID string) {
	if expense.VoucherID == nil || *expense.VoucherID == "" {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	flagged, err := s.voucherRepo.MarkNeedsSync(ctx, *expense.VoucherID, requestingUserID, time.Now())
	if err != nil {
		logger.Error("failed to flag voucher for resync", "error", err, "voucherLink", *expense.VoucherID)
		return
	}
	if flagged == 0 {
		logger.Warn("expense carries a voucher link that matches no voucher", "voucherLink", *expense.VoucherID, "expenseID", expense.ExpenseID)
	}
}

// UpdateExpense applies a partial update. If the expense is linked to a
// voucher the owning voucher is flagged for reconciliation.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != nil {
		expense.Category = vouchering.DisplayCategory(*req.Category)
	}
	if req.Department != nil {
		expense.Department = strings.TrimSpace(*req.Department)
	}
	if req.EmpCode != nil {
		expense.EmpCode = *req.EmpCode
	}
	if req.EmpName != nil {
		expense.EmpName = *req.EmpName
	}
	if req.NumPersons != nil {
		expense.NumPersons = *req.NumPersons
	}
	if req.NumDays != nil {
		expense.NumDays = *req.NumDays
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.VendorName != nil {
		expense.VendorName = *req.VendorName
	}
	if req.ConcernPerson != nil {
		expense.ConcernPerson = *req.ConcernPerson
	}
	if req.BillOfMonth != nil {
		expense.BillOfMonth = *req.BillOfMonth
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Remarks != nil {
		expense.Remarks = *req.Remarks
	}
	if req.VoucherID != nil {
		expense.VoucherID = req.VoucherID
	}

	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, err
	}

	s.flagOwningVoucher(ctx, expense, requestingUserID)
	return expense, nil
}

// DeleteExpense removes an expense. If it was linked to a voucher the owning
// voucher is flagged for reconciliation.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}

	s.flagOwningVoucher(ctx, expense, requestingUserID)
	return nil
}
