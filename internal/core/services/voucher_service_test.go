package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbook/voucher_backend/internal/apperrors"
	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook/voucher_backend/internal/core/ports/services"
	"github.com/finbook/voucher_backend/internal/core/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

// Ensure MockVoucherRepository implements portsrepo.VoucherRepositoryWithTx
var _ portsrepo.VoucherRepositoryWithTx = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, sourceExpenseIDs []string) error {
	args := m.Called(ctx, voucher, sourceExpenseIDs)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherBySerial(ctx context.Context, serialNumber string) (*domain.Voucher, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) CountVouchersByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucherItems(ctx context.Context, serialNumber string, items []domain.VoucherItem, total decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, serialNumber, items, total, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVoucherRepository) MarkNeedsSync(ctx context.Context, linkRef string, updatedBy string, updatedAt time.Time) (int, error) {
	args := m.Called(ctx, linkRef, updatedBy, updatedAt)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, voucherID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVoucherRepository) BackfillPreparedBy(ctx context.Context, placeholder, name string, updatedBy string, updatedAt time.Time) (int, error) {
	args := m.Called(ctx, placeholder, name, updatedBy, updatedAt)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockVoucherRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockVoucherRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

// Ensure MockExpenseRepository implements portsrepo.ExpenseRepositoryWithTx
var _ portsrepo.ExpenseRepositoryWithTx = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindUnlinkedByDay(ctx context.Context, start, end time.Time, expenseType domain.ExpenseType) ([]domain.Expense, error) {
	args := m.Called(ctx, start, end, expenseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByVoucherLink(ctx context.Context, linkValues []string) ([]domain.Expense, error) {
	args := m.Called(ctx, linkValues)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListPendingDates(ctx context.Context, expenseType domain.ExpenseType) ([]time.Time, error) {
	args := m.Called(ctx, expenseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockExpenseRepository) SummarizeExpenses(ctx context.Context, from, to *time.Time) ([]portsrepo.ExpenseSummaryRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.ExpenseSummaryRow), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) (int, error) {
	args := m.Called(ctx, expenses)
	return args.Int(0), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) LinkExpensesInTx(ctx context.Context, tx pgx.Tx, expenseIDs []string, link string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, expenseIDs, link, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockExpenseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockExpenseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockExpenseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

// Ensure MockUserService implements portssvc.UserSvcFacade
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ResolveDisplayName(ctx context.Context, userID string, fallback string) string {
	args := m.Called(ctx, userID, fallback)
	return args.String(0)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockExpenseRepo *MockExpenseRepository
	mockUserSvc     *MockUserService
	service         portssvc.VoucherSvcFacade
	ctx             context.Context
	userID          string
	day             time.Time
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockUserSvc = new(MockUserService)
	suite.service = services.NewVoucherService(
		suite.mockVoucherRepo,
		suite.mockExpenseRepo,
		suite.mockUserSvc,
		"Finance Officer",
		36*time.Hour,
	)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
	suite.day = time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
}

func (suite *VoucherServiceTestSuite) dayStart() time.Time {
	return time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
}

func pettyCashExpense(id, category, remarks string, amount int64) domain.Expense {
	return domain.Expense{
		ExpenseID: id,
		Type:      domain.PettyCash,
		Category:  category,
		Remarks:   remarks,
		Amount:    decimal.NewFromInt(amount),
	}
}

// --- GeneratePreview ---

func (suite *VoucherServiceTestSuite) TestGeneratePreview_GroupsAndAllocatesSerial() {
	start := suite.dayStart()
	end := start.Add(24 * time.Hour)
	pending := []domain.Expense{
		pettyCashExpense("e1", "Travel", "taxi", 100),
		pettyCashExpense("e2", " travel ", "taxi", 50),
		pettyCashExpense("e3", "Food", "lunch", 25),
	}

	suite.mockExpenseRepo.On("FindUnlinkedByDay", suite.ctx, start, end, domain.PettyCash).Return(pending, nil).Once()
	suite.mockVoucherRepo.On("CountVouchersByDateRange", suite.ctx, start, end).Return(2, nil).Once()

	preview, err := suite.service.GeneratePreview(suite.ctx, suite.day, domain.PettyCash)

	suite.Require().NoError(err)
	suite.Equal("VC-20260214-003", preview.Serial)
	suite.Require().Len(preview.Items, 2)
	suite.Equal("Travel", preview.Items[0].Detail)
	suite.True(decimal.NewFromInt(150).Equal(preview.Items[0].Amount))
	suite.Equal("Food", preview.Items[1].Detail)
	suite.True(decimal.NewFromInt(175).Equal(preview.Total))
	suite.Equal([]string{"e1", "e2", "e3"}, preview.ExpenseIDs)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestGeneratePreview_NoPendingRecords() {
	start := suite.dayStart()
	end := start.Add(24 * time.Hour)
	suite.mockExpenseRepo.On("FindUnlinkedByDay", suite.ctx, start, end, domain.CashVoucher).Return([]domain.Expense{}, nil).Once()

	preview, err := suite.service.GeneratePreview(suite.ctx, suite.day, domain.CashVoucher)

	suite.Nil(preview)
	suite.ErrorIs(err, services.ErrNoPendingRecords)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "CountVouchersByDateRange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestGeneratePreview_IsRepeatable() {
	start := suite.dayStart()
	end := start.Add(24 * time.Hour)
	pending := []domain.Expense{
		pettyCashExpense("e1", "Travel", "", 100),
		pettyCashExpense("e2", "Food", "", 50),
	}

	suite.mockExpenseRepo.On("FindUnlinkedByDay", suite.ctx, start, end, domain.PettyCash).Return(pending, nil).Twice()
	suite.mockVoucherRepo.On("CountVouchersByDateRange", suite.ctx, start, end).Return(0, nil).Twice()

	first, err := suite.service.GeneratePreview(suite.ctx, suite.day, domain.PettyCash)
	suite.Require().NoError(err)
	second, err := suite.service.GeneratePreview(suite.ctx, suite.day, domain.PettyCash)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *VoucherServiceTestSuite) TestGeneratePreview_ZeroDate() {
	_, err := suite.service.GeneratePreview(suite.ctx, time.Time{}, domain.PettyCash)
	suite.ErrorIs(err, services.ErrInvalidVoucherDay)
}

// --- SaveVoucher ---

func (suite *VoucherServiceTestSuite) TestSaveVoucher_Success() {
	items := []domain.VoucherItem{
		{SrNo: 1, Detail: "Travel", Amount: decimal.NewFromInt(150)},
		{SrNo: 2, Detail: "Food", Amount: decimal.NewFromInt(25)},
	}
	req := dto.SaveVoucherRequest{
		Serial:     "VC-20260214-001",
		Date:       suite.day,
		Type:       domain.PettyCash,
		Items:      items,
		ExpenseIDs: []string{"e1", "e2", "e3"},
	}

	suite.mockUserSvc.On("ResolveDisplayName", suite.ctx, suite.userID, "Finance Officer").Return("A. Kumar").Once()
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.SerialNumber == "VC-20260214-001" &&
			v.Status == domain.VoucherPending &&
			v.PreparedBy == "A. Kumar" &&
			!v.NeedsSync &&
			v.TotalAmount.Equal(decimal.NewFromInt(175))
	}), []string{"e1", "e2", "e3"}).Return(nil).Once()

	voucher, err := suite.service.SaveVoucher(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(voucher.VoucherID)
	suite.Equal(domain.VoucherPending, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestSaveVoucher_DuplicateSerial() {
	req := dto.SaveVoucherRequest{
		Serial: "VC-20260214-001",
		Date:   suite.day,
		Type:   domain.PettyCash,
		Items:  []domain.VoucherItem{{SrNo: 1, Detail: "Travel", Amount: decimal.NewFromInt(100)}},
	}

	dupErr := apperrors.NewAppError(409, "voucher serial VC-20260214-001 already exists", apperrors.ErrDuplicate)
	suite.mockUserSvc.On("ResolveDisplayName", suite.ctx, suite.userID, "Finance Officer").Return("Finance Officer").Once()
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx, mock.Anything, mock.Anything).Return(dupErr).Once()

	voucher, err := suite.service.SaveVoucher(suite.ctx, req, suite.userID)

	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *VoucherServiceTestSuite) TestSaveVoucher_EmptyExpenseIDs() {
	req := dto.SaveVoucherRequest{
		Serial: "VC-20260214-002",
		Date:   suite.day,
		Type:   domain.CashVoucher,
		Items:  []domain.VoucherItem{{SrNo: 1, Detail: "Courier (SpeedPost)", Amount: decimal.NewFromInt(340)}},
	}

	suite.mockUserSvc.On("ResolveDisplayName", suite.ctx, suite.userID, "Finance Officer").Return("Finance Officer").Once()
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx, mock.Anything, []string(nil)).Return(nil).Once()

	voucher, err := suite.service.SaveVoucher(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("VC-20260214-002", voucher.SerialNumber)
}

// --- ResyncVoucher ---

func (suite *VoucherServiceTestSuite) TestResyncVoucher_ReflectsDeletion() {
	serial := "VC-20260214-001"
	voucher := &domain.Voucher{
		VoucherID:    "v1",
		SerialNumber: serial,
		Type:         domain.PettyCash,
		TotalAmount:  decimal.NewFromInt(175),
	}
	// One of the two originally linked expenses has since been deleted.
	remaining := []domain.Expense{pettyCashExpense("e1", "Travel", "", 100)}

	suite.mockVoucherRepo.On("FindVoucherBySerial", suite.ctx, serial).Return(voucher, nil).Once()
	suite.mockExpenseRepo.On("FindByVoucherLink", suite.ctx, []string{serial, "v1"}).Return(remaining, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherItems", suite.ctx, serial, mock.Anything, mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(decimal.NewFromInt(100))
	}), suite.userID, mock.Anything).Return(nil).Once()

	newTotal, err := suite.service.ResyncVoucher(suite.ctx, serial, suite.userID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(100).Equal(newTotal))
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestResyncVoucher_VoucherNotFound() {
	suite.mockVoucherRepo.On("FindVoucherBySerial", suite.ctx, "VC-19990101-001").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResyncVoucher(suite.ctx, "VC-19990101-001", suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VoucherServiceTestSuite) TestResyncVoucher_NoLinkedExpenses() {
	serial := "VC-20260214-001"
	voucher := &domain.Voucher{VoucherID: "v1", SerialNumber: serial, Type: domain.PettyCash}

	suite.mockVoucherRepo.On("FindVoucherBySerial", suite.ctx, serial).Return(voucher, nil).Once()
	suite.mockExpenseRepo.On("FindByVoucherLink", suite.ctx, []string{serial, "v1"}).Return([]domain.Expense{}, nil).Once()

	_, err := suite.service.ResyncVoucher(suite.ctx, serial, suite.userID)

	suite.ErrorIs(err, services.ErrNoLinkedExpenses)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucherItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ClearVoucher ---

func (suite *VoucherServiceTestSuite) TestClearVoucher_FinanceOnly() {
	_, err := suite.service.ClearVoucher(suite.ctx, "v1", domain.RoleAdmin, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucherStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestClearVoucher_Success() {
	voucher := &domain.Voucher{VoucherID: "v1", SerialNumber: "VC-20260214-001", Status: domain.VoucherPending}

	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, "v1").Return(voucher, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", suite.ctx, "v1", domain.VoucherCleared, suite.userID, mock.Anything).Return(nil).Once()

	cleared, err := suite.service.ClearVoucher(suite.ctx, "v1", domain.RoleFinance, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherCleared, cleared.Status)
}

func (suite *VoucherServiceTestSuite) TestClearVoucher_AlreadyCleared() {
	voucher := &domain.Voucher{VoucherID: "v1", Status: domain.VoucherCleared}

	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, "v1").Return(voucher, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", suite.ctx, "v1", domain.VoucherCleared, suite.userID, mock.Anything).Return(nil).Once()

	cleared, err := suite.service.ClearVoucher(suite.ctx, "v1", domain.RoleFinance, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherCleared, cleared.Status)
}

// --- ListVouchers ---

func (suite *VoucherServiceTestSuite) TestListVouchers_RefreshesFreshVouchers() {
	fresh := domain.Voucher{
		VoucherID:    "v1",
		SerialNumber: "VC-20260214-001",
		Type:         domain.PettyCash,
		TotalAmount:  decimal.NewFromInt(175),
	}
	fresh.CreatedAt = time.Now().Add(-2 * time.Hour)

	stale := domain.Voucher{
		VoucherID:    "v0",
		SerialNumber: "VC-20250101-001",
		Type:         domain.PettyCash,
		TotalAmount:  decimal.NewFromInt(999),
	}
	stale.CreatedAt = time.Now().Add(-72 * time.Hour)

	linked := []domain.Expense{pettyCashExpense("e1", "Travel", "", 120)}

	suite.mockVoucherRepo.On("ListVouchers", suite.ctx).Return([]domain.Voucher{fresh, stale}, nil).Once()
	suite.mockExpenseRepo.On("FindByVoucherLink", suite.ctx, []string{"VC-20260214-001", "v1"}).Return(linked, nil).Once()

	vouchers, err := suite.service.ListVouchers(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(vouchers, 2)
	suite.True(decimal.NewFromInt(120).Equal(vouchers[0].TotalAmount))
	suite.True(decimal.NewFromInt(999).Equal(vouchers[1].TotalAmount))
	suite.mockExpenseRepo.AssertNumberOfCalls(suite.T(), "FindByVoucherLink", 1)
}

func (suite *VoucherServiceTestSuite) TestListVouchers_FreshWithoutLinksKeepsSnapshot() {
	fresh := domain.Voucher{
		VoucherID:    "v1",
		SerialNumber: "VC-20260214-001",
		Type:         domain.CashVoucher,
		TotalAmount:  decimal.NewFromInt(340),
	}
	fresh.CreatedAt = time.Now().Add(-time.Hour)

	suite.mockVoucherRepo.On("ListVouchers", suite.ctx).Return([]domain.Voucher{fresh}, nil).Once()
	suite.mockExpenseRepo.On("FindByVoucherLink", suite.ctx, []string{"VC-20260214-001", "v1"}).Return([]domain.Expense{}, nil).Once()

	vouchers, err := suite.service.ListVouchers(suite.ctx)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(340).Equal(vouchers[0].TotalAmount))
}

// --- BackfillPreparedBy ---

func (suite *VoucherServiceTestSuite) TestBackfillPreparedBy() {
	user := &domain.User{UserID: suite.userID, Name: "A. Kumar"}

	suite.mockUserSvc.On("GetUserByID", suite.ctx, suite.userID).Return(user, nil).Once()
	suite.mockVoucherRepo.On("BackfillPreparedBy", suite.ctx, "Finance Officer", "A. Kumar", suite.userID, mock.Anything).Return(7, nil).Once()

	count, err := suite.service.BackfillPreparedBy(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(7, count)
}

// --- ListPendingDates ---

func (suite *VoucherServiceTestSuite) TestListPendingDates() {
	dates := []time.Time{
		time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
	}
	suite.mockExpenseRepo.On("ListPendingDates", suite.ctx, domain.PettyCash).Return(dates, nil).Once()

	got, err := suite.service.ListPendingDates(suite.ctx, domain.PettyCash)

	suite.Require().NoError(err)
	suite.Equal(dates, got)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

func TestNewVoucherServiceReturnsFacade(t *testing.T) {
	svc := services.NewVoucherService(new(MockVoucherRepository), new(MockExpenseRepository), new(MockUserService), "Finance Officer", 36*time.Hour)
	assert.NotNil(t, svc)
}
