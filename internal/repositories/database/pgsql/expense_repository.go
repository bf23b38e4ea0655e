package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/finbook/voucher_backend/internal/apperrors"
	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	"github.com/finbook/voucher_backend/internal/models"
	"github.com/finbook/voucher_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `
	expense_id, type, date, category, emp_code, emp_name, num_persons, num_days,
	remarks, description, vendor_name, concern_person, bill_of_month, department,
	amount, status, voucher_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryWithTx {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryWithTx
var _ portsrepo.ExpenseRepositoryWithTx = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	var voucherID sql.NullString
	err := row.Scan(
		&m.ExpenseID,
		&m.Type,
		&m.Date,
		&m.Category,
		&m.EmpCode,
		&m.EmpName,
		&m.NumPersons,
		&m.NumDays,
		&m.Remarks,
		&m.Description,
		&m.VendorName,
		&m.ConcernPerson,
		&m.BillOfMonth,
		&m.Department,
		&m.Amount,
		&m.Status,
		&voucherID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if voucherID.Valid {
		m.VoucherID = &voucherID.String
	}
	return &m, nil
}

// FindExpenseByID retrieves a single expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense by ID "+expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(*m)
	return &domainExpense, nil
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, args ...interface{}) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		m, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row", scanErr)
		}
		expenses = append(expenses, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense rows", err)
	}

	return mapping.ToDomainExpenseSlice(expenses), nil
}

// ListExpenses retrieves expenses matching the filter, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	query := `SELECT` + expenseColumns + ` FROM expenses WHERE 1=1`
	args := []interface{}{}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		query += ` AND department = $` + strconv.Itoa(len(args))
	}
	if filter.Category != "" {
		// Match on the normalized key so "Travel" and " travel " filter alike.
		args = append(args, filter.Category)
		query += ` AND lower(trim(category)) = lower(trim($` + strconv.Itoa(len(args)) + `))`
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += ` AND type = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY date DESC, created_at DESC;`

	return r.queryExpenses(ctx, query, args...)
}

// FindUnlinkedByDay retrieves expenses of the given type within [start, end)
// that are not yet linked to any voucher, in insertion order.
func (r *PgxExpenseRepository) FindUnlinkedByDay(ctx context.Context, start, end time.Time, expenseType domain.ExpenseType) ([]domain.Expense, error) {
	query := `SELECT` + expenseColumns + `
		FROM expenses
		WHERE date >= $1 AND date < $2 AND type = $3 AND voucher_id IS NULL
		ORDER BY created_at, expense_id;`

	return r.queryExpenses(ctx, query, start, end, expenseType)
}

// FindByVoucherLink retrieves expenses whose voucher link matches any of the
// given values, in insertion order.
func (r *PgxExpenseRepository) FindByVoucherLink(ctx context.Context, linkValues []string) ([]domain.Expense, error) {
	if len(linkValues) == 0 {
		return []domain.Expense{}, nil
	}

	query := `SELECT` + expenseColumns + `
		FROM expenses
		WHERE voucher_id = ANY($1)
		ORDER BY created_at, expense_id;`

	return r.queryExpenses(ctx, query, linkValues)
}

// ListPendingDates returns the distinct calendar dates, newest first, that
// still have at least one unlinked expense of the given type.
func (r *PgxExpenseRepository) ListPendingDates(ctx context.Context, expenseType domain.ExpenseType) ([]time.Time, error) {
	query := `
		SELECT DISTINCT date_trunc('day', date) AS day
		FROM expenses
		WHERE voucher_id IS NULL AND type = $1
		ORDER BY day DESC;`

	rows, err := r.Pool.Query(ctx, query, expenseType)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pending dates", err)
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan pending date row", err)
		}
		dates = append(dates, day)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating pending date rows", err)
	}

	return dates, nil
}

// SummarizeExpenses aggregates expense totals by type, department and category
// within the optional time window.
func (r *PgxExpenseRepository) SummarizeExpenses(ctx context.Context, from, to *time.Time) ([]portsrepo.ExpenseSummaryRow, error) {
	query := `
		SELECT type, department, category, SUM(amount)
		FROM expenses
		WHERE 1=1`
	args := []interface{}{}

	if from != nil {
		args = append(args, *from)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}

	query += ` GROUP BY type, department, category;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense summary", err)
	}
	defer rows.Close()

	summary := []portsrepo.ExpenseSummaryRow{}
	for rows.Next() {
		var row portsrepo.ExpenseSummaryRow
		if err := rows.Scan(&row.Type, &row.Department, &row.Category, &row.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense summary row", err)
		}
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense summary rows", err)
	}

	return summary, nil
}

// SaveExpenses bulk-inserts the given expenses and returns the saved count.
func (r *PgxExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) (int, error) {
	if len(expenses) == 0 {
		return 0, nil
	}

	insertQuery := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);`

	batch := &pgx.Batch{}
	for _, e := range expenses {
		m := mapping.ToModelExpense(e)
		batch.Queue(insertQuery,
			m.ExpenseID,
			m.Type,
			m.Date,
			m.Category,
			m.EmpCode,
			m.EmpName,
			m.NumPersons,
			m.NumDays,
			m.Remarks,
			m.Description,
			m.VendorName,
			m.ConcernPerson,
			m.BillOfMonth,
			m.Department,
			m.Amount,
			m.Status,
			m.VoucherID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := r.Pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to execute expense insert batch", err)
	}

	return len(expenses), nil
}

// UpdateExpense persists all mutable fields of a single expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET date = $2,
		    category = $3,
		    emp_code = $4,
		    emp_name = $5,
		    num_persons = $6,
		    num_days = $7,
		    remarks = $8,
		    description = $9,
		    vendor_name = $10,
		    concern_person = $11,
		    bill_of_month = $12,
		    department = $13,
		    amount = $14,
		    voucher_id = $15,
		    last_updated_at = $16,
		    last_updated_by = $17
		WHERE expense_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Date,
		m.Category,
		m.EmpCode,
		m.EmpName,
		m.NumPersons,
		m.NumDays,
		m.Remarks,
		m.Description,
		m.VendorName,
		m.ConcernPerson,
		m.BillOfMonth,
		m.Department,
		m.Amount,
		m.VoucherID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+m.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + m.ExpenseID + " not found for update")
	}

	return nil
}

// DeleteExpense removes a single expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expenseID + " not found for delete")
	}
	return nil
}

// LinkExpensesInTx sets the voucher link on the given expenses inside an
// existing transaction. The voucher_id IS NULL guard means an expense claimed
// by a concurrent commit is skipped rather than re-linked.
func (r *PgxExpenseRepository) LinkExpensesInTx(ctx context.Context, tx pgx.Tx, expenseIDs []string, link string, updatedBy string, updatedAt time.Time) error {
	if len(expenseIDs) == 0 {
		return nil
	}

	query := `
		UPDATE expenses
		SET voucher_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = ANY($4) AND voucher_id IS NULL;`

	if _, err := tx.Exec(ctx, query, link, updatedAt, updatedBy, expenseIDs); err != nil {
		return apperrors.NewAppError(500, "failed to link expenses to voucher "+link, err)
	}

	return nil
}
