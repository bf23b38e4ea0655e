package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/finbook/voucher_backend/internal/apperrors"
	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	"github.com/finbook/voucher_backend/internal/models"
	"github.com/finbook/voucher_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

const voucherColumns = `
	voucher_id, serial_number, type, date, total_amount, items, status,
	prepared_by, needs_sync, created_at, created_by, last_updated_at, last_updated_by`

type PgxVoucherRepository struct {
	BaseRepository
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// newPgxVoucherRepository creates a new repository for voucher data. The
// expense repository dependency performs the linking half of the save
// transaction.
func newPgxVoucherRepository(pool *pgxpool.Pool, expenseRepo portsrepo.ExpenseRepositoryFacade) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
		expenseRepo:    expenseRepo,
	}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepositoryWithTx
var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

// SaveVoucher inserts the voucher record and stamps its serial number onto the
// source expenses within a single DB transaction. Concurrent generations for
// the same day can race to the same serial; the UNIQUE constraint on
// serial_number rejects the loser here, surfaced as apperrors.ErrDuplicate,
// and the rollback guarantees the loser linked nothing.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, sourceExpenseIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	itemsJSON, err := json.Marshal(m.Items)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode voucher items for "+m.SerialNumber, err)
	}

	insertQuery := `
		INSERT INTO voucher_records (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	_, err = tx.Exec(ctx, insertQuery,
		m.VoucherID,
		m.SerialNumber,
		m.Type,
		m.Date,
		m.TotalAmount,
		itemsJSON,
		m.Status,
		m.PreparedBy,
		m.NeedsSync,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewAppError(409, "voucher serial "+m.SerialNumber+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert voucher "+m.SerialNumber, err)
	}

	// Link by serial number; downstream lookups accept serial or internal ID.
	if err := r.expenseRepo.LinkExpensesInTx(ctx, tx, sourceExpenseIDs, m.SerialNumber, voucher.CreatedBy, voucher.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func scanVoucher(row pgx.Row) (*models.Voucher, error) {
	var m models.Voucher
	var itemsJSON []byte
	err := row.Scan(
		&m.VoucherID,
		&m.SerialNumber,
		&m.Type,
		&m.Date,
		&m.TotalAmount,
		&itemsJSON,
		&m.Status,
		&m.PreparedBy,
		&m.NeedsSync,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &m.Items); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

func (r *PgxVoucherRepository) findVoucher(ctx context.Context, whereClause string, arg interface{}) (*domain.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM voucher_records WHERE ` + whereClause + `;`

	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher", err)
	}

	domainVoucher := mapping.ToDomainVoucher(*m)
	return &domainVoucher, nil
}

// FindVoucherByID retrieves a voucher by its internal identifier.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return r.findVoucher(ctx, `voucher_id = $1`, voucherID)
}

// FindVoucherBySerial retrieves a voucher by its serial number.
func (r *PgxVoucherRepository) FindVoucherBySerial(ctx context.Context, serialNumber string) (*domain.Voucher, error) {
	return r.findVoucher(ctx, `serial_number = $1`, serialNumber)
}

// ListVouchers retrieves all vouchers, newest business date first.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM voucher_records ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vouchers", err)
	}
	defer rows.Close()

	vouchers := []models.Voucher{}
	for rows.Next() {
		m, scanErr := scanVoucher(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher row", scanErr)
		}
		vouchers = append(vouchers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}

	return mapping.ToDomainVoucherSlice(vouchers), nil
}

// CountVouchersByDateRange counts vouchers whose business date falls within
// [start, end).
func (r *PgxVoucherRepository) CountVouchersByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM voucher_records WHERE date >= $1 AND date < $2;`
	if err := r.Pool.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count vouchers by date range", err)
	}
	return count, nil
}

// UpdateVoucherItems overwrites a voucher's snapshot with freshly aggregated
// items and clears the needs-sync flag.
func (r *PgxVoucherRepository) UpdateVoucherItems(ctx context.Context, serialNumber string, items []domain.VoucherItem, total decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	itemsJSON, err := json.Marshal(mapping.ToModelVoucherItems(items))
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode voucher items for "+serialNumber, err)
	}

	query := `
		UPDATE voucher_records
		SET items = $2,
		    total_amount = $3,
		    needs_sync = FALSE,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE serial_number = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, serialNumber, itemsJSON, total, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update voucher items for "+serialNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + serialNumber + " not found for item update")
	}

	return nil
}

// MarkNeedsSync flags the voucher whose serial number or internal ID equals
// linkRef. Serial numbers are tried first; historical links may carry the
// internal ID instead.
func (r *PgxVoucherRepository) MarkNeedsSync(ctx context.Context, linkRef string, updatedBy string, updatedAt time.Time) (int, error) {
	bySerial := `
		UPDATE voucher_records
		SET needs_sync = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE serial_number = $1;`

	cmdTag, err := r.Pool.Exec(ctx, bySerial, linkRef, updatedAt, updatedBy)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to flag voucher "+linkRef+" for sync", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return int(cmdTag.RowsAffected()), nil
	}

	byID := `
		UPDATE voucher_records
		SET needs_sync = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE voucher_id = $1;`

	cmdTag, err = r.Pool.Exec(ctx, byID, linkRef, updatedAt, updatedBy)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to flag voucher "+linkRef+" for sync", err)
	}
	return int(cmdTag.RowsAffected()), nil
}

// UpdateVoucherStatus sets the clearing status of a voucher.
func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE voucher_records
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, voucherID, models.VoucherStatus(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for voucher "+voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + voucherID + " not found for status update")
	}

	return nil
}

// BackfillPreparedBy replaces the placeholder preparer name with the given
// display name on all matching vouchers.
func (r *PgxVoucherRepository) BackfillPreparedBy(ctx context.Context, placeholder, name string, updatedBy string, updatedAt time.Time) (int, error) {
	query := `
		UPDATE voucher_records
		SET prepared_by = $2, last_updated_at = $3, last_updated_by = $4
		WHERE prepared_by = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, placeholder, name, updatedAt, updatedBy)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to backfill prepared_by", err)
	}
	return int(cmdTag.RowsAffected()), nil
}
