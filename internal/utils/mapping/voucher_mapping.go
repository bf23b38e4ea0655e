package mapping

import (
	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/finbook/voucher_backend/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:    d.VoucherID,
		SerialNumber: d.SerialNumber,
		Type:         models.ExpenseType(d.Type),
		Date:         d.Date,
		TotalAmount:  d.TotalAmount,
		Items:        ToModelVoucherItems(d.Items),
		Status:       models.VoucherStatus(d.Status),
		PreparedBy:   d.PreparedBy,
		NeedsSync:    d.NeedsSync,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:    m.VoucherID,
		SerialNumber: m.SerialNumber,
		Type:         domain.ExpenseType(m.Type),
		Date:         m.Date,
		TotalAmount:  m.TotalAmount,
		Items:        ToDomainVoucherItems(m.Items),
		Status:       domain.VoucherStatus(m.Status),
		PreparedBy:   m.PreparedBy,
		NeedsSync:    m.NeedsSync,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucherItems converts domain voucher items to model voucher items.
func ToModelVoucherItems(ds []domain.VoucherItem) []models.VoucherItem {
	ms := make([]models.VoucherItem, len(ds))
	for i, d := range ds {
		ms[i] = models.VoucherItem{SrNo: d.SrNo, Detail: d.Detail, Amount: d.Amount, Remarks: d.Remarks}
	}
	return ms
}

// ToDomainVoucherItems converts model voucher items to domain voucher items.
func ToDomainVoucherItems(ms []models.VoucherItem) []domain.VoucherItem {
	ds := make([]domain.VoucherItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.VoucherItem{SrNo: m.SrNo, Detail: m.Detail, Amount: m.Amount, Remarks: m.Remarks}
	}
	return ds
}

// ToDomainVoucherSlice converts a slice of model Vouchers to domain Vouchers.
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	ds := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}
