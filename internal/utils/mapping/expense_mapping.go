package mapping

import (
	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/finbook/voucher_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		Type:          models.ExpenseType(d.Type),
		Date:          d.Date,
		Category:      d.Category,
		EmpCode:       d.EmpCode,
		EmpName:       d.EmpName,
		NumPersons:    d.NumPersons,
		NumDays:       d.NumDays,
		Remarks:       d.Remarks,
		Description:   d.Description,
		VendorName:    d.VendorName,
		ConcernPerson: d.ConcernPerson,
		BillOfMonth:   d.BillOfMonth,
		Department:    d.Department,
		Amount:        d.Amount,
		Status:        models.ExpenseStatus(d.Status),
		VoucherID:     d.VoucherID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		Type:          domain.ExpenseType(m.Type),
		Date:          m.Date,
		Category:      m.Category,
		EmpCode:       m.EmpCode,
		EmpName:       m.EmpName,
		NumPersons:    m.NumPersons,
		NumDays:       m.NumDays,
		Remarks:       m.Remarks,
		Description:   m.Description,
		VendorName:    m.VendorName,
		ConcernPerson: m.ConcernPerson,
		BillOfMonth:   m.BillOfMonth,
		Department:    m.Department,
		Amount:        m.Amount,
		Status:        domain.ExpenseStatus(m.Status),
		VoucherID:     m.VoucherID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
