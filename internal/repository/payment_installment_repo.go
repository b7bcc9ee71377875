package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"buildboard/internal/domain"
)

var (
	// ErrNotPayable is returned when a state change requires status "payable".
	ErrNotPayable = errors.New("installment is not payable")
	// ErrPaidImmutable is returned when editing or deleting a paid installment.
	ErrPaidImmutable = errors.New("paid installment is immutable")
	// ErrNoReceipts is returned when mark-paid runs against an installment
	// with zero receipts.
	ErrNoReceipts = errors.New("installment has no receipts")
)

type PaymentInstallmentRepository struct {
	db *gorm.DB
}

func NewPaymentInstallmentRepository(db *gorm.DB) *PaymentInstallmentRepository {
	return &PaymentInstallmentRepository{db: db}
}

type paymentInstallmentModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	CompanyID     int64      `gorm:"column:company_id;index"`
	ScheduleID    int64      `gorm:"column:schedule_id;index"`
	ProjectID     int64      `gorm:"column:project_id;index"`
	Name          string     `gorm:"column:name"`
	Description   *string    `gorm:"column:description;type:text"`
	Amount        float64    `gorm:"column:amount"`
	Currency      string     `gorm:"column:currency"`
	DueDate       *time.Time `gorm:"column:due_date"`
	Status        string     `gorm:"column:status"`
	NextMilestone bool       `gorm:"column:next_milestone"`
	DisplayOrder  int        `gorm:"column:display_order"`
	PaidAt        *time.Time `gorm:"column:paid_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (paymentInstallmentModel) TableName() string { return "payment_installments" }

func toDomainInstallment(m paymentInstallmentModel) *domain.PaymentInstallment {
	return &domain.PaymentInstallment{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		ScheduleID:    m.ScheduleID,
		ProjectID:     m.ProjectID,
		Name:          m.Name,
		Description:   strOrEmpty(m.Description),
		Amount:        m.Amount,
		Currency:      m.Currency,
		DueDate:       m.DueDate,
		Status:        domain.InstallmentStatus(m.Status),
		NextMilestone: m.NextMilestone,
		DisplayOrder:  m.DisplayOrder,
		PaidAt:        m.PaidAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toInstallmentModel(i *domain.PaymentInstallment) paymentInstallmentModel {
	return paymentInstallmentModel{
		ID:            i.ID,
		CompanyID:     i.CompanyID,
		ScheduleID:    i.ScheduleID,
		ProjectID:     i.ProjectID,
		Name:          i.Name,
		Description:   strOrNil(i.Description),
		Amount:        i.Amount,
		Currency:      i.Currency,
		DueDate:       i.DueDate,
		Status:        string(i.Status),
		NextMilestone: i.NextMilestone,
		DisplayOrder:  i.DisplayOrder,
		PaidAt:        i.PaidAt,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (r *PaymentInstallmentRepository) Create(ctx context.Context, i *domain.PaymentInstallment) error {
	m := toInstallmentModel(i)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*i = *toDomainInstallment(m)
	return nil
}

func (r *PaymentInstallmentRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentInstallment, error) {
	var m paymentInstallmentModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainInstallment(m), nil
}

// Update rewrites the mutable fields of a non-paid installment.
func (r *PaymentInstallmentRepository) Update(ctx context.Context, i *domain.PaymentInstallment) error {
	res := r.db.WithContext(ctx).
		Model(&paymentInstallmentModel{}).
		Where("id = ? AND company_id = ? AND status <> ?", i.ID, i.CompanyID, domain.InstallmentPaid).
		Updates(map[string]interface{}{
			"name":           i.Name,
			"description":    strOrNil(i.Description),
			"amount":         i.Amount,
			"currency":       i.Currency,
			"due_date":       i.DueDate,
			"status":         string(i.Status),
			"next_milestone": i.NextMilestone,
			"display_order":  i.DisplayOrder,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either missing or already paid; distinguish for the caller.
		var cnt int64
		if err := r.db.WithContext(ctx).Model(&paymentInstallmentModel{}).
			Where("id = ? AND company_id = ?", i.ID, i.CompanyID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrPaidImmutable
	}
	return nil
}

func (r *PaymentInstallmentRepository) Delete(ctx context.Context, companyID, id int64) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ? AND status <> ?", companyID, domain.InstallmentPaid).
		Delete(&paymentInstallmentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var cnt int64
		if err := r.db.WithContext(ctx).Model(&paymentInstallmentModel{}).
			Where("id = ? AND company_id = ?", id, companyID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrPaidImmutable
	}
	return nil
}

func (r *PaymentInstallmentRepository) ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentInstallment, error) {
	var rows []paymentInstallmentModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND project_id = ?", companyID, projectID).
		Order("display_order ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.PaymentInstallment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainInstallment(m))
	}
	return out, nil
}

// MarkPaidInvoice transitions a payable installment to paid and writes the
// invoice document in the same transaction. The row lock serializes
// concurrent mark-paid attempts; the receipt check runs inside the
// transaction so the guard cannot be raced from the API.
func (r *PaymentInstallmentRepository) MarkPaidInvoice(ctx context.Context, companyID, installmentID int64, tax float64, now time.Time) (*domain.PaymentInstallment, *domain.PaymentDocument, error) {
	var (
		inst *domain.PaymentInstallment
		doc  *domain.PaymentDocument
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m paymentInstallmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND company_id = ?", installmentID, companyID).
			First(&m).Error; err != nil {
			return err
		}
		if m.Status == string(domain.InstallmentPaid) {
			return ErrPaidImmutable
		}
		if m.Status != string(domain.InstallmentPayable) {
			return ErrNotPayable
		}

		var receipts int64
		if err := tx.Model(&paymentReceiptModel{}).
			Where("installment_id = ?", m.ID).
			Count(&receipts).Error; err != nil {
			return err
		}
		if receipts == 0 {
			return ErrNoReceipts
		}

		res := tx.Model(&paymentInstallmentModel{}).
			Where("id = ? AND status = ?", m.ID, domain.InstallmentPayable).
			Updates(map[string]interface{}{
				"status":         string(domain.InstallmentPaid),
				"next_milestone": false,
				"paid_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPayable
		}

		invoiceNo, err := nextInvoiceNo(tx, companyID, now)
		if err != nil {
			return err
		}

		dm := paymentDocumentModel{
			CompanyID:       companyID,
			ProjectID:       m.ProjectID,
			ScheduleID:      m.ScheduleID,
			Title:           fmt.Sprintf("Invoice %s - %s", invoiceNo, m.Name),
			DocumentType:    string(domain.DocumentInvoice),
			InvoiceNo:       strOrNil(invoiceNo),
			InstallmentName: strOrNil(m.Name),
			IssueDate:       &now,
			Total:           m.Amount + tax,
		}
		if err := tx.Create(&dm).Error; err != nil {
			return err
		}

		m.Status = string(domain.InstallmentPaid)
		m.NextMilestone = false
		m.PaidAt = &now
		inst = toDomainInstallment(m)
		doc = toDomainDocument(dm)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return inst, doc, nil
}

// nextInvoiceNo assigns INV-<year>-<seq>, sequenced per company per year.
func nextInvoiceNo(tx *gorm.DB, companyID int64, now time.Time) (string, error) {
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var issued int64
	err := tx.Model(&paymentDocumentModel{}).
		Where("company_id = ? AND document_type = ? AND issue_date >= ? AND issue_date < ?",
			companyID, domain.DocumentInvoice, yearStart, yearEnd).
		Count(&issued).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%04d", now.Year(), issued+1), nil
}
