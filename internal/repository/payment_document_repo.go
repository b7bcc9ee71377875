package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

// ErrInvoiceImmutable is returned when deleting a generated invoice.
var ErrInvoiceImmutable = errors.New("invoices cannot be deleted")

type PaymentDocumentRepository struct {
	db *gorm.DB
}

func NewPaymentDocumentRepository(db *gorm.DB) *PaymentDocumentRepository {
	return &PaymentDocumentRepository{db: db}
}

type paymentDocumentModel struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	CompanyID    int64   `gorm:"column:company_id;index"`
	ProjectID    int64   `gorm:"column:project_id;index"`
	ScheduleID   int64   `gorm:"column:schedule_id;index"`
	Title        string  `gorm:"column:title"`
	FileID       *string `gorm:"column:file_id"`
	DocumentType string  `gorm:"column:document_type"`

	InvoiceNo       *string    `gorm:"column:invoice_no"`
	InstallmentName *string    `gorm:"column:installment_name"`
	IssueDate       *time.Time `gorm:"column:issue_date"`
	Total           float64    `gorm:"column:total"`

	CreatedBy int64     `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (paymentDocumentModel) TableName() string { return "payment_documents" }

func toDomainDocument(m paymentDocumentModel) *domain.PaymentDocument {
	return &domain.PaymentDocument{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		ProjectID:       m.ProjectID,
		ScheduleID:      m.ScheduleID,
		Title:           m.Title,
		FileID:          strOrEmpty(m.FileID),
		DocumentType:    domain.DocumentType(m.DocumentType),
		InvoiceNo:       strOrEmpty(m.InvoiceNo),
		InstallmentName: strOrEmpty(m.InstallmentName),
		IssueDate:       m.IssueDate,
		Total:           m.Total,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}

func (r *PaymentDocumentRepository) Create(ctx context.Context, d *domain.PaymentDocument) error {
	m := paymentDocumentModel{
		CompanyID:       d.CompanyID,
		ProjectID:       d.ProjectID,
		ScheduleID:      d.ScheduleID,
		Title:           d.Title,
		FileID:          strOrNil(d.FileID),
		DocumentType:    string(d.DocumentType),
		InvoiceNo:       strOrNil(d.InvoiceNo),
		InstallmentName: strOrNil(d.InstallmentName),
		IssueDate:       d.IssueDate,
		Total:           d.Total,
		CreatedBy:       d.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*d = *toDomainDocument(m)
	return nil
}

func (r *PaymentDocumentRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentDocument, error) {
	var m paymentDocumentModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainDocument(m), nil
}

// Delete removes a plain document. Generated invoices are kept immutable.
func (r *PaymentDocumentRepository) Delete(ctx context.Context, companyID, id int64) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ? AND document_type = ?", companyID, domain.DocumentPlain).
		Delete(&paymentDocumentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var cnt int64
		if err := r.db.WithContext(ctx).Model(&paymentDocumentModel{}).
			Where("id = ? AND company_id = ?", id, companyID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInvoiceImmutable
	}
	return nil
}

func (r *PaymentDocumentRepository) ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentDocument, error) {
	var rows []paymentDocumentModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND project_id = ?", companyID, projectID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.PaymentDocument, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDocument(m))
	}
	return out, nil
}
