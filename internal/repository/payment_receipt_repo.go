package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type PaymentReceiptRepository struct {
	db *gorm.DB
}

func NewPaymentReceiptRepository(db *gorm.DB) *PaymentReceiptRepository {
	return &PaymentReceiptRepository{db: db}
}

type paymentReceiptModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	CompanyID     int64      `gorm:"column:company_id;index"`
	InstallmentID int64      `gorm:"column:installment_id;index"`
	ProjectID     int64      `gorm:"column:project_id;index"`
	ReceiptType   string     `gorm:"column:receipt_type"`
	ReferenceNo   *string    `gorm:"column:reference_no"`
	PaymentDate   *time.Time `gorm:"column:payment_date"`
	FileID        string     `gorm:"column:file_id"`
	UploadedBy    int64      `gorm:"column:uploaded_by"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

func (paymentReceiptModel) TableName() string { return "payment_receipts" }

func toDomainReceipt(m paymentReceiptModel) *domain.PaymentReceipt {
	return &domain.PaymentReceipt{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		InstallmentID: m.InstallmentID,
		ProjectID:     m.ProjectID,
		ReceiptType:   domain.ReceiptType(m.ReceiptType),
		ReferenceNo:   strOrEmpty(m.ReferenceNo),
		PaymentDate:   m.PaymentDate,
		FileID:        m.FileID,
		UploadedBy:    m.UploadedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *PaymentReceiptRepository) Create(ctx context.Context, rc *domain.PaymentReceipt) error {
	m := paymentReceiptModel{
		CompanyID:     rc.CompanyID,
		InstallmentID: rc.InstallmentID,
		ProjectID:     rc.ProjectID,
		ReceiptType:   string(rc.ReceiptType),
		ReferenceNo:   strOrNil(rc.ReferenceNo),
		PaymentDate:   rc.PaymentDate,
		FileID:        rc.FileID,
		UploadedBy:    rc.UploadedBy,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rc = *toDomainReceipt(m)
	return nil
}

func (r *PaymentReceiptRepository) CountByInstallmentID(ctx context.Context, companyID, installmentID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&paymentReceiptModel{}).
		Where("company_id = ? AND installment_id = ?", companyID, installmentID).
		Count(&cnt).Error
	return cnt, err
}

func (r *PaymentReceiptRepository) ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentReceipt, error) {
	var rows []paymentReceiptModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND project_id = ?", companyID, projectID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.PaymentReceipt, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReceipt(m))
	}
	return out, nil
}
