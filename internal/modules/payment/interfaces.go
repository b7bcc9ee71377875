package payment

import (
	"context"
	"time"

	"buildboard/internal/domain"
)

type ScheduleRepository interface {
	EnsureForProject(ctx context.Context, companyID, projectID int64, title, notes string) (*domain.PaymentSchedule, bool, error)
	GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentSchedule, error)
	GetByProjectID(ctx context.Context, companyID, projectID int64) (*domain.PaymentSchedule, error)
}

type InstallmentRepository interface {
	Create(ctx context.Context, i *domain.PaymentInstallment) error
	GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentInstallment, error)
	Update(ctx context.Context, i *domain.PaymentInstallment) error
	Delete(ctx context.Context, companyID, id int64) error
	ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentInstallment, error)
	MarkPaidInvoice(ctx context.Context, companyID, installmentID int64, tax float64, now time.Time) (*domain.PaymentInstallment, *domain.PaymentDocument, error)
}

type ReceiptRepository interface {
	Create(ctx context.Context, rc *domain.PaymentReceipt) error
	CountByInstallmentID(ctx context.Context, companyID, installmentID int64) (int64, error)
	ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentReceipt, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.PaymentDocument) error
	GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentDocument, error)
	Delete(ctx context.Context, companyID, id int64) error
	ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentDocument, error)
}

type ProjectReader interface {
	GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error)
}

// ObjectResolver verifies that a referenced file_id names a stored object.
// A missing object yields an error matching gorm.ErrRecordNotFound.
type ObjectResolver interface {
	GetByID(ctx context.Context, companyID int64, id string) (*domain.Upload, error)
}

// NotificationSender delivers in-app notifications; nil-safe in the service.
type NotificationSender interface {
	Notify(ctx context.Context, userID int64, typ domain.NotificationType, title, message, entityType string, entityID int64) error
}

// TotalsCache holds the precomputed per-project totals between mutations.
type TotalsCache interface {
	Get(ctx context.Context, companyID, projectID int64) (*domain.PaymentTotals, bool)
	Set(ctx context.Context, companyID, projectID int64, t *domain.PaymentTotals)
	Invalidate(ctx context.Context, companyID, projectID int64)
}
