package payment

import (
	"time"

	"buildboard/internal/domain"
)

type CreateScheduleRequest struct {
	ProjectID int64  `json:"project_id" binding:"required"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
}

type CreateInstallmentRequest struct {
	ScheduleID    int64      `json:"schedule_id" binding:"required"`
	ProjectID     int64      `json:"project_id" binding:"required"`
	Name          string     `json:"name" binding:"required"`
	Description   string     `json:"description"`
	Amount        *float64   `json:"amount" binding:"required"`
	Currency      string     `json:"currency"`
	DueDate       *time.Time `json:"due_date"`
	Status        string     `json:"status"`
	NextMilestone bool       `json:"next_milestone"`
	DisplayOrder  int        `json:"display_order"`
}

// UpdateInstallmentRequest carries a partial edit; nil fields are untouched.
type UpdateInstallmentRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Amount        *float64   `json:"amount"`
	Currency      *string    `json:"currency"`
	DueDate       *time.Time `json:"due_date"`
	Status        *string    `json:"status"`
	NextMilestone *bool      `json:"next_milestone"`
	DisplayOrder  *int       `json:"display_order"`
}

type MarkPaidRequest struct {
	Tax float64 `json:"tax"`
}

type CreateReceiptRequest struct {
	InstallmentID int64      `json:"installment_id" binding:"required"`
	ProjectID     int64      `json:"project_id" binding:"required"`
	ReceiptType   string     `json:"receipt_type" binding:"required"`
	ReferenceNo   string     `json:"reference_no"`
	PaymentDate   *time.Time `json:"payment_date"`
	FileID        string     `json:"file_id" binding:"required"`
}

type CreateDocumentRequest struct {
	ProjectID  int64  `json:"project_id" binding:"required"`
	ScheduleID int64  `json:"schedule_id"`
	Title      string `json:"title" binding:"required"`
	FileID     string `json:"file_id"`
}

// ProjectPayments is the aggregate the payments tab loads in one request.
type ProjectPayments struct {
	Schedule     *domain.PaymentSchedule     `json:"schedule"`
	Installments []domain.PaymentInstallment `json:"installments"`
	Receipts     []domain.PaymentReceipt     `json:"receipts"`
	Documents    []domain.PaymentDocument    `json:"documents"`
	Invoices     []domain.PaymentDocument    `json:"invoices"`
}
