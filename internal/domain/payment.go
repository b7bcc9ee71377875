package domain

import "time"

type InstallmentStatus string

const (
	InstallmentPlanned InstallmentStatus = "planned"
	InstallmentPayable InstallmentStatus = "payable"
	InstallmentPaid    InstallmentStatus = "paid"
)

func ParseInstallmentStatus(s string) (InstallmentStatus, bool) {
	switch InstallmentStatus(s) {
	case InstallmentPlanned, InstallmentPayable, InstallmentPaid:
		return InstallmentStatus(s), true
	}
	return "", false
}

type ReceiptType string

const (
	ReceiptCheck      ReceiptType = "check"
	ReceiptWire       ReceiptType = "wire"
	ReceiptACH        ReceiptType = "ach"
	ReceiptCreditCard ReceiptType = "credit_card"
	ReceiptOther      ReceiptType = "other"
)

func ParseReceiptType(s string) (ReceiptType, bool) {
	switch ReceiptType(s) {
	case ReceiptCheck, ReceiptWire, ReceiptACH, ReceiptCreditCard, ReceiptOther:
		return ReceiptType(s), true
	}
	return "", false
}

type DocumentType string

const (
	DocumentPlain   DocumentType = "document"
	DocumentInvoice DocumentType = "invoice"
)

// PaymentSchedule is the single per-project container for installments.
// Creation is idempotent: a project has at most one schedule.
type PaymentSchedule struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	ProjectID int64     `json:"project_id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentInstallment is one scheduled payment milestone.
// Lifecycle: planned -> payable -> paid; paid is terminal.
type PaymentInstallment struct {
	ID            int64             `json:"id"`
	CompanyID     int64             `json:"company_id"`
	ScheduleID    int64             `json:"schedule_id"`
	ProjectID     int64             `json:"project_id"`
	Name          string            `json:"name" validate:"required"`
	Description   string            `json:"description,omitempty"`
	Amount        float64           `json:"amount" validate:"gte=0"`
	Currency      string            `json:"currency"`
	DueDate       *time.Time        `json:"due_date,omitempty"`
	Status        InstallmentStatus `json:"status"`
	NextMilestone bool              `json:"next_milestone"`
	DisplayOrder  int               `json:"display_order"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type PaymentReceipt struct {
	ID            int64       `json:"id"`
	CompanyID     int64       `json:"company_id"`
	InstallmentID int64       `json:"installment_id"`
	ProjectID     int64       `json:"project_id"`
	ReceiptType   ReceiptType `json:"receipt_type"`
	ReferenceNo   string      `json:"reference_no,omitempty"`
	PaymentDate   *time.Time  `json:"payment_date,omitempty"`
	FileID        string      `json:"file_id"`
	UploadedBy    int64       `json:"uploaded_by"`
	CreatedAt     time.Time   `json:"created_at"`
}

// PaymentDocument covers plain project documents and generated invoices.
// Invoice rows additionally carry the invoice fields.
type PaymentDocument struct {
	ID           int64        `json:"id"`
	CompanyID    int64        `json:"company_id"`
	ProjectID    int64        `json:"project_id"`
	ScheduleID   int64        `json:"schedule_id"`
	Title        string       `json:"title"`
	FileID       string       `json:"file_id,omitempty"`
	DocumentType DocumentType `json:"document_type"`

	InvoiceNo       string     `json:"invoice_no,omitempty"`
	InstallmentName string     `json:"installment_name,omitempty"`
	IssueDate       *time.Time `json:"issue_date,omitempty"`
	Total           float64    `json:"total,omitempty"`

	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentTotals is the server-computed aggregate the frontend reads
// instead of summing installments client-side.
type PaymentTotals struct {
	TotalAmount     float64             `json:"total_amount"`
	TotalPaid       float64             `json:"total_paid"`
	TotalPending    float64             `json:"total_pending"`
	PercentComplete float64             `json:"percent_complete"`
	NextMilestone   *PaymentInstallment `json:"next_milestone,omitempty"`
}
