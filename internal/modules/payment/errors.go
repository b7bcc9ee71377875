package payment

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrScheduleNotFound    = errors.New("payment schedule not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidStatus       = errors.New("invalid installment status")
	ErrInvalidReceiptType  = errors.New("invalid receipt type")
	ErrInstallmentPaid     = errors.New("installment is already paid")
	ErrInvoiceImmutable    = errors.New("generated invoices cannot be deleted")
	ErrNotPayable          = errors.New("installment is not payable")
	ErrReceiptRequired     = errors.New("at least one receipt is required before marking paid")
	ErrFileRequired        = errors.New("a stored file is required")
	ErrFileNotFound        = errors.New("referenced file does not exist")
)
