package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/domain"
	"buildboard/internal/repository"
)

const (
	defaultScheduleTitle = "Payment Schedule"
	defaultScheduleNotes = "Project payment tracking"
	defaultCurrency      = "USD"
)

type Service struct {
	schedules    ScheduleRepository
	installments InstallmentRepository
	receipts     ReceiptRepository
	documents    DocumentRepository
	projects     ProjectReader
	objects      ObjectResolver
	notifier     NotificationSender
	totals       TotalsCache
	logger       *zap.Logger
}

func NewService(
	schedules ScheduleRepository,
	installments InstallmentRepository,
	receipts ReceiptRepository,
	documents DocumentRepository,
	projects ProjectReader,
	objects ObjectResolver,
	notifier NotificationSender,
	totals TotalsCache,
	logger *zap.Logger,
) *Service {
	if totals == nil {
		totals = NoopTotalsCache{}
	}
	return &Service{
		schedules:    schedules,
		installments: installments,
		receipts:     receipts,
		documents:    documents,
		projects:     projects,
		objects:      objects,
		notifier:     notifier,
		totals:       totals,
		logger:       logger,
	}
}

// EnsureSchedule returns the project's schedule, creating it on first call.
// Safe to call repeatedly; a project never ends up with two schedules.
func (s *Service) EnsureSchedule(ctx context.Context, companyID int64, req CreateScheduleRequest) (*domain.PaymentSchedule, bool, error) {
	if _, err := s.projects.GetByID(ctx, companyID, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrProjectNotFound
		}
		return nil, false, err
	}

	title := req.Title
	if title == "" {
		title = defaultScheduleTitle
	}
	notes := req.Notes
	if notes == "" {
		notes = defaultScheduleNotes
	}

	sched, created, err := s.schedules.EnsureForProject(ctx, companyID, req.ProjectID, title, notes)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info("payment schedule created",
			zap.Int64("project_id", req.ProjectID),
			zap.Int64("schedule_id", sched.ID))
	}
	return sched, created, nil
}

// GetProjectPayments loads everything the payments view needs in one shot.
func (s *Service) GetProjectPayments(ctx context.Context, companyID, projectID int64) (*ProjectPayments, error) {
	if _, err := s.projects.GetByID(ctx, companyID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	out := &ProjectPayments{
		Installments: []domain.PaymentInstallment{},
		Receipts:     []domain.PaymentReceipt{},
		Documents:    []domain.PaymentDocument{},
		Invoices:     []domain.PaymentDocument{},
	}

	sched, err := s.schedules.GetByProjectID(ctx, companyID, projectID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	out.Schedule = sched

	if out.Installments, err = s.installments.ListByProjectID(ctx, companyID, projectID); err != nil {
		return nil, err
	}
	if out.Receipts, err = s.receipts.ListByProjectID(ctx, companyID, projectID); err != nil {
		return nil, err
	}

	docs, err := s.documents.ListByProjectID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.DocumentType == domain.DocumentInvoice {
			out.Invoices = append(out.Invoices, d)
		} else {
			out.Documents = append(out.Documents, d)
		}
	}
	return out, nil
}

func (s *Service) CreateInstallment(ctx context.Context, companyID int64, req CreateInstallmentRequest) (*domain.PaymentInstallment, error) {
	sched, err := s.schedules.GetByID(ctx, companyID, req.ScheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	if sched.ProjectID != req.ProjectID {
		return nil, ErrScheduleNotFound
	}

	status := domain.InstallmentPlanned
	if req.Status != "" {
		parsed, ok := domain.ParseInstallmentStatus(req.Status)
		// New installments cannot be born paid.
		if !ok || parsed == domain.InstallmentPaid {
			return nil, ErrInvalidStatus
		}
		status = parsed
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	inst := &domain.PaymentInstallment{
		CompanyID:     companyID,
		ScheduleID:    sched.ID,
		ProjectID:     sched.ProjectID,
		Name:          req.Name,
		Description:   req.Description,
		Amount:        *req.Amount,
		Currency:      currency,
		DueDate:       req.DueDate,
		Status:        status,
		NextMilestone: req.NextMilestone,
		DisplayOrder:  req.DisplayOrder,
	}
	if err := s.installments.Create(ctx, inst); err != nil {
		return nil, err
	}

	s.totals.Invalidate(ctx, companyID, inst.ProjectID)
	return inst, nil
}

func (s *Service) UpdateInstallment(ctx context.Context, companyID, id int64, req UpdateInstallmentRequest) (*domain.PaymentInstallment, error) {
	inst, err := s.installments.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, err
	}
	if inst.Status == domain.InstallmentPaid {
		return nil, ErrInstallmentPaid
	}

	if req.Name != nil {
		inst.Name = *req.Name
	}
	if req.Description != nil {
		inst.Description = *req.Description
	}
	if req.Amount != nil {
		inst.Amount = *req.Amount
	}
	if req.Currency != nil {
		inst.Currency = *req.Currency
	}
	if req.DueDate != nil {
		inst.DueDate = req.DueDate
	}
	if req.Status != nil {
		parsed, ok := domain.ParseInstallmentStatus(*req.Status)
		// Paid is reached only through mark-paid.
		if !ok || parsed == domain.InstallmentPaid {
			return nil, ErrInvalidStatus
		}
		inst.Status = parsed
	}
	if req.NextMilestone != nil {
		inst.NextMilestone = *req.NextMilestone
	}
	if req.DisplayOrder != nil {
		inst.DisplayOrder = *req.DisplayOrder
	}

	if err := s.installments.Update(ctx, inst); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrInstallmentNotFound
		case errors.Is(err, repository.ErrPaidImmutable):
			return nil, ErrInstallmentPaid
		}
		return nil, err
	}

	s.totals.Invalidate(ctx, companyID, inst.ProjectID)
	return inst, nil
}

func (s *Service) DeleteInstallment(ctx context.Context, companyID, id int64) error {
	inst, err := s.installments.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInstallmentNotFound
		}
		return err
	}

	if err := s.installments.Delete(ctx, companyID, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrInstallmentNotFound
		case errors.Is(err, repository.ErrPaidImmutable):
			return ErrInstallmentPaid
		}
		return err
	}

	s.totals.Invalidate(ctx, companyID, inst.ProjectID)
	return nil
}

// MarkPaid finalizes a payable installment and generates its invoice. The
// receipt guard is checked here for a clean API error and re-checked inside
// the repository transaction.
func (s *Service) MarkPaid(ctx context.Context, companyID, userID, installmentID int64, tax float64) (*domain.PaymentInstallment, *domain.PaymentDocument, error) {
	inst, err := s.installments.GetByID(ctx, companyID, installmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInstallmentNotFound
		}
		return nil, nil, err
	}
	if inst.Status == domain.InstallmentPaid {
		return nil, nil, ErrInstallmentPaid
	}
	if inst.Status != domain.InstallmentPayable {
		return nil, nil, ErrNotPayable
	}

	count, err := s.receipts.CountByInstallmentID(ctx, companyID, installmentID)
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return nil, nil, ErrReceiptRequired
	}

	paid, invoice, err := s.installments.MarkPaidInvoice(ctx, companyID, installmentID, tax, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, nil, ErrInstallmentNotFound
		case errors.Is(err, repository.ErrPaidImmutable):
			return nil, nil, ErrInstallmentPaid
		case errors.Is(err, repository.ErrNotPayable):
			return nil, nil, ErrNotPayable
		case errors.Is(err, repository.ErrNoReceipts):
			return nil, nil, ErrReceiptRequired
		}
		return nil, nil, err
	}

	s.totals.Invalidate(ctx, companyID, paid.ProjectID)
	s.notifyPaid(ctx, companyID, userID, paid, invoice)

	s.logger.Info("installment marked paid",
		zap.Int64("installment_id", paid.ID),
		zap.Int64("project_id", paid.ProjectID),
		zap.String("invoice_no", invoice.InvoiceNo))
	return paid, invoice, nil
}

func (s *Service) notifyPaid(ctx context.Context, companyID, actorID int64, inst *domain.PaymentInstallment, invoice *domain.PaymentDocument) {
	if s.notifier == nil {
		return
	}

	proj, err := s.projects.GetByID(ctx, companyID, inst.ProjectID)
	if err != nil || proj.CreatedBy == 0 || proj.CreatedBy == actorID {
		return
	}

	msg := fmt.Sprintf("Installment %q on project %q was marked paid (invoice %s).",
		inst.Name, proj.Name, invoice.InvoiceNo)
	if err := s.notifier.Notify(ctx, proj.CreatedBy, domain.NotificationSuccess,
		"Installment paid", msg, "payment_installment", inst.ID); err != nil {
		s.logger.Warn("paid notification failed", zap.Error(err))
	}
}

func (s *Service) CreateReceipt(ctx context.Context, companyID, userID int64, req CreateReceiptRequest) (*domain.PaymentReceipt, error) {
	rt, ok := domain.ParseReceiptType(req.ReceiptType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReceiptType, req.ReceiptType)
	}

	inst, err := s.installments.GetByID(ctx, companyID, req.InstallmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, err
	}
	if inst.Status == domain.InstallmentPaid {
		return nil, ErrInstallmentPaid
	}

	// Receipts always point at a stored file.
	if req.FileID == "" {
		return nil, ErrFileRequired
	}
	if _, err := s.objects.GetByID(ctx, companyID, req.FileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	rc := &domain.PaymentReceipt{
		CompanyID:     companyID,
		InstallmentID: inst.ID,
		ProjectID:     inst.ProjectID,
		ReceiptType:   rt,
		ReferenceNo:   req.ReferenceNo,
		PaymentDate:   req.PaymentDate,
		FileID:        req.FileID,
		UploadedBy:    userID,
	}
	if err := s.receipts.Create(ctx, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

func (s *Service) CreateDocument(ctx context.Context, companyID, userID int64, req CreateDocumentRequest) (*domain.PaymentDocument, error) {
	if _, err := s.projects.GetByID(ctx, companyID, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	// Plain documents may be file-less (a named placeholder); when a file
	// is attached it must exist.
	if req.FileID != "" {
		if _, err := s.objects.GetByID(ctx, companyID, req.FileID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFileNotFound
			}
			return nil, err
		}
	}

	doc := &domain.PaymentDocument{
		CompanyID:    companyID,
		ProjectID:    req.ProjectID,
		ScheduleID:   req.ScheduleID,
		Title:        req.Title,
		FileID:       req.FileID,
		DocumentType: domain.DocumentPlain,
		CreatedBy:    userID,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) DeleteDocument(ctx context.Context, companyID, id int64) error {
	err := s.documents.Delete(ctx, companyID, id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrDocumentNotFound
		case errors.Is(err, repository.ErrInvoiceImmutable):
			return ErrInvoiceImmutable
		}
		return err
	}
	return nil
}

// GetTotals computes the project's payment rollup, cached between mutations.
func (s *Service) GetTotals(ctx context.Context, companyID, projectID int64) (*domain.PaymentTotals, error) {
	if t, ok := s.totals.Get(ctx, companyID, projectID); ok {
		return t, nil
	}

	if _, err := s.projects.GetByID(ctx, companyID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	installments, err := s.installments.ListByProjectID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}

	t := computeTotals(installments)
	s.totals.Set(ctx, companyID, projectID, t)
	return t, nil
}

func computeTotals(installments []domain.PaymentInstallment) *domain.PaymentTotals {
	t := &domain.PaymentTotals{}
	for i := range installments {
		inst := &installments[i]
		t.TotalAmount += inst.Amount
		if inst.Status == domain.InstallmentPaid {
			t.TotalPaid += inst.Amount
			continue
		}
		if t.NextMilestone == nil && inst.NextMilestone {
			t.NextMilestone = inst
		}
	}
	t.TotalPending = t.TotalAmount - t.TotalPaid
	if t.TotalAmount > 0 {
		t.PercentComplete = t.TotalPaid / t.TotalAmount * 100
	}

	// No installment flagged: fall back to the first unpaid one in order.
	if t.NextMilestone == nil {
		for i := range installments {
			if installments[i].Status != domain.InstallmentPaid {
				t.NextMilestone = &installments[i]
				break
			}
		}
	}
	return t
}
