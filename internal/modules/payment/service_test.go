package payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/domain"
	"buildboard/internal/modules/objects"
	"buildboard/internal/repository"
)

// Mock repositories

type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) EnsureForProject(ctx context.Context, companyID, projectID int64, title, notes string) (*domain.PaymentSchedule, bool, error) {
	args := m.Called(ctx, companyID, projectID, title, notes)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.PaymentSchedule), args.Bool(1), args.Error(2)
}

func (m *MockScheduleRepo) GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentSchedule, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSchedule), args.Error(1)
}

func (m *MockScheduleRepo) GetByProjectID(ctx context.Context, companyID, projectID int64) (*domain.PaymentSchedule, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSchedule), args.Error(1)
}

type MockInstallmentRepo struct {
	mock.Mock
}

func (m *MockInstallmentRepo) Create(ctx context.Context, i *domain.PaymentInstallment) error {
	args := m.Called(ctx, i)
	if i != nil {
		i.ID = 501 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockInstallmentRepo) GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentInstallment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentInstallment), args.Error(1)
}

func (m *MockInstallmentRepo) Update(ctx context.Context, i *domain.PaymentInstallment) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInstallmentRepo) Delete(ctx context.Context, companyID, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockInstallmentRepo) ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentInstallment, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentInstallment), args.Error(1)
}

func (m *MockInstallmentRepo) MarkPaidInvoice(ctx context.Context, companyID, installmentID int64, tax float64, now time.Time) (*domain.PaymentInstallment, *domain.PaymentDocument, error) {
	args := m.Called(ctx, companyID, installmentID, tax, now)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.PaymentInstallment), args.Get(1).(*domain.PaymentDocument), args.Error(2)
}

type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) Create(ctx context.Context, rc *domain.PaymentReceipt) error {
	args := m.Called(ctx, rc)
	if rc != nil {
		rc.ID = 701
	}
	return args.Error(0)
}

func (m *MockReceiptRepo) CountByInstallmentID(ctx context.Context, companyID, installmentID int64) (int64, error) {
	args := m.Called(ctx, companyID, installmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReceiptRepo) ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentReceipt, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentReceipt), args.Error(1)
}

type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, d *domain.PaymentDocument) error {
	args := m.Called(ctx, d)
	if d != nil {
		d.ID = 801
	}
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentDocument, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentDocument), args.Error(1)
}

func (m *MockDocumentRepo) Delete(ctx context.Context, companyID, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockDocumentRepo) ListByProjectID(ctx context.Context, companyID, projectID int64) ([]domain.PaymentDocument, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDocument), args.Error(1)
}

type MockProjectReader struct {
	mock.Mock
}

func (m *MockProjectReader) GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

type MockObjectResolver struct {
	mock.Mock
}

func (m *MockObjectResolver) GetByID(ctx context.Context, companyID int64, id string) (*domain.Upload, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

// fakeTotalsCache is an in-memory TotalsCache tracking invalidations.
type fakeTotalsCache struct {
	store       map[string]*domain.PaymentTotals
	invalidated int
}

func newFakeTotalsCache() *fakeTotalsCache {
	return &fakeTotalsCache{store: make(map[string]*domain.PaymentTotals)}
}

func (c *fakeTotalsCache) key(companyID, projectID int64) string {
	return fmt.Sprintf("%d:%d", companyID, projectID)
}

func (c *fakeTotalsCache) Get(ctx context.Context, companyID, projectID int64) (*domain.PaymentTotals, bool) {
	t, ok := c.store[c.key(companyID, projectID)]
	return t, ok
}

func (c *fakeTotalsCache) Set(ctx context.Context, companyID, projectID int64, t *domain.PaymentTotals) {
	c.store[c.key(companyID, projectID)] = t
}

func (c *fakeTotalsCache) Invalidate(ctx context.Context, companyID, projectID int64) {
	delete(c.store, c.key(companyID, projectID))
	c.invalidated++
}

type fakeNotifier struct {
	calls []int64 // recipient user IDs
}

func (n *fakeNotifier) Notify(ctx context.Context, userID int64, typ domain.NotificationType, title, message, entityType string, entityID int64) error {
	n.calls = append(n.calls, userID)
	return nil
}

type serviceFixture struct {
	schedules    *MockScheduleRepo
	installments *MockInstallmentRepo
	receipts     *MockReceiptRepo
	documents    *MockDocumentRepo
	projects     *MockProjectReader
	objects      *MockObjectResolver
	notifier     *fakeNotifier
	totals       *fakeTotalsCache
	service      *Service
}

func newFixture() *serviceFixture {
	f := &serviceFixture{
		schedules:    new(MockScheduleRepo),
		installments: new(MockInstallmentRepo),
		receipts:     new(MockReceiptRepo),
		documents:    new(MockDocumentRepo),
		projects:     new(MockProjectReader),
		objects:      new(MockObjectResolver),
		notifier:     &fakeNotifier{},
		totals:       newFakeTotalsCache(),
	}
	f.service = NewService(
		f.schedules, f.installments, f.receipts, f.documents,
		f.projects, f.objects, f.notifier, f.totals, zap.NewNop(),
	)
	return f
}

const (
	companyID = int64(1)
	projectID = int64(10)
	userID    = int64(42)
)

func testProject() *domain.Project {
	return &domain.Project{ID: projectID, CompanyID: companyID, Name: "Riverside Duplex", CreatedBy: 7}
}

func TestEnsureSchedule_CreatesOnceWithDefaults(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.projects.On("GetByID", ctx, companyID, projectID).Return(testProject(), nil)

	sched := &domain.PaymentSchedule{ID: 100, CompanyID: companyID, ProjectID: projectID, Title: "Payment Schedule"}
	f.schedules.On("EnsureForProject", ctx, companyID, projectID, "Payment Schedule", "Project payment tracking").
		Return(sched, true, nil).Once()
	f.schedules.On("EnsureForProject", ctx, companyID, projectID, "Payment Schedule", "Project payment tracking").
		Return(sched, false, nil).Once()

	got, created, err := f.service.EnsureSchedule(ctx, companyID, CreateScheduleRequest{ProjectID: projectID})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(100), got.ID)

	// A second bootstrap returns the same schedule without creating another.
	again, created, err := f.service.EnsureSchedule(ctx, companyID, CreateScheduleRequest{ProjectID: projectID})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, got.ID, again.ID)

	f.schedules.AssertExpectations(t)
}

func TestEnsureSchedule_ProjectMissing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.projects.On("GetByID", ctx, companyID, int64(999)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := f.service.EnsureSchedule(ctx, companyID, CreateScheduleRequest{ProjectID: 999})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCreateInstallment_DefaultsAndInvalidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sched := &domain.PaymentSchedule{ID: 100, CompanyID: companyID, ProjectID: projectID}
	f.schedules.On("GetByID", ctx, companyID, int64(100)).Return(sched, nil)
	f.installments.On("Create", ctx, mock.AnythingOfType("*domain.PaymentInstallment")).Return(nil)

	f.totals.Set(ctx, companyID, projectID, &domain.PaymentTotals{TotalAmount: 1})

	amount := 2500.0
	inst, err := f.service.CreateInstallment(ctx, companyID, CreateInstallmentRequest{
		ScheduleID: 100,
		ProjectID:  projectID,
		Name:       "Foundation complete",
		Amount:     &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InstallmentPlanned, inst.Status)
	assert.Equal(t, "USD", inst.Currency)
	assert.Equal(t, int64(501), inst.ID)

	// Creating an installment drops the cached totals.
	_, ok := f.totals.Get(ctx, companyID, projectID)
	assert.False(t, ok)
}

func TestCreateInstallment_CannotBeBornPaid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sched := &domain.PaymentSchedule{ID: 100, CompanyID: companyID, ProjectID: projectID}
	f.schedules.On("GetByID", ctx, companyID, int64(100)).Return(sched, nil)

	amount := 100.0
	_, err := f.service.CreateInstallment(ctx, companyID, CreateInstallmentRequest{
		ScheduleID: 100,
		ProjectID:  projectID,
		Name:       "Final payment",
		Amount:     &amount,
		Status:     "paid",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	f.installments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateInstallment_PaidIsImmutable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	paidAt := time.Now()
	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID,
		Status: domain.InstallmentPaid, PaidAt: &paidAt,
	}, nil)

	name := "Renamed"
	_, err := f.service.UpdateInstallment(ctx, companyID, 501, UpdateInstallmentRequest{Name: &name})
	assert.ErrorIs(t, err, ErrInstallmentPaid)
	f.installments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateInstallment_CannotSetPaidDirectly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID, Status: domain.InstallmentPayable,
	}, nil)

	status := "paid"
	_, err := f.service.UpdateInstallment(ctx, companyID, 501, UpdateInstallmentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMarkPaid_RequiresReceipt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID,
		Name: "Framing", Amount: 5000, Status: domain.InstallmentPayable,
	}, nil)
	f.receipts.On("CountByInstallmentID", ctx, companyID, int64(501)).Return(int64(0), nil)

	_, _, err := f.service.MarkPaid(ctx, companyID, userID, 501, 0)
	assert.ErrorIs(t, err, ErrReceiptRequired)
	f.installments.AssertNotCalled(t, "MarkPaidInvoice",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkPaid_GeneratesInvoiceAndNotifies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID,
		Name: "Framing", Amount: 5000, Status: domain.InstallmentPayable,
	}, nil)
	f.receipts.On("CountByInstallmentID", ctx, companyID, int64(501)).Return(int64(1), nil)

	paidAt := time.Now()
	paid := &domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID,
		Name: "Framing", Amount: 5000, Status: domain.InstallmentPaid, PaidAt: &paidAt,
	}
	invoice := &domain.PaymentDocument{
		ID: 801, CompanyID: companyID, ProjectID: projectID,
		DocumentType: domain.DocumentInvoice, InvoiceNo: "INV-2026-0001", Total: 5250,
	}
	f.installments.On("MarkPaidInvoice", ctx, companyID, int64(501), 250.0, mock.AnythingOfType("time.Time")).
		Return(paid, invoice, nil)
	f.projects.On("GetByID", ctx, companyID, projectID).Return(testProject(), nil)

	f.totals.Set(ctx, companyID, projectID, &domain.PaymentTotals{})

	gotInst, gotInvoice, err := f.service.MarkPaid(ctx, companyID, userID, 501, 250)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallmentPaid, gotInst.Status)
	assert.Equal(t, "INV-2026-0001", gotInvoice.InvoiceNo)
	assert.Equal(t, 5250.0, gotInvoice.Total)

	_, ok := f.totals.Get(ctx, companyID, projectID)
	assert.False(t, ok, "totals cache should be invalidated")

	// Project creator gets notified, not the acting user.
	require.Len(t, f.notifier.calls, 1)
	assert.Equal(t, int64(7), f.notifier.calls[0])
}

func TestMarkPaid_PlannedIsNotPayable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID, Status: domain.InstallmentPlanned,
	}, nil)

	_, _, err := f.service.MarkPaid(ctx, companyID, userID, 501, 0)
	assert.ErrorIs(t, err, ErrNotPayable)
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID, Status: domain.InstallmentPaid,
	}, nil)

	_, _, err := f.service.MarkPaid(ctx, companyID, userID, 501, 0)
	assert.ErrorIs(t, err, ErrInstallmentPaid)
}

func TestCreateReceipt_ValidatesFile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID, Status: domain.InstallmentPayable,
	}, nil)
	// The wired resolver is objects.Service, so the mock returns its
	// sentinel, not a bare gorm error.
	f.objects.On("GetByID", ctx, companyID, "missing-file").Return(nil, objects.ErrObjectNotFound)

	_, err := f.service.CreateReceipt(ctx, companyID, userID, CreateReceiptRequest{
		InstallmentID: 501,
		ProjectID:     projectID,
		ReceiptType:   "wire",
		FileID:        "missing-file",
	})
	assert.ErrorIs(t, err, ErrFileNotFound)
	f.receipts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDocument_DanglingFileRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.projects.On("GetByID", ctx, companyID, projectID).Return(testProject(), nil)
	f.objects.On("GetByID", ctx, companyID, "gone").Return(nil, objects.ErrObjectNotFound)

	_, err := f.service.CreateDocument(ctx, companyID, userID, CreateDocumentRequest{
		ProjectID: projectID,
		Title:     "Signed contract",
		FileID:    "gone",
	})
	assert.ErrorIs(t, err, ErrFileNotFound)
	f.documents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReceipt_Succeeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID, Status: domain.InstallmentPayable,
	}, nil)
	f.objects.On("GetByID", ctx, companyID, "file-abc").Return(&domain.Upload{ID: "file-abc"}, nil)
	f.receipts.On("Create", ctx, mock.AnythingOfType("*domain.PaymentReceipt")).Return(nil)

	rc, err := f.service.CreateReceipt(ctx, companyID, userID, CreateReceiptRequest{
		InstallmentID: 501,
		ProjectID:     projectID,
		ReceiptType:   "wire",
		ReferenceNo:   "WT-9001",
		FileID:        "file-abc",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReceiptWire, rc.ReceiptType)
	assert.Equal(t, userID, rc.UploadedBy)
	assert.Equal(t, projectID, rc.ProjectID)
}

func TestCreateReceipt_RejectsPaidInstallment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.installments.On("GetByID", ctx, companyID, int64(501)).Return(&domain.PaymentInstallment{
		ID: 501, CompanyID: companyID, ProjectID: projectID, Status: domain.InstallmentPaid,
	}, nil)

	_, err := f.service.CreateReceipt(ctx, companyID, userID, CreateReceiptRequest{
		InstallmentID: 501,
		ProjectID:     projectID,
		ReceiptType:   "check",
		FileID:        "file-abc",
	})
	assert.ErrorIs(t, err, ErrInstallmentPaid)
}

func TestGetTotals_ComputesAndCaches(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.projects.On("GetByID", ctx, companyID, projectID).Return(testProject(), nil)
	f.installments.On("ListByProjectID", ctx, companyID, projectID).Return([]domain.PaymentInstallment{
		{ID: 1, Amount: 1000, Status: domain.InstallmentPaid},
		{ID: 2, Amount: 2000, Status: domain.InstallmentPayable, NextMilestone: true},
		{ID: 3, Amount: 1000, Status: domain.InstallmentPlanned},
	}, nil).Once()

	totals, err := f.service.GetTotals(ctx, companyID, projectID)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, totals.TotalAmount)
	assert.Equal(t, 1000.0, totals.TotalPaid)
	assert.Equal(t, 3000.0, totals.TotalPending)
	assert.Equal(t, 25.0, totals.PercentComplete)
	require.NotNil(t, totals.NextMilestone)
	assert.Equal(t, int64(2), totals.NextMilestone.ID)

	// Second read comes from the cache; ListByProjectID ran only once.
	cached, err := f.service.GetTotals(ctx, companyID, projectID)
	require.NoError(t, err)
	assert.Equal(t, totals.TotalAmount, cached.TotalAmount)
	f.installments.AssertExpectations(t)
}

func TestComputeTotals_EmptyAndFallback(t *testing.T) {
	empty := computeTotals(nil)
	assert.Zero(t, empty.TotalAmount)
	assert.Zero(t, empty.PercentComplete)
	assert.Nil(t, empty.NextMilestone)

	// Without an explicit flag the first unpaid installment is the milestone.
	t2 := computeTotals([]domain.PaymentInstallment{
		{ID: 1, Amount: 500, Status: domain.InstallmentPaid},
		{ID: 2, Amount: 500, Status: domain.InstallmentPlanned},
	})
	require.NotNil(t, t2.NextMilestone)
	assert.Equal(t, int64(2), t2.NextMilestone.ID)
}

func TestDeleteDocument_InvoicesImmutable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.documents.On("Delete", ctx, companyID, int64(801)).Return(repository.ErrInvoiceImmutable)

	err := f.service.DeleteDocument(ctx, companyID, 801)
	assert.ErrorIs(t, err, ErrInvoiceImmutable)
}

func TestGetProjectPayments_SplitsInvoices(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.projects.On("GetByID", ctx, companyID, projectID).Return(testProject(), nil)
	f.schedules.On("GetByProjectID", ctx, companyID, projectID).
		Return(&domain.PaymentSchedule{ID: 100, ProjectID: projectID}, nil)
	f.installments.On("ListByProjectID", ctx, companyID, projectID).
		Return([]domain.PaymentInstallment{{ID: 501}}, nil)
	f.receipts.On("ListByProjectID", ctx, companyID, projectID).
		Return([]domain.PaymentReceipt{{ID: 701}}, nil)
	f.documents.On("ListByProjectID", ctx, companyID, projectID).
		Return([]domain.PaymentDocument{
			{ID: 801, DocumentType: domain.DocumentInvoice, InvoiceNo: "INV-2026-0001"},
			{ID: 802, DocumentType: domain.DocumentPlain, Title: "Signed contract"},
		}, nil)

	got, err := f.service.GetProjectPayments(ctx, companyID, projectID)
	require.NoError(t, err)
	require.NotNil(t, got.Schedule)
	assert.Len(t, got.Installments, 1)
	assert.Len(t, got.Receipts, 1)
	require.Len(t, got.Invoices, 1)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, "INV-2026-0001", got.Invoices[0].InvoiceNo)
	assert.Equal(t, "Signed contract", got.Documents[0].Title)
}

func TestGetProjectPayments_NoScheduleYet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.projects.On("GetByID", ctx, companyID, projectID).Return(testProject(), nil)
	f.schedules.On("GetByProjectID", ctx, companyID, projectID).Return(nil, gorm.ErrRecordNotFound)
	f.installments.On("ListByProjectID", ctx, companyID, projectID).Return([]domain.PaymentInstallment{}, nil)
	f.receipts.On("ListByProjectID", ctx, companyID, projectID).Return([]domain.PaymentReceipt{}, nil)
	f.documents.On("ListByProjectID", ctx, companyID, projectID).Return([]domain.PaymentDocument{}, nil)

	got, err := f.service.GetProjectPayments(ctx, companyID, projectID)
	require.NoError(t, err)
	assert.Nil(t, got.Schedule)
	assert.Empty(t, got.Installments)
}
