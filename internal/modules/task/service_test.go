package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/domain"
	"buildboard/internal/repository"
)

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	if t != nil {
		t.ID = 301 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, companyID, id int64) (*domain.Task, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, companyID, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockTaskRepo) List(ctx context.Context, companyID int64, f repository.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, companyID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
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

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fixture struct {
	repo     *MockTaskRepo
	projects *MockProjectReader
	users    *MockUserReader
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:     new(MockTaskRepo),
		projects: new(MockProjectReader),
		users:    new(MockUserReader),
	}
	f.service = NewService(f.repo, f.projects, f.users, zap.NewNop())
	return f
}

func int64p(v int64) *int64 { return &v }

func TestCreate_ProjectCategoryRequiresProject(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), 1, 7, CreateTaskRequest{
		Title:    "Pour foundation",
		Category: "project",
	})
	assert.ErrorIs(t, err, ErrProjectRequired)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_SubcontractorRequiresAssignee(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), 1, 7, CreateTaskRequest{
		Title:    "Install HVAC",
		Category: "subcontractor",
	})
	assert.ErrorIs(t, err, ErrAssigneeRequired)
}

func TestCreate_DefaultsStatusAndPriority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

	task, err := f.service.Create(ctx, 1, 7, CreateTaskRequest{
		Title:    "File permits",
		Category: "administrative",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Nil(t, task.CompletedAt)
}

func TestCreate_AcceptsLegacyDashedStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

	task, err := f.service.Create(ctx, 1, 7, CreateTaskRequest{
		Title:    "Grade site",
		Category: "general",
		Status:   "in-progress",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, task.Status)
}

func TestCreate_AssigneeMustBeInCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByID", ctx, int64(55)).Return(&domain.User{ID: 55, CompanyID: 2}, nil)

	_, err := f.service.Create(ctx, 1, 7, CreateTaskRequest{
		Title:      "Install HVAC",
		Category:   "subcontractor",
		AssigneeID: int64p(55),
	})
	assert.ErrorIs(t, err, ErrAssigneeNotFound)
}

func TestUpdate_CompletionTogglesTimestamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("GetByID", ctx, int64(1), int64(301)).Return(&domain.Task{
		ID: 301, CompanyID: 1, Title: "Grade site",
		Category: domain.TaskCategoryGeneral, Status: domain.TaskInProgress,
	}, nil).Once()
	f.repo.On("Update", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

	status := "completed"
	task, err := f.service.Update(ctx, 1, 301, UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)

	// Reopening clears the completion timestamp.
	f.repo.On("GetByID", ctx, int64(1), int64(301)).Return(task, nil).Once()
	reopen := "pending"
	task, err = f.service.Update(ctx, 1, 301, UpdateTaskRequest{Status: &reopen})
	require.NoError(t, err)
	assert.Nil(t, task.CompletedAt)
}

func TestList_ComposedFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	want := repository.TaskFilter{
		Status:     "in_progress",
		Priority:   "high",
		Category:   "project",
		AssigneeID: 55,
		ProjectID:  10,
		Query:      "hvac",
	}
	f.repo.On("List", ctx, int64(1), want).Return([]domain.Task{{ID: 301}}, nil)

	got, err := f.service.List(ctx, 1, ListTasksQuery{
		Status:     "in-progress", // legacy spelling normalized before filtering
		Priority:   "high",
		Category:   "project",
		AssigneeID: 55,
		ProjectID:  10,
		Query:      "hvac",
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	f.repo.AssertExpectations(t)
}

func TestListGrouped_BucketsByProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("List", ctx, int64(1), repository.TaskFilter{}).Return([]domain.Task{
		{ID: 1, ProjectID: int64p(10)},
		{ID: 2, ProjectID: nil},
		{ID: 3, ProjectID: int64p(10)},
		{ID: 4, ProjectID: int64p(20)},
	}, nil)
	f.projects.On("GetByID", ctx, int64(1), int64(10)).Return(&domain.Project{ID: 10, Name: "Riverside Duplex"}, nil)
	f.projects.On("GetByID", ctx, int64(1), int64(20)).Return(&domain.Project{ID: 20, Name: "Hill Country Remodel"}, nil)

	groups, err := f.service.ListGrouped(ctx, 1, ListTasksQuery{})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Riverside Duplex", groups[0].ProjectName)
	assert.Len(t, groups[0].Tasks, 2)
	assert.Equal(t, "Hill Country Remodel", groups[1].ProjectName)

	last := groups[len(groups)-1]
	assert.Nil(t, last.ProjectID)
	assert.Equal(t, "Unassigned", last.ProjectName)
	assert.Len(t, last.Tasks, 1)
}

func TestSummary_SplitsOverdueAndUpcoming(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	inThreeDays := now.Add(3 * 24 * time.Hour)
	nextMonth := now.Add(30 * 24 * time.Hour)

	f.repo.On("List", ctx, int64(1), repository.TaskFilter{}).Return([]domain.Task{
		{ID: 1, DueDate: &yesterday, Status: domain.TaskInProgress},
		{ID: 2, DueDate: &yesterday, Status: domain.TaskCompleted}, // done, not overdue
		{ID: 3, DueDate: &inThreeDays, Status: domain.TaskPending},
		{ID: 4, DueDate: &nextMonth, Status: domain.TaskPending},
		{ID: 5, Status: domain.TaskPending}, // no due date
	}, nil)

	sum, err := f.service.Summary(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sum.Overdue, 1)
	assert.Equal(t, int64(1), sum.Overdue[0].ID)
	require.Len(t, sum.DueThisWeek, 1)
	assert.Equal(t, int64(3), sum.DueThisWeek[0].ID)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("Delete", ctx, int64(1), int64(999)).Return(gorm.ErrRecordNotFound)

	err := f.service.Delete(ctx, 1, 999)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
