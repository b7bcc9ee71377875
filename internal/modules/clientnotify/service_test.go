package clientnotify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"buildboard/internal/domain"
)

type MockSettingRepo struct {
	mock.Mock
}

func (m *MockSettingRepo) Create(ctx context.Context, s *domain.NotificationSetting) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 111
	}
	return args.Error(0)
}

func (m *MockSettingRepo) GetByID(ctx context.Context, companyID, id int64) (*domain.NotificationSetting, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationSetting), args.Error(1)
}

func (m *MockSettingRepo) Update(ctx context.Context, s *domain.NotificationSetting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingRepo) Delete(ctx context.Context, companyID, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockSettingRepo) List(ctx context.Context, companyID, projectID int64) ([]domain.NotificationSetting, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationSetting), args.Error(1)
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

func int64p(v int64) *int64 { return &v }

func TestCreate_RequiresMaterialOrGroup(t *testing.T) {
	repo := new(MockSettingRepo)
	svc := NewService(repo, new(MockProjectReader), zap.NewNop())

	_, err := svc.Create(context.Background(), 1, CreateSettingRequest{
		ProjectID:      10,
		FrequencyValue: 2,
		FrequencyUnit:  "week",
	})
	assert.ErrorIs(t, err, ErrTargetRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_WithGroupName(t *testing.T) {
	repo := new(MockSettingRepo)
	projects := new(MockProjectReader)
	svc := NewService(repo, projects, zap.NewNop())
	ctx := context.Background()

	projects.On("GetByID", ctx, int64(1), int64(10)).Return(&domain.Project{ID: 10}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.NotificationSetting")).Return(nil)

	setting, err := svc.Create(ctx, 1, CreateSettingRequest{
		ProjectID:      10,
		GroupName:      "Lumber",
		FrequencyValue: 2,
		FrequencyUnit:  "week",
		NotifyViaEmail: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyWeek, setting.FrequencyUnit)
	assert.True(t, setting.NotifyViaEmail)
}

func TestCreate_RejectsBadFrequency(t *testing.T) {
	repo := new(MockSettingRepo)
	svc := NewService(repo, new(MockProjectReader), zap.NewNop())

	_, err := svc.Create(context.Background(), 1, CreateSettingRequest{
		ProjectID:      10,
		MaterialID:     int64p(5),
		FrequencyValue: 2,
		FrequencyUnit:  "fortnight",
	})
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = svc.Create(context.Background(), 1, CreateSettingRequest{
		ProjectID:      10,
		MaterialID:     int64p(5),
		FrequencyValue: 0,
		FrequencyUnit:  "day",
	})
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestUpdate_CannotStripLastTarget(t *testing.T) {
	repo := new(MockSettingRepo)
	svc := NewService(repo, new(MockProjectReader), zap.NewNop())
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1), int64(111)).Return(&domain.NotificationSetting{
		ID: 111, CompanyID: 1, ProjectID: 10,
		GroupName: "Lumber", FrequencyValue: 1, FrequencyUnit: domain.FrequencyWeek,
	}, nil)

	empty := ""
	_, err := svc.Update(ctx, 1, 111, UpdateSettingRequest{GroupName: &empty})
	assert.ErrorIs(t, err, ErrTargetRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
