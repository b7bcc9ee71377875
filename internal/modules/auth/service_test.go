package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) GenerateToken(userID, companyID int64, role string) (string, error) {
	args := m.Called(userID, companyID, role)
	return args.String(0), args.Error(1)
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           42,
		CompanyID:    7,
		Email:        "dana@builders.test",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Dana",
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepo)
	tokens := new(MockTokenGenerator)
	service := NewService(users, tokens)

	user := testUser(t, "hunter2")
	users.On("GetByEmail", mock.Anything, "dana@builders.test").Return(user, nil)
	tokens.On("GenerateToken", int64(42), int64(7), "admin").Return("signed-token", nil)

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    "dana@builders.test",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, user, res.User)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	tokens := new(MockTokenGenerator)
	service := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "dana@builders.test").Return(testUser(t, "hunter2"), nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "dana@builders.test",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	service := NewService(users, new(MockTokenGenerator))

	users.On("GetByEmail", mock.Anything, "ghost@builders.test").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@builders.test",
		Password: "whatever",
	})

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUser_NotFound(t *testing.T) {
	users := new(MockUserRepo)
	service := NewService(users, new(MockTokenGenerator))

	users.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
