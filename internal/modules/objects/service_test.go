package objects

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"buildboard/internal/domain"
)

type MockObjectRepo struct {
	mock.Mock
}

func (m *MockObjectRepo) Create(ctx context.Context, u *domain.Upload) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockObjectRepo) GetByID(ctx context.Context, companyID int64, id string) (*domain.Upload, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockObjectRepo) GetByPath(ctx context.Context, companyID int64, path string) (*domain.Upload, error) {
	args := m.Called(ctx, companyID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func newTestService(t *testing.T) (*Service, *MockObjectRepo) {
	t.Helper()
	repo := new(MockObjectRepo)
	return NewService(repo, t.TempDir(), "/static/uploads", ""), repo
}

func issueToken(t *testing.T, s *Service) string {
	t.Helper()
	url := s.CreateUploadURL(1, 42)
	require.True(t, strings.HasPrefix(url, "/api/objects/upload/"))
	return strings.TrimPrefix(url, "/api/objects/upload/")
}

func TestStore_HappyPath(t *testing.T) {
	s, repo := newTestService(t)
	token := issueToken(t, s)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.ID == token && u.CompanyID == 1 && u.UserID == 42 && u.MimeType == "application/pdf"
	})).Return(nil)

	u, err := s.Store(context.Background(), token, "application/pdf", "receipt.pdf", bytes.NewReader([]byte("%PDF-1.4 data")))
	require.NoError(t, err)

	assert.Equal(t, "receipt.pdf", u.OriginalName)
	assert.True(t, strings.HasSuffix(u.FilePath, ".pdf"))
	assert.True(t, strings.HasPrefix(u.FileURL, "/static/uploads/"))
	repo.AssertExpectations(t)
}

func TestStore_TokenIsSingleUse(t *testing.T) {
	s, repo := newTestService(t)
	token := issueToken(t, s)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := s.Store(context.Background(), token, "image/png", "a.png", bytes.NewReader([]byte{0x89, 'P', 'N', 'G'}))
	require.NoError(t, err)

	_, err = s.Store(context.Background(), token, "image/png", "a.png", bytes.NewReader([]byte{0x89, 'P', 'N', 'G'}))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStore_UnknownToken(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Store(context.Background(), "not-issued", "image/png", "a.png", bytes.NewReader([]byte{1}))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStore_EmptyBody(t *testing.T) {
	s, _ := newTestService(t)
	token := issueToken(t, s)

	_, err := s.Store(context.Background(), token, "image/png", "a.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestStore_RejectsDisallowedType(t *testing.T) {
	s, _ := newTestService(t)
	token := issueToken(t, s)

	_, err := s.Store(context.Background(), token, "application/x-msdownload", "evil.exe", bytes.NewReader([]byte("MZ")))
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestResolveDownload_FallsBackToID(t *testing.T) {
	s, repo := newTestService(t)

	repo.On("GetByPath", mock.Anything, int64(1), "abc123").Return(nil, ErrObjectNotFound)
	repo.On("GetByID", mock.Anything, int64(1), "abc123").Return(&domain.Upload{
		ID:      "abc123",
		FileURL: "/static/uploads/2026/08/28/abc123.pdf",
	}, nil)

	url, err := s.ResolveDownload(context.Background(), 1, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/2026/08/28/abc123.pdf", url)
}

func TestResolveDownload_StripsStaticPrefix(t *testing.T) {
	s, repo := newTestService(t)

	repo.On("GetByPath", mock.Anything, int64(1), "2026/08/28/f.png").Return(&domain.Upload{
		ID:      "f",
		FileURL: "/static/uploads/2026/08/28/f.png",
	}, nil)

	url, err := s.ResolveDownload(context.Background(), 1, "/static/uploads/2026/08/28/f.png")
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/2026/08/28/f.png", url)
	repo.AssertExpectations(t)
}
