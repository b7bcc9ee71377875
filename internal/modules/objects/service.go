package objects

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"buildboard/internal/domain"
)

const (
	MaxFileSize = 50 * 1024 * 1024 // 50 MB
	tokenTTL    = 15 * time.Minute
)

// AllowedMimeTypes defines which file types are accepted.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

type pendingUpload struct {
	companyID int64
	userID    int64
	expiresAt time.Time
}

// Service implements the three-step upload protocol on local disk:
// issue an upload URL, accept the raw PUT, record the object. The
// frontend derives file_id from the URL it PUT to.
type Service struct {
	repo       Repository
	baseDir    string // absolute path to uploads dir
	staticBase string // URL prefix for serving files
	publicURL  string // external base URL for upload/download links

	mu      sync.Mutex
	pending map[string]pendingUpload
}

func NewService(repo Repository, baseDir, staticBase, publicURL string) *Service {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &Service{
		repo:       repo,
		baseDir:    baseDir,
		staticBase: staticBase,
		publicURL:  strings.TrimRight(publicURL, "/"),
		pending:    make(map[string]pendingUpload),
	}
}

// CreateUploadURL issues a one-time URL the client PUTs the file bytes to.
func (s *Service) CreateUploadURL(companyID, userID int64) string {
	token := uuid.New().String()

	s.mu.Lock()
	s.pending[token] = pendingUpload{
		companyID: companyID,
		userID:    userID,
		expiresAt: time.Now().Add(tokenTTL),
	}
	s.mu.Unlock()

	return s.publicURL + "/api/objects/upload/" + token
}

func (s *Service) claimToken(token string) (pendingUpload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[token]
	if !ok {
		return pendingUpload{}, false
	}
	delete(s.pending, token)
	if time.Now().After(p.expiresAt) {
		return pendingUpload{}, false
	}
	return p, true
}

// Store accepts the raw body PUT against an issued upload URL. Any failure
// leaves no object record behind.
func (s *Service) Store(ctx context.Context, token, declaredType, originalName string, body io.Reader) (*domain.Upload, error) {
	p, ok := s.claimToken(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload body: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	mimeType := strings.Split(declaredType, ";")[0]
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = strings.Split(http.DetectContentType(data), ";")[0]
	}
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	filename := token + mimeToExt(mimeType)
	absPath := filepath.Join(absDir, filename)
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	relPath := relDir + "/" + filename
	upload := &domain.Upload{
		ID:           token,
		CompanyID:    p.companyID,
		UserID:       p.userID,
		OriginalName: originalName,
		FilePath:     relPath,
		FileURL:      s.staticBase + "/" + relPath,
		MimeType:     mimeType,
		Size:         int64(len(data)),
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, upload); err != nil {
		_ = os.Remove(absPath) // rollback file on DB error
		return nil, fmt.Errorf("save upload record: %w", err)
	}

	return upload, nil
}

// ResolveDownload maps a stored file path or object ID to a servable URL.
func (s *Service) ResolveDownload(ctx context.Context, companyID int64, filePath string) (string, error) {
	filePath = strings.TrimPrefix(filePath, s.staticBase+"/")

	u, err := s.repo.GetByPath(ctx, companyID, filePath)
	if err != nil {
		// The client may hand us the object ID instead of the path.
		u, err = s.repo.GetByID(ctx, companyID, filePath)
		if err != nil {
			return "", err
		}
	}
	return s.publicURL + u.FileURL, nil
}

// GetByID returns object metadata; other modules use it to verify that a
// referenced file_id exists before accepting an entity.
func (s *Service) GetByID(ctx context.Context, companyID int64, id string) (*domain.Upload, error) {
	return s.repo.GetByID(ctx, companyID, id)
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
