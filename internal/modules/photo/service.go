package photo

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type Service struct {
	repo     Repository
	projects ProjectReader
	objects  ObjectResolver
	logger   *zap.Logger
}

func NewService(repo Repository, projects ProjectReader, objects ObjectResolver, logger *zap.Logger) *Service {
	return &Service{repo: repo, projects: projects, objects: objects, logger: logger}
}

func (s *Service) Create(ctx context.Context, companyID, userID int64, req CreatePhotoRequest) (*domain.Photo, error) {
	if _, err := s.projects.GetByID(ctx, companyID, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if _, err := s.objects.GetByID(ctx, companyID, req.FileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	p := &domain.Photo{
		CompanyID:   companyID,
		ProjectID:   req.ProjectID,
		UserID:      userID,
		Filename:    req.Filename,
		FileID:      req.FileID,
		Description: req.Description,
		Tags:        normalizeTags(req.Tags),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (*domain.Photo, error) {
	p, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id int64) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}

// List returns the company's photos, optionally narrowed to one project.
func (s *Service) List(ctx context.Context, companyID, projectID int64) ([]domain.Photo, error) {
	return s.repo.List(ctx, companyID, projectID)
}

// normalizeTags trims, lowercases and dedupes, preserving first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
