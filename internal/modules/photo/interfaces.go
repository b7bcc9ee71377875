package photo

import (
	"context"

	"buildboard/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p *domain.Photo) error
	GetByID(ctx context.Context, companyID, id int64) (*domain.Photo, error)
	Delete(ctx context.Context, companyID, id int64) error
	List(ctx context.Context, companyID, projectID int64) ([]domain.Photo, error)
}

type ProjectReader interface {
	GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error)
}

// ObjectResolver verifies that a referenced file_id names a stored object.
// A missing object yields an error matching gorm.ErrRecordNotFound.
type ObjectResolver interface {
	GetByID(ctx context.Context, companyID int64, id string) (*domain.Upload, error)
}
