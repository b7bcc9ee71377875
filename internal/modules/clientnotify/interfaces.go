package clientnotify

import (
	"context"

	"buildboard/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s *domain.NotificationSetting) error
	GetByID(ctx context.Context, companyID, id int64) (*domain.NotificationSetting, error)
	Update(ctx context.Context, s *domain.NotificationSetting) error
	Delete(ctx context.Context, companyID, id int64) error
	List(ctx context.Context, companyID, projectID int64) ([]domain.NotificationSetting, error)
}

type ProjectReader interface {
	GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error)
}
