package project

import (
	"context"

	"buildboard/internal/domain"
	"buildboard/internal/repository"
)

type Repository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, companyID, id int64) error
	List(ctx context.Context, companyID int64, f repository.ProjectFilter) ([]domain.Project, error)
}
