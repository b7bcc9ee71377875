package task

import (
	"context"

	"buildboard/internal/domain"
	"buildboard/internal/repository"
)

type Repository interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, companyID, id int64) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, companyID, id int64) error
	List(ctx context.Context, companyID int64, f repository.TaskFilter) ([]domain.Task, error)
}

type ProjectReader interface {
	GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
