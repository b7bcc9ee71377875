package objects

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByID(ctx context.Context, companyID int64, id string) (*domain.Upload, error)
	GetByPath(ctx context.Context, companyID int64, path string) (*domain.Upload, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *domain.Upload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) GetByID(ctx context.Context, companyID int64, id string) (*domain.Upload, error) {
	var u domain.Upload
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByPath(ctx context.Context, companyID int64, path string) (*domain.Upload, error) {
	var u domain.Upload
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND file_path = ?", companyID, path).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
