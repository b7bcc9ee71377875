package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

type photoModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CompanyID   int64     `gorm:"column:company_id;index"`
	ProjectID   int64     `gorm:"column:project_id;index"`
	UserID      int64     `gorm:"column:user_id"`
	Filename    string    `gorm:"column:filename"`
	FileID      string    `gorm:"column:file_id"`
	Description *string   `gorm:"column:description;type:text"`
	Tags        string    `gorm:"column:tags"` // JSON-encoded string array
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (photoModel) TableName() string { return "photos" }

func tagsToString(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(tags)
	return string(data)
}

func stringToTags(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return strings.Split(s, ",")
	}
	return tags
}

func toDomainPhoto(m photoModel) *domain.Photo {
	return &domain.Photo{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		ProjectID:   m.ProjectID,
		UserID:      m.UserID,
		Filename:    m.Filename,
		FileID:      m.FileID,
		Description: strOrEmpty(m.Description),
		Tags:        stringToTags(m.Tags),
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PhotoRepository) Create(ctx context.Context, p *domain.Photo) error {
	m := photoModel{
		CompanyID:   p.CompanyID,
		ProjectID:   p.ProjectID,
		UserID:      p.UserID,
		Filename:    p.Filename,
		FileID:      p.FileID,
		Description: strOrNil(p.Description),
		Tags:        tagsToString(p.Tags),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainPhoto(m)
	return nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Photo, error) {
	var m photoModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainPhoto(m), nil
}

func (r *PhotoRepository) Delete(ctx context.Context, companyID, id int64) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(&photoModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PhotoRepository) List(ctx context.Context, companyID, projectID int64) ([]domain.Photo, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if projectID != 0 {
		q = q.Where("project_id = ?", projectID)
	}

	var rows []photoModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Photo, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPhoto(m))
	}
	return out, nil
}
