package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

type companyModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Address   *string   `gorm:"column:address"`
	Phone     *string   `gorm:"column:phone"`
	Email     *string   `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (companyModel) TableName() string { return "companies" }

func toDomainCompany(m companyModel) *domain.Company {
	return &domain.Company{
		ID:        m.ID,
		Name:      m.Name,
		Address:   strOrEmpty(m.Address),
		Phone:     strOrEmpty(m.Phone),
		Email:     strOrEmpty(m.Email),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	m := companyModel{
		Name:    c.Name,
		Address: strOrNil(c.Address),
		Phone:   strOrNil(c.Phone),
		Email:   strOrNil(c.Email),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCompany(m)
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var m companyModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainCompany(m), nil
}
