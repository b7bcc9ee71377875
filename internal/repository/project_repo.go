package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	CompanyID       int64      `gorm:"column:company_id;index"`
	Name            string     `gorm:"column:name"`
	Description     *string    `gorm:"column:description;type:text"`
	Location        *string    `gorm:"column:location"`
	Status          string     `gorm:"column:status"`
	Progress        int        `gorm:"column:progress"`
	DueDate         *time.Time `gorm:"column:due_date"`
	BudgetCents     int64      `gorm:"column:budget_cents"`
	ActualCostCents int64      `gorm:"column:actual_cost_cents"`
	ClientName      *string    `gorm:"column:client_name"`
	ClientEmail     *string    `gorm:"column:client_email"`
	ClientPhone     *string    `gorm:"column:client_phone"`
	CreatedBy       int64      `gorm:"column:created_by"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainProject(m projectModel) *domain.Project {
	return &domain.Project{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		Name:            m.Name,
		Description:     strOrEmpty(m.Description),
		Location:        strOrEmpty(m.Location),
		Status:          domain.ProjectStatus(m.Status),
		Progress:        m.Progress,
		DueDate:         m.DueDate,
		BudgetCents:     m.BudgetCents,
		ActualCostCents: m.ActualCostCents,
		ClientName:      strOrEmpty(m.ClientName),
		ClientEmail:     strOrEmpty(m.ClientEmail),
		ClientPhone:     strOrEmpty(m.ClientPhone),
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	return projectModel{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		Name:            p.Name,
		Description:     strOrNil(p.Description),
		Location:        strOrNil(p.Location),
		Status:          string(p.Status),
		Progress:        p.Progress,
		DueDate:         p.DueDate,
		BudgetCents:     p.BudgetCents,
		ActualCostCents: p.ActualCostCents,
		ClientName:      strOrNil(p.ClientName),
		ClientEmail:     strOrNil(p.ClientEmail),
		ClientPhone:     strOrNil(p.ClientPhone),
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProjectFilter narrows List results. Zero values mean "no filter".
type ProjectFilter struct {
	Status   string
	Location string
	Query    string // substring match on name/description
	Sort     string // "recency" (default) or "name"
	Order    string // "asc" or "desc"
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainProject(m)
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error) {
	var m projectModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainProject(m), nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	return r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("id = ? AND company_id = ?", p.ID, p.CompanyID).
		Select("*").Omit("id", "company_id", "created_by", "created_at").
		Updates(&m).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, companyID, id int64) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(&projectModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProjectRepository) List(ctx context.Context, companyID int64, f ProjectFilter) ([]domain.Project, error) {
	q := r.db.WithContext(ctx).Model(&projectModel{}).Where("company_id = ?", companyID)

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	dir := "DESC"
	if strings.EqualFold(f.Order, "asc") {
		dir = "ASC"
	}
	switch f.Sort {
	case "name":
		q = q.Order("name " + dir)
	default:
		q = q.Order("created_at " + dir)
	}

	var rows []projectModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProject(m))
	}
	return out, nil
}
