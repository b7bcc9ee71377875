package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	CompanyID   int64      `gorm:"column:company_id;index"`
	ProjectID   *int64     `gorm:"column:project_id;index"`
	AssigneeID  *int64     `gorm:"column:assignee_id;index"`
	Title       string     `gorm:"column:title"`
	Description *string    `gorm:"column:description;type:text"`
	Category    string     `gorm:"column:category"`
	Status      string     `gorm:"column:status"`
	Priority    string     `gorm:"column:priority"`
	DueDate     *time.Time `gorm:"column:due_date"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	IsMilestone bool       `gorm:"column:is_milestone"`
	CreatedBy   int64      `gorm:"column:created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (taskModel) TableName() string { return "tasks" }

func toDomainTask(m taskModel) *domain.Task {
	return &domain.Task{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		ProjectID:   m.ProjectID,
		AssigneeID:  m.AssigneeID,
		Title:       m.Title,
		Description: strOrEmpty(m.Description),
		Category:    domain.TaskCategory(m.Category),
		Status:      domain.TaskStatus(m.Status),
		Priority:    domain.TaskPriority(m.Priority),
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
		IsMilestone: m.IsMilestone,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toTaskModel(t *domain.Task) taskModel {
	return taskModel{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		ProjectID:   t.ProjectID,
		AssigneeID:  t.AssigneeID,
		Title:       t.Title,
		Description: strOrNil(t.Description),
		Category:    string(t.Category),
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		IsMilestone: t.IsMilestone,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TaskFilter narrows List results. Zero values mean "no filter".
type TaskFilter struct {
	Status     string
	Priority   string
	Category   string
	AssigneeID int64
	ProjectID  int64
	Query      string // substring match on title/description
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	m := toTaskModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*t = *toDomainTask(m)
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Task, error) {
	var m taskModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainTask(m), nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	m := toTaskModel(t)
	return r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("id = ? AND company_id = ?", t.ID, t.CompanyID).
		Select("*").Omit("id", "company_id", "created_by", "created_at").
		Updates(&m).Error
}

func (r *TaskRepository) Delete(ctx context.Context, companyID, id int64) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(&taskModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, companyID int64, f TaskFilter) ([]domain.Task, error) {
	q := r.db.WithContext(ctx).Model(&taskModel{}).Where("company_id = ?", companyID)

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.AssigneeID != 0 {
		q = q.Where("assignee_id = ?", f.AssigneeID)
	}
	if f.ProjectID != 0 {
		q = q.Where("project_id = ?", f.ProjectID)
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var rows []taskModel
	if err := q.Order("due_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTask(m))
	}
	return out, nil
}
