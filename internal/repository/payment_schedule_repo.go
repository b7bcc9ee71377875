package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type PaymentScheduleRepository struct {
	db *gorm.DB
}

func NewPaymentScheduleRepository(db *gorm.DB) *PaymentScheduleRepository {
	return &PaymentScheduleRepository{db: db}
}

type paymentScheduleModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	CompanyID int64     `gorm:"column:company_id;index"`
	ProjectID int64     `gorm:"column:project_id;uniqueIndex:idx_one_schedule_per_project"`
	Title     string    `gorm:"column:title"`
	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (paymentScheduleModel) TableName() string { return "payment_schedules" }

func toDomainSchedule(m paymentScheduleModel) *domain.PaymentSchedule {
	return &domain.PaymentSchedule{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		ProjectID: m.ProjectID,
		Title:     m.Title,
		Notes:     strOrEmpty(m.Notes),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EnsureForProject returns the project's schedule, creating it when absent.
// The unique index on project_id makes concurrent bootstrap calls safe: the
// loser of the race re-reads the winner's row.
func (r *PaymentScheduleRepository) EnsureForProject(ctx context.Context, companyID, projectID int64, title, notes string) (*domain.PaymentSchedule, bool, error) {
	existing, err := r.GetByProjectID(ctx, companyID, projectID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	m := paymentScheduleModel{
		CompanyID: companyID,
		ProjectID: projectID,
		Title:     title,
		Notes:     strOrNil(notes),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			existing, gerr := r.GetByProjectID(ctx, companyID, projectID)
			if gerr != nil {
				return nil, false, gerr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return toDomainSchedule(m), true, nil
}

func (r *PaymentScheduleRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.PaymentSchedule, error) {
	var m paymentScheduleModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainSchedule(m), nil
}

func (r *PaymentScheduleRepository) GetByProjectID(ctx context.Context, companyID, projectID int64) (*domain.PaymentSchedule, error) {
	var m paymentScheduleModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND project_id = ?", companyID, projectID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainSchedule(m), nil
}

// isUniqueViolation covers both backends: pgconn error 23505 on Postgres,
// gorm's translated ErrDuplicatedKey, and the raw constraint message the
// CGO-free sqlite driver reports.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
