package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type NotificationSettingRepository struct {
	db *gorm.DB
}

func NewNotificationSettingRepository(db *gorm.DB) *NotificationSettingRepository {
	return &NotificationSettingRepository{db: db}
}

type notificationSettingModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	CompanyID      int64     `gorm:"column:company_id;index"`
	ProjectID      int64     `gorm:"column:project_id;index"`
	MaterialID     *int64    `gorm:"column:material_id"`
	GroupName      *string   `gorm:"column:group_name"`
	FrequencyValue int       `gorm:"column:frequency_value"`
	FrequencyUnit  string    `gorm:"column:frequency_unit"`
	NotifyViaEmail bool      `gorm:"column:notify_via_email"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (notificationSettingModel) TableName() string { return "notification_settings" }

func toDomainSetting(m notificationSettingModel) *domain.NotificationSetting {
	return &domain.NotificationSetting{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		ProjectID:      m.ProjectID,
		MaterialID:     m.MaterialID,
		GroupName:      strOrEmpty(m.GroupName),
		FrequencyValue: m.FrequencyValue,
		FrequencyUnit:  domain.FrequencyUnit(m.FrequencyUnit),
		NotifyViaEmail: m.NotifyViaEmail,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toSettingModel(s *domain.NotificationSetting) notificationSettingModel {
	return notificationSettingModel{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		ProjectID:      s.ProjectID,
		MaterialID:     s.MaterialID,
		GroupName:      strOrNil(s.GroupName),
		FrequencyValue: s.FrequencyValue,
		FrequencyUnit:  string(s.FrequencyUnit),
		NotifyViaEmail: s.NotifyViaEmail,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (r *NotificationSettingRepository) Create(ctx context.Context, s *domain.NotificationSetting) error {
	m := toSettingModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = *toDomainSetting(m)
	return nil
}

func (r *NotificationSettingRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.NotificationSetting, error) {
	var m notificationSettingModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainSetting(m), nil
}

func (r *NotificationSettingRepository) Update(ctx context.Context, s *domain.NotificationSetting) error {
	res := r.db.WithContext(ctx).
		Model(&notificationSettingModel{}).
		Where("id = ? AND company_id = ?", s.ID, s.CompanyID).
		Updates(map[string]interface{}{
			"material_id":      s.MaterialID,
			"group_name":       strOrNil(s.GroupName),
			"frequency_value":  s.FrequencyValue,
			"frequency_unit":   string(s.FrequencyUnit),
			"notify_via_email": s.NotifyViaEmail,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationSettingRepository) Delete(ctx context.Context, companyID, id int64) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(&notificationSettingModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationSettingRepository) List(ctx context.Context, companyID, projectID int64) ([]domain.NotificationSetting, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if projectID != 0 {
		q = q.Where("project_id = ?", projectID)
	}

	var rows []notificationSettingModel
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.NotificationSetting, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSetting(m))
	}
	return out, nil
}
