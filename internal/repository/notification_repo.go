package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"buildboard/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID                int64      `gorm:"column:id;primaryKey"`
	UserID            int64      `gorm:"column:user_id;index:idx_notifications_user_unread"`
	Title             string     `gorm:"column:title"`
	Message           *string    `gorm:"column:message;type:text"`
	Type              string     `gorm:"column:type"`
	IsRead            bool       `gorm:"column:is_read;index:idx_notifications_user_unread"`
	RelatedEntityType *string    `gorm:"column:related_entity_type"`
	RelatedEntityID   *int64     `gorm:"column:related_entity_id"`
	ReadAt            *time.Time `gorm:"column:read_at"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	var relatedID int64
	if m.RelatedEntityID != nil {
		relatedID = *m.RelatedEntityID
	}
	return &domain.Notification{
		ID:                m.ID,
		UserID:            m.UserID,
		Title:             m.Title,
		Message:           strOrEmpty(m.Message),
		Type:              domain.NotificationType(m.Type),
		IsRead:            m.IsRead,
		RelatedEntityType: strOrEmpty(m.RelatedEntityType),
		RelatedEntityID:   relatedID,
		ReadAt:            m.ReadAt,
		CreatedAt:         m.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	m := notificationModel{
		UserID:            n.UserID,
		Title:             n.Title,
		Message:           strOrNil(n.Message),
		Type:              string(n.Type),
		RelatedEntityType: strOrNil(n.RelatedEntityType),
	}
	if n.RelatedEntityID != 0 {
		v := n.RelatedEntityID
		m.RelatedEntityID = &v
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	var rows []notificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&cnt).Error
	return cnt, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now().UTC(),
		}).Error
}
