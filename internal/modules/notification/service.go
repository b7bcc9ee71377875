package notification

import (
	"context"

	"go.uber.org/zap"

	"buildboard/internal/domain"
)

type Service struct {
	repo   Repository
	hub    *Hub
	logger *zap.Logger
}

func NewService(repo Repository, hub *Hub, logger *zap.Logger) *Service {
	return &Service{repo: repo, hub: hub, logger: logger}
}

// Notify persists a notification and pushes it to the user's websocket if
// they are connected. Other modules call this through the NotificationSender
// interfaces they declare.
func (s *Service) Notify(ctx context.Context, userID int64, typ domain.NotificationType, title, message, entityType string, entityID int64) error {
	n := &domain.Notification{
		UserID:            userID,
		Title:             title,
		Message:           message,
		Type:              typ,
		RelatedEntityType: entityType,
		RelatedEntityID:   entityID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		delivered := s.hub.SendToUser(userID, n)
		s.logger.Debug("notification created",
			zap.Int64("user_id", userID),
			zap.String("title", title),
			zap.Bool("pushed", delivered))
	}
	return nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	list, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, userID, id int64) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}
