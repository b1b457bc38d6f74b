package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/realtime"
)

type notificationRepository interface {
	Create(ctx context.Context, notification models.Notification) error
	ListByRecipient(ctx context.Context, email string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type realtimePublisher interface {
	Publish(room, eventType string, payload interface{})
}

// NotificationService persists notifications and pushes them to live
// subscribers. The push is fire-and-forget: a recipient without an open
// connection still finds the record via ListFor.
type NotificationService struct {
	repo   notificationRepository
	hub    realtimePublisher
	logger *zap.Logger
	now    func() time.Time
}

// NewNotificationService constructs NotificationService. hub may be nil, in
// which case records are persisted without a live push.
func NewNotificationService(repo notificationRepository, hub realtimePublisher, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		repo:   repo,
		hub:    hub,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Notify records a notification for recipient and pushes it to their
// channel. Severity defaults to info when empty.
func (s *NotificationService) Notify(ctx context.Context, recipient, title, message string, severity models.NotificationSeverity) (*models.Notification, error) {
	if severity == "" {
		severity = models.SeverityInfo
	}
	notification := models.Notification{
		ID:        uuid.NewString(),
		UserEmail: recipient,
		Title:     title,
		Message:   message,
		Severity:  severity,
		Read:      false,
		Timestamp: s.now(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store notification")
	}
	if s.hub != nil {
		s.hub.Publish(realtime.UserRoom(recipient), "notification", notification)
	}
	return &notification, nil
}

// ListFor returns recipient's notifications, newest first.
func (s *NotificationService) ListFor(ctx context.Context, recipient string) ([]models.Notification, error) {
	list, err := s.repo.ListByRecipient(ctx, recipient)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notifications")
	}
	return list, nil
}

// MarkRead flips the unread flag for one notification.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark notification read")
	}
	return nil
}
