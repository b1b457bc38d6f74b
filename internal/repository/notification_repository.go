package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// NotificationRepository reads and writes notifications.
type NotificationRepository struct {
	notifications *store.Collection[models.Notification]
}

// NewNotificationRepository constructs NotificationRepository.
func NewNotificationRepository(s *store.Store) *NotificationRepository {
	return &NotificationRepository{notifications: s.Notifications}
}

// Create appends a notification.
func (r *NotificationRepository) Create(ctx context.Context, notification models.Notification) error {
	r.notifications.Append(notification)
	return nil
}

// ListByRecipient returns a recipient's notifications, newest first.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, email string) ([]models.Notification, error) {
	list := r.notifications.Filter(func(n models.Notification) bool {
		return strings.EqualFold(n.UserEmail, email)
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].Timestamp.After(list[j].Timestamp) })
	return list, nil
}

// MarkRead flips the unread flag for the notification with id.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	found := r.notifications.Update(
		func(n models.Notification) bool { return n.ID == id },
		func(n *models.Notification) { n.Read = true },
	)
	if !found {
		return ErrNoRecord
	}
	return nil
}
