package service

import (
	"context"

	"github.com/noah-isme/campus-api/internal/models"
)

// notifier is the slice of NotificationService the other services depend on.
// Deliveries triggered as side effects are best-effort; failures are logged
// by the caller and never fail the primary operation.
type notifier interface {
	Notify(ctx context.Context, recipient, title, message string, severity models.NotificationSeverity) (*models.Notification, error)
}
