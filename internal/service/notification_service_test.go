package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/realtime"
)

type mockNotificationRepo struct {
	created []models.Notification
	read    []string
	known   map[string]bool
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification models.Notification) error {
	m.created = append(m.created, notification)
	return nil
}

func (m *mockNotificationRepo) ListByRecipient(ctx context.Context, email string) ([]models.Notification, error) {
	var list []models.Notification
	for _, n := range m.created {
		if n.UserEmail == email {
			list = append(list, n)
		}
	}
	return list, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id string) error {
	if m.known == nil || !m.known[id] {
		return repository.ErrNoRecord
	}
	m.read = append(m.read, id)
	return nil
}

type mockHub struct {
	rooms    []string
	events   []string
	payloads []interface{}
}

func (m *mockHub) Publish(room, eventType string, payload interface{}) {
	m.rooms = append(m.rooms, room)
	m.events = append(m.events, eventType)
	m.payloads = append(m.payloads, payload)
}

// capturingNotifier stands in for NotificationService in the services that
// fan notifications out.
type capturingNotifier struct {
	recipients []string
	titles     []string
	messages   []string
	severities []models.NotificationSeverity
}

func (m *capturingNotifier) Notify(ctx context.Context, recipient, title, message string, severity models.NotificationSeverity) (*models.Notification, error) {
	m.recipients = append(m.recipients, recipient)
	m.titles = append(m.titles, title)
	m.messages = append(m.messages, message)
	m.severities = append(m.severities, severity)
	return &models.Notification{UserEmail: recipient, Title: title, Message: message, Severity: severity}, nil
}

func TestNotificationServiceNotifyPersistsThenPushes(t *testing.T) {
	repo := &mockNotificationRepo{}
	hub := &mockHub{}
	svc := NewNotificationService(repo, hub, zap.NewNop())

	notification, err := svc.Notify(context.Background(), "Student@Campus.edu", "Grade Updated", "Your grade changed.", models.SeverityInfo)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.NotEmpty(t, notification.ID)
	assert.False(t, notification.Read)

	require.Len(t, hub.rooms, 1)
	assert.Equal(t, realtime.UserRoom("Student@Campus.edu"), hub.rooms[0])
	assert.Equal(t, "notification", hub.events[0])
}

func TestNotificationServiceNotifyDefaultsSeverity(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(repo, nil, zap.NewNop())

	notification, err := svc.Notify(context.Background(), "a@b.c", "Hello", "World", "")
	require.NoError(t, err)
	assert.Equal(t, models.SeverityInfo, notification.Severity)
}

func TestNotificationServiceMarkReadNotFound(t *testing.T) {
	svc := NewNotificationService(&mockNotificationRepo{}, nil, zap.NewNop())

	err := svc.MarkRead(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestNotificationServiceMarkRead(t *testing.T) {
	repo := &mockNotificationRepo{known: map[string]bool{"n1": true}}
	svc := NewNotificationService(repo, nil, zap.NewNop())

	require.NoError(t, svc.MarkRead(context.Background(), "n1"))
	assert.Equal(t, []string{"n1"}, repo.read)
}
