package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/pkg/realtime"
)

type mockChatRepo struct {
	messages []models.ChatMessage
}

func (m *mockChatRepo) Create(ctx context.Context, message models.ChatMessage) error {
	m.messages = append(m.messages, message)
	return nil
}

func (m *mockChatRepo) ListConversation(ctx context.Context, a, b string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, msg := range m.messages {
		if (msg.ParentEmail == a && msg.TeacherEmail == b) || (msg.ParentEmail == b && msg.TeacherEmail == a) {
			out = append(out, msg)
		}
	}
	return out, nil
}

func TestChatServiceSendPersistsThenBroadcasts(t *testing.T) {
	repo := &mockChatRepo{}
	hub := &mockHub{}
	svc := NewChatService(repo, hub, validator.New(), zap.NewNop())

	message, err := svc.Send(context.Background(), SendChatMessageRequest{
		ParentEmail:  "parent@home.net",
		TeacherEmail: "prof@campus.edu",
		Sender:       "parent",
		Message:      "How is my kid doing?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
	require.Len(t, repo.messages, 1)

	require.Len(t, hub.rooms, 1)
	assert.Equal(t, realtime.ChatRoom("parent@home.net", "prof@campus.edu"), hub.rooms[0])
	assert.Equal(t, "chat-message", hub.events[0])
}

func TestChatServiceConversationIsSymmetric(t *testing.T) {
	repo := &mockChatRepo{}
	svc := NewChatService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.Send(context.Background(), SendChatMessageRequest{
		ParentEmail: "parent@home.net", TeacherEmail: "prof@campus.edu", Sender: "parent", Message: "hi",
	})
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), SendChatMessageRequest{
		ParentEmail: "parent@home.net", TeacherEmail: "prof@campus.edu", Sender: "teacher", Message: "hello",
	})
	require.NoError(t, err)

	forward, err := svc.Conversation(context.Background(), "parent@home.net", "prof@campus.edu")
	require.NoError(t, err)
	reverse, err := svc.Conversation(context.Background(), "prof@campus.edu", "parent@home.net")
	require.NoError(t, err)
	assert.Equal(t, forward, reverse)
	assert.Len(t, forward, 2)
}

func TestChatServiceRejectsUnknownSender(t *testing.T) {
	svc := NewChatService(&mockChatRepo{}, nil, validator.New(), zap.NewNop())

	_, err := svc.Send(context.Background(), SendChatMessageRequest{
		ParentEmail: "parent@home.net", TeacherEmail: "prof@campus.edu", Sender: "stranger", Message: "hi",
	})
	require.Error(t, err)
}
