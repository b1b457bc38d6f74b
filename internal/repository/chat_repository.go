package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// ChatRepository reads and writes parent/teacher chat messages.
type ChatRepository struct {
	messages *store.Collection[models.ChatMessage]
}

// NewChatRepository constructs ChatRepository.
func NewChatRepository(s *store.Store) *ChatRepository {
	return &ChatRepository{messages: s.ChatMessages}
}

// Create appends a chat message.
func (r *ChatRepository) Create(ctx context.Context, message models.ChatMessage) error {
	r.messages.Append(message)
	return nil
}

// ListConversation returns the messages between a and b regardless of which
// side each record was sent from, oldest first.
func (r *ChatRepository) ListConversation(ctx context.Context, a, b string) ([]models.ChatMessage, error) {
	list := r.messages.Filter(func(m models.ChatMessage) bool {
		return (strings.EqualFold(m.ParentEmail, a) && strings.EqualFold(m.TeacherEmail, b)) ||
			(strings.EqualFold(m.ParentEmail, b) && strings.EqualFold(m.TeacherEmail, a))
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].Timestamp.Before(list[j].Timestamp) })
	return list, nil
}
