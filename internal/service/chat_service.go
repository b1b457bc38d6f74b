package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/realtime"
)

type chatRepository interface {
	Create(ctx context.Context, message models.ChatMessage) error
	ListConversation(ctx context.Context, a, b string) ([]models.ChatMessage, error)
}

// SendChatMessageRequest carries one parent/teacher chat message.
type SendChatMessageRequest struct {
	ParentEmail  string `json:"parent_email" validate:"required,email"`
	TeacherEmail string `json:"teacher_email" validate:"required,email"`
	Sender       string `json:"sender" validate:"required,oneof=parent teacher"`
	Message      string `json:"message" validate:"required"`
}

// ChatService persists parent/teacher messages and broadcasts them to the
// conversation's room. The room identity is symmetric, so both sides see
// the same stream no matter who opened it.
type ChatService struct {
	repo      chatRepository
	hub       realtimePublisher
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewChatService constructs ChatService. hub may be nil in tests.
func NewChatService(repo chatRepository, hub realtimePublisher, validate *validator.Validate, logger *zap.Logger) *ChatService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		repo:      repo,
		hub:       hub,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Send persists the message, then broadcasts it to the conversation room.
func (s *ChatService) Send(ctx context.Context, req SendChatMessageRequest) (*models.ChatMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid chat payload")
	}
	message := models.ChatMessage{
		ID:           uuid.NewString(),
		ParentEmail:  req.ParentEmail,
		TeacherEmail: req.TeacherEmail,
		Sender:       req.Sender,
		Message:      req.Message,
		Timestamp:    s.now(),
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store chat message")
	}
	if s.hub != nil {
		s.hub.Publish(realtime.ChatRoom(req.ParentEmail, req.TeacherEmail), "chat-message", message)
	}
	return &message, nil
}

// Conversation returns the messages between the pair, oldest first.
func (s *ChatService) Conversation(ctx context.Context, parentEmail, teacherEmail string) ([]models.ChatMessage, error) {
	messages, err := s.repo.ListConversation(ctx, parentEmail, teacherEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list chat messages")
	}
	return messages, nil
}

// HandleInbound dispatches websocket frames from connected clients. Chat
// frames are persisted and broadcast exactly like HTTP sends.
func (s *ChatService) HandleInbound(c *realtime.Client, msg realtime.Inbound) {
	switch msg.Type {
	case "join-chat":
		c.Join(realtime.ChatRoom(msg.ParentEmail, msg.TeacherEmail))
	case "chat":
		_, err := s.Send(context.Background(), SendChatMessageRequest{
			ParentEmail:  msg.ParentEmail,
			TeacherEmail: msg.TeacherEmail,
			Sender:       msg.Sender,
			Message:      msg.Message,
		})
		if err != nil {
			s.logger.Warn("inbound chat rejected", zap.Error(err))
		}
	default:
		s.logger.Debug("unknown inbound frame", zap.String("type", msg.Type))
	}
}
