package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type eventRepository interface {
	Create(ctx context.Context, event models.Event) error
	ListAll(ctx context.Context) ([]models.Event, error)
	Delete(ctx context.Context, id string) error
}

type roleLister interface {
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
}

// CreateEventRequest announces a campus event.
type CreateEventRequest struct {
	TeacherEmail     string              `json:"teacher_email" validate:"required,email"`
	Title            string              `json:"title" validate:"required"`
	Description      string              `json:"description"`
	Date             string              `json:"date" validate:"required"`
	Kind             string              `json:"kind" validate:"required"`
	RegistrationLink string              `json:"registration_link,omitempty"`
	Attachments      []models.Attachment `json:"attachments,omitempty"`
}

// EventService announces campus-wide events.
type EventService struct {
	repo      eventRepository
	users     roleLister
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewEventService constructs EventService.
func NewEventService(repo eventRepository, users roleLister, notifier notifier, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{
		repo:      repo,
		users:     users,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create announces the event to every student.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	event := models.Event{
		ID:               uuid.NewString(),
		TeacherEmail:     req.TeacherEmail,
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Kind:             req.Kind,
		RegistrationLink: req.RegistrationLink,
		Attachments:      req.Attachments,
		CreatedAt:        s.now(),
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}

	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		s.logger.Error("event fan-out listing failed", zap.Error(err))
		return &event, nil
	}
	for _, student := range students {
		if _, err := s.notifier.Notify(ctx, student.Email, "New Event Announcement",
			fmt.Sprintf("A new %s event %q has been announced. Check the Events section for details.", req.Kind, req.Title),
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("event notification failed", zap.String("recipient", student.Email), zap.Error(err))
		}
	}
	return &event, nil
}

// List returns events, most recent first.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}
