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

type liveSessionRepository interface {
	Create(ctx context.Context, session models.LiveSession) error
	ListAll(ctx context.Context) ([]models.LiveSession, error)
	Delete(ctx context.Context, id string) error
}

// CreateLiveSessionRequest schedules an online class.
type CreateLiveSessionRequest struct {
	TeacherEmail    string    `json:"teacher_email" validate:"required,email"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Course          string    `json:"course" validate:"required"`
	Link            string    `json:"link" validate:"required,url"`
}

// LiveSessionService schedules online classes.
type LiveSessionService struct {
	repo        liveSessionRepository
	courses     assignmentCourseReader
	enrollments courseEnrollmentReader
	notifier    notifier
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewLiveSessionService constructs LiveSessionService.
func NewLiveSessionService(repo liveSessionRepository, courses assignmentCourseReader, enrollments courseEnrollmentReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *LiveSessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiveSessionService{
		repo:        repo,
		courses:     courses,
		enrollments: enrollments,
		notifier:    notifier,
		validator:   validate,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create schedules the session and tells the students enrolled in the
// course.
func (s *LiveSessionService) Create(ctx context.Context, req CreateLiveSessionRequest) (*models.LiveSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid live session payload")
	}
	session := models.LiveSession{
		ID:              uuid.NewString(),
		TeacherEmail:    req.TeacherEmail,
		Title:           req.Title,
		Description:     req.Description,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
		Course:          req.Course,
		Link:            req.Link,
		CreatedAt:       s.now(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create live session")
	}

	course, err := s.courses.FindByName(ctx, req.Course)
	if err != nil {
		return &session, nil
	}
	enrollments, err := s.enrollments.ListByCourse(ctx, course.ID)
	if err != nil {
		s.logger.Error("live session fan-out listing failed", zap.Error(err))
		return &session, nil
	}
	for _, enrollment := range enrollments {
		if _, err := s.notifier.Notify(ctx, enrollment.StudentEmail, "New Live Session",
			fmt.Sprintf("A new live session %q has been scheduled for %s.", req.Title, req.Course),
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("live session notification failed", zap.String("recipient", enrollment.StudentEmail), zap.Error(err))
		}
	}
	return &session, nil
}

// List returns sessions, most recent start time first.
func (s *LiveSessionService) List(ctx context.Context) ([]models.LiveSession, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list live sessions")
	}
	return sessions, nil
}

// Delete removes a session.
func (s *LiveSessionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "live session not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete live session")
	}
	return nil
}
