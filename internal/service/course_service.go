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

type courseRepository interface {
	Create(ctx context.Context, course models.Course) error
	FindByID(ctx context.Context, id string) (*models.Course, error)
	ListByDepartment(ctx context.Context, department string) ([]models.Course, error)
	ListAll(ctx context.Context) ([]models.Course, error)
}

type courseUserReader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRoleAndDepartment(ctx context.Context, role models.UserRole, department string) ([]models.User, error)
}

type courseEnrollmentReader interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
}

// CreateCourseRequest carries a new course posting.
type CreateCourseRequest struct {
	TeacherEmail string              `json:"teacher_email" validate:"required,email"`
	Name         string              `json:"name" validate:"required"`
	Description  string              `json:"description"`
	Department   string              `json:"department" validate:"required"`
	Duration     string              `json:"duration"`
	Attachments  []models.Attachment `json:"attachments,omitempty"`
}

// CourseService manages the course catalog and rosters.
type CourseService struct {
	repo        courseRepository
	users       courseUserReader
	enrollments courseEnrollmentReader
	notifier    notifier
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewCourseService constructs CourseService.
func NewCourseService(repo courseRepository, users courseUserReader, enrollments courseEnrollmentReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		repo:        repo,
		users:       users,
		enrollments: enrollments,
		notifier:    notifier,
		validator:   validate,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create posts a course and tells the department's students about it.
// Duration defaults to one semester.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if req.Duration == "" {
		req.Duration = "1 semester"
	}
	course := models.Course{
		ID:           uuid.NewString(),
		TeacherEmail: req.TeacherEmail,
		Name:         req.Name,
		Description:  req.Description,
		Department:   req.Department,
		Duration:     req.Duration,
		Attachments:  req.Attachments,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	students, err := s.users.ListByRoleAndDepartment(ctx, models.RoleStudent, req.Department)
	if err != nil {
		s.logger.Error("course fan-out listing failed", zap.Error(err))
		return &course, nil
	}
	for _, student := range students {
		if _, err := s.notifier.Notify(ctx, student.Email, "New Course Available",
			fmt.Sprintf("A new course %q has been added to your department.", req.Name),
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("course notification failed", zap.String("recipient", student.Email), zap.Error(err))
		}
	}
	return &course, nil
}

// ListByDepartment returns a department's courses.
func (s *CourseService) ListByDepartment(ctx context.Context, department string) ([]models.Course, error) {
	courses, err := s.repo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// ListAll returns the whole catalog.
func (s *CourseService) ListAll(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Students returns the roster of a course joined with student profiles.
func (s *CourseService) Students(ctx context.Context, courseID string) ([]models.CourseStudent, error) {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	enrollments, err := s.enrollments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	roster := make([]models.CourseStudent, 0, len(enrollments))
	for _, enrollment := range enrollments {
		entry := models.CourseStudent{
			Email:      enrollment.StudentEmail,
			EnrolledAt: enrollment.EnrolledAt,
		}
		if user, err := s.users.FindByEmail(ctx, enrollment.StudentEmail); err == nil {
			entry.Name = user.Name
			entry.RollNumber = user.RollNumber
		}
		roster = append(roster, entry)
	}
	return roster, nil
}
