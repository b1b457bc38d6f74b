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

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment models.Enrollment) error
	Exists(ctx context.Context, studentEmail, courseID string) (bool, error)
	ListByStudent(ctx context.Context, studentEmail string) ([]models.Enrollment, error)
}

type enrollmentCourseReader interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

// EnrollRequest links a student to a course.
type EnrollRequest struct {
	StudentEmail string `json:"student_email" validate:"required,email"`
	CourseID     string `json:"course_id" validate:"required"`
}

// EnrollmentService manages course enrollment.
type EnrollmentService struct {
	repo      enrollmentRepository
	courses   enrollmentCourseReader
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, courses enrollmentCourseReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		repo:      repo,
		courses:   courses,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Enroll adds the student to the course and tells the teacher. Enrolling
// twice in the same course is a conflict.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	course, err := s.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	exists, err := s.repo.Exists(ctx, req.StudentEmail, req.CourseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "already enrolled in this course")
	}

	enrollment := models.Enrollment{
		ID:           uuid.NewString(),
		StudentEmail: req.StudentEmail,
		CourseID:     req.CourseID,
		EnrolledAt:   s.now(),
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create enrollment")
	}

	if _, err := s.notifier.Notify(ctx, course.TeacherEmail, "New Student Enrollment",
		fmt.Sprintf("A student has enrolled in your course %q.", course.Name),
		models.SeverityInfo,
	); err != nil {
		s.logger.Warn("enrollment notification failed", zap.String("recipient", course.TeacherEmail), zap.Error(err))
	}
	return &enrollment, nil
}

// EnrolledCourses returns the student's courses with enrollment dates.
func (s *EnrollmentService) EnrolledCourses(ctx context.Context, studentEmail string) ([]models.EnrolledCourse, error) {
	enrollments, err := s.repo.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	courses := make([]models.EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := s.courses.FindByID(ctx, enrollment.CourseID)
		if err != nil {
			continue
		}
		courses = append(courses, models.EnrolledCourse{
			Course:     *course,
			EnrolledAt: enrollment.EnrolledAt,
		})
	}
	return courses, nil
}
