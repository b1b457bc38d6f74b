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

type assignmentRepository interface {
	Create(ctx context.Context, assignment models.Assignment) error
	FindByID(ctx context.Context, id string) (*models.Assignment, error)
	ListByDepartment(ctx context.Context, department string) ([]models.Assignment, error)
	CreateSubmission(ctx context.Context, submission models.Submission) error
	ListSubmissions(ctx context.Context, assignmentID string) ([]models.Submission, error)
}

type assignmentCourseReader interface {
	FindByName(ctx context.Context, name string) (*models.Course, error)
}

// CreateAssignmentRequest posts homework for a course.
type CreateAssignmentRequest struct {
	TeacherEmail string              `json:"teacher_email" validate:"required,email"`
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description"`
	DueDate      string              `json:"due_date" validate:"required"`
	Course       string              `json:"course" validate:"required"`
	Department   string              `json:"department" validate:"required"`
	Attachments  []models.Attachment `json:"attachments,omitempty"`
}

// SubmitAssignmentRequest hands in a student's work.
type SubmitAssignmentRequest struct {
	AssignmentID string             `json:"assignment_id" validate:"required"`
	StudentEmail string             `json:"student_email" validate:"required,email"`
	Attachment   *models.Attachment `json:"attachment,omitempty"`
}

// AssignmentService manages assignments and submissions.
type AssignmentService struct {
	repo        assignmentRepository
	courses     assignmentCourseReader
	enrollments courseEnrollmentReader
	notifier    notifier
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewAssignmentService constructs AssignmentService.
func NewAssignmentService(repo assignmentRepository, courses assignmentCourseReader, enrollments courseEnrollmentReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		repo:        repo,
		courses:     courses,
		enrollments: enrollments,
		notifier:    notifier,
		validator:   validate,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create posts the assignment and warns every student enrolled in the
// course. The course is matched by name; a missing course only skips the
// fan-out.
func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	assignment := models.Assignment{
		ID:           uuid.NewString(),
		TeacherEmail: req.TeacherEmail,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Course:       req.Course,
		Department:   req.Department,
		Attachments:  req.Attachments,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}

	course, err := s.courses.FindByName(ctx, req.Course)
	if err != nil {
		return &assignment, nil
	}
	enrollments, err := s.enrollments.ListByCourse(ctx, course.ID)
	if err != nil {
		s.logger.Error("assignment fan-out listing failed", zap.Error(err))
		return &assignment, nil
	}
	for _, enrollment := range enrollments {
		if _, err := s.notifier.Notify(ctx, enrollment.StudentEmail, "New Assignment",
			fmt.Sprintf("A new assignment %q has been posted for %s. Due date: %s", req.Title, req.Course, req.DueDate),
			models.SeverityWarning,
		); err != nil {
			s.logger.Warn("assignment notification failed", zap.String("recipient", enrollment.StudentEmail), zap.Error(err))
		}
	}
	return &assignment, nil
}

// ListByDepartment returns a department's assignments.
func (s *AssignmentService) ListByDepartment(ctx context.Context, department string) ([]models.Assignment, error) {
	assignments, err := s.repo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}

// Submit records the hand-in and tells the assignment's teacher.
func (s *AssignmentService) Submit(ctx context.Context, req SubmitAssignmentRequest) (*models.Submission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}
	assignment, err := s.repo.FindByID(ctx, req.AssignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}

	submission := models.Submission{
		ID:           uuid.NewString(),
		AssignmentID: req.AssignmentID,
		StudentEmail: req.StudentEmail,
		Attachment:   req.Attachment,
		Status:       "submitted",
		SubmittedAt:  s.now(),
	}
	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store submission")
	}

	if _, err := s.notifier.Notify(ctx, assignment.TeacherEmail, "Assignment Submitted",
		fmt.Sprintf("A student has submitted the assignment %q.", assignment.Title),
		models.SeverityInfo,
	); err != nil {
		s.logger.Warn("submission notification failed", zap.String("recipient", assignment.TeacherEmail), zap.Error(err))
	}
	return &submission, nil
}

// Submissions lists the hand-ins for one assignment.
func (s *AssignmentService) Submissions(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	submissions, err := s.repo.ListSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return submissions, nil
}
