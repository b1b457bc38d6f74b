package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type gradeRepository interface {
	Upsert(ctx context.Context, teacherEmail, studentEmail, course, letter, semester, assignmentID string, now time.Time) (bool, error)
	ListByStudent(ctx context.Context, studentEmail string) ([]models.Grade, error)
}

// UploadGradeRequest carries one letter grade for one student.
type UploadGradeRequest struct {
	TeacherEmail string `json:"teacher_email" validate:"required,email"`
	StudentEmail string `json:"student_email" validate:"required,email"`
	Course       string `json:"course" validate:"required"`
	Letter       string `json:"grade" validate:"required"`
	Semester     string `json:"semester" validate:"required"`
	AssignmentID string `json:"assignment_id,omitempty"`
}

// GradeService uploads and lists grades. The (student, course, semester,
// assignment) key is unique; a second upload overwrites the letter.
type GradeService struct {
	repo      gradeRepository
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewGradeService constructs GradeService.
func NewGradeService(repo gradeRepository, notifier notifier, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{
		repo:      repo,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upload upserts the grade and tells the student, wording the notification
// by whether this is a new grade or a correction. It reports whether an
// existing record was overwritten.
func (s *GradeService) Upload(ctx context.Context, req UploadGradeRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	updated, err := s.repo.Upsert(ctx, req.TeacherEmail, req.StudentEmail, req.Course, req.Letter, req.Semester, req.AssignmentID, s.now())
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store grade")
	}

	title := "New Grade Available"
	message := fmt.Sprintf("You have received a grade for %s: %s.", req.Course, req.Letter)
	if updated {
		title = "Grade Updated"
		message = fmt.Sprintf("Your grade for %s has been updated to %s.", req.Course, req.Letter)
	}
	if _, err := s.notifier.Notify(ctx, req.StudentEmail, title, message, models.SeverityInfo); err != nil {
		s.logger.Warn("grade notification failed", zap.String("recipient", req.StudentEmail), zap.Error(err))
	}
	return updated, nil
}

// ListForStudent returns the student's grades.
func (s *GradeService) ListForStudent(ctx context.Context, studentEmail string) ([]models.Grade, error) {
	grades, err := s.repo.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list grades")
	}
	return grades, nil
}
