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

type questionPaperRepository interface {
	Create(ctx context.Context, paper models.QuestionPaper) error
	ListAll(ctx context.Context) ([]models.QuestionPaper, error)
	Delete(ctx context.Context, id string) error
}

// UploadQuestionPaperRequest archives an exam paper.
type UploadQuestionPaperRequest struct {
	TeacherEmail string              `json:"teacher_email" validate:"required,email"`
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description"`
	Course       string              `json:"course" validate:"required"`
	Year         string              `json:"year" validate:"required"`
	Attachments  []models.Attachment `json:"attachments,omitempty"`
}

// QuestionPaperService archives exam papers.
type QuestionPaperService struct {
	repo      questionPaperRepository
	users     departmentUserReader
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewQuestionPaperService constructs QuestionPaperService.
func NewQuestionPaperService(repo questionPaperRepository, users departmentUserReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *QuestionPaperService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionPaperService{
		repo:      repo,
		users:     users,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upload archives the paper and tells the students of the uploading
// teacher's department.
func (s *QuestionPaperService) Upload(ctx context.Context, req UploadQuestionPaperRequest) (*models.QuestionPaper, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid question paper payload")
	}
	paper := models.QuestionPaper{
		ID:           uuid.NewString(),
		TeacherEmail: req.TeacherEmail,
		Title:        req.Title,
		Description:  req.Description,
		Course:       req.Course,
		Year:         req.Year,
		Attachments:  req.Attachments,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, paper); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store question paper")
	}

	teacher, err := s.users.FindByEmail(ctx, req.TeacherEmail)
	if err != nil {
		return &paper, nil
	}
	students, err := s.users.ListByRoleAndDepartment(ctx, models.RoleStudent, teacher.Department)
	if err != nil {
		s.logger.Error("question paper fan-out listing failed", zap.Error(err))
		return &paper, nil
	}
	for _, student := range students {
		if _, err := s.notifier.Notify(ctx, student.Email, "New Question Paper",
			fmt.Sprintf("A new question paper %q has been uploaded for %s.", req.Title, req.Course),
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("question paper notification failed", zap.String("recipient", student.Email), zap.Error(err))
		}
	}
	return &paper, nil
}

// List returns papers, most recent year first.
func (s *QuestionPaperService) List(ctx context.Context) ([]models.QuestionPaper, error) {
	papers, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list question papers")
	}
	return papers, nil
}

// Delete removes a paper.
func (s *QuestionPaperService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "question paper not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete question paper")
	}
	return nil
}
