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

type complaintRepository interface {
	Create(ctx context.Context, complaint models.Complaint) error
	UpdateStatus(ctx context.Context, id, status string, now time.Time) (*models.Complaint, error)
	ListByEmails(ctx context.Context, emails []string) ([]models.Complaint, error)
}

// SubmitComplaintRequest raises a complaint.
type SubmitComplaintRequest struct {
	StudentEmail string `json:"student_email" validate:"required,email"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Category     string `json:"category" validate:"required"`
}

// UpdateComplaintStatusRequest transitions a complaint.
type UpdateComplaintStatusRequest struct {
	ComplaintID string `json:"complaint_id" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

// ComplaintService tracks complaints from filing to resolution.
type ComplaintService struct {
	repo      complaintRepository
	users     departmentUserReader
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewComplaintService constructs ComplaintService.
func NewComplaintService(repo complaintRepository, users departmentUserReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *ComplaintService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintService{
		repo:      repo,
		users:     users,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit files the complaint as open and warns the teachers of the
// student's department.
func (s *ComplaintService) Submit(ctx context.Context, req SubmitComplaintRequest) (*models.Complaint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid complaint payload")
	}
	complaint := models.Complaint{
		ID:           uuid.NewString(),
		StudentEmail: req.StudentEmail,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Status:       "open",
		SubmittedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to file complaint")
	}

	if student, err := s.users.FindByEmail(ctx, req.StudentEmail); err == nil {
		teachers, err := s.users.ListByRoleAndDepartment(ctx, models.RoleTeacher, student.Department)
		if err != nil {
			s.logger.Error("complaint fan-out listing failed", zap.Error(err))
			return &complaint, nil
		}
		for _, teacher := range teachers {
			if _, err := s.notifier.Notify(ctx, teacher.Email, "New Complaint",
				"A new complaint has been submitted in your department.",
				models.SeverityWarning,
			); err != nil {
				s.logger.Warn("complaint notification failed", zap.String("recipient", teacher.Email), zap.Error(err))
			}
		}
	}
	return &complaint, nil
}

// ListByDepartment lists complaints raised by the department's students.
func (s *ComplaintService) ListByDepartment(ctx context.Context, department string) ([]models.Complaint, error) {
	students, err := s.users.ListByRoleAndDepartment(ctx, models.RoleStudent, department)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	emails := make([]string, 0, len(students))
	for _, student := range students {
		emails = append(emails, student.Email)
	}
	complaints, err := s.repo.ListByEmails(ctx, emails)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list complaints")
	}
	return complaints, nil
}

// UpdateStatus transitions the complaint and tells the student.
func (s *ComplaintService) UpdateStatus(ctx context.Context, req UpdateComplaintStatusRequest) (*models.Complaint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid complaint status payload")
	}
	complaint, err := s.repo.UpdateStatus(ctx, req.ComplaintID, req.Status, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update complaint")
	}

	if _, err := s.notifier.Notify(ctx, complaint.StudentEmail, "Complaint Status Update",
		fmt.Sprintf("Your complaint status has been updated to %s.", req.Status),
		models.SeverityInfo,
	); err != nil {
		s.logger.Warn("complaint notification failed", zap.String("recipient", complaint.StudentEmail), zap.Error(err))
	}
	return complaint, nil
}
