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

type leaveRepository interface {
	Create(ctx context.Context, leave models.LeaveRequest) error
	UpdateStatus(ctx context.Context, id string, status models.LeaveStatus, now time.Time) (*models.LeaveRequest, error)
	ListPendingByEmails(ctx context.Context, emails []string) ([]models.LeaveRequest, error)
}

type departmentUserReader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRoleAndDepartment(ctx context.Context, role models.UserRole, department string) ([]models.User, error)
}

// SubmitLeaveRequest files a leave request. Kind distinguishes student and
// teacher requests.
type SubmitLeaveRequest struct {
	UserEmail string             `json:"user_email" validate:"required,email"`
	Kind      string             `json:"kind" validate:"required,oneof=student teacher"`
	StartDate string             `json:"start_date" validate:"required"`
	EndDate   string             `json:"end_date" validate:"required"`
	Reason    string             `json:"reason" validate:"required"`
	Document  *models.Attachment `json:"document,omitempty"`
}

// UpdateLeaveStatusRequest transitions a pending request.
type UpdateLeaveStatusRequest struct {
	LeaveID string             `json:"leave_id" validate:"required"`
	Status  models.LeaveStatus `json:"status" validate:"required,oneof=approved rejected"`
}

// LeaveService files and reviews leave requests.
type LeaveService struct {
	repo      leaveRepository
	users     departmentUserReader
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewLeaveService constructs LeaveService.
func NewLeaveService(repo leaveRepository, users departmentUserReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *LeaveService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveService{
		repo:      repo,
		users:     users,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit files the request as pending. Student requests alert the teachers
// of the student's department.
func (s *LeaveService) Submit(ctx context.Context, req SubmitLeaveRequest) (*models.LeaveRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave payload")
	}
	leave := models.LeaveRequest{
		ID:          uuid.NewString(),
		UserEmail:   req.UserEmail,
		Kind:        req.Kind,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Document:    req.Document,
		Status:      models.LeavePending,
		SubmittedAt: s.now(),
	}
	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to file leave request")
	}

	if req.Kind == "student" {
		s.alertDepartmentTeachers(ctx, req.UserEmail, req.Document != nil)
	}
	return &leave, nil
}

// PendingByDepartment lists pending requests filed by the department's
// students.
func (s *LeaveService) PendingByDepartment(ctx context.Context, department string) ([]models.LeaveRequest, error) {
	students, err := s.users.ListByRoleAndDepartment(ctx, models.RoleStudent, department)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	emails := make([]string, 0, len(students))
	for _, student := range students {
		emails = append(emails, student.Email)
	}
	requests, err := s.repo.ListPendingByEmails(ctx, emails)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list leave requests")
	}
	return requests, nil
}

// UpdateStatus approves or rejects a request and tells the requester.
func (s *LeaveService) UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (*models.LeaveRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave status payload")
	}
	leave, err := s.repo.UpdateStatus(ctx, req.LeaveID, req.Status, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update leave request")
	}

	severity := models.SeverityWarning
	if req.Status == models.LeaveApproved {
		severity = models.SeveritySuccess
	}
	if _, err := s.notifier.Notify(ctx, leave.UserEmail, "Leave Request Update",
		fmt.Sprintf("Your leave request has been %s.", req.Status),
		severity,
	); err != nil {
		s.logger.Warn("leave notification failed", zap.String("recipient", leave.UserEmail), zap.Error(err))
	}
	return leave, nil
}

func (s *LeaveService) alertDepartmentTeachers(ctx context.Context, studentEmail string, hasDocument bool) {
	student, err := s.users.FindByEmail(ctx, studentEmail)
	if err != nil {
		return
	}
	teachers, err := s.users.ListByRoleAndDepartment(ctx, models.RoleTeacher, student.Department)
	if err != nil {
		s.logger.Error("leave fan-out listing failed", zap.Error(err))
		return
	}
	detail := "no document"
	if hasDocument {
		detail = "supporting document"
	}
	for _, teacher := range teachers {
		if _, err := s.notifier.Notify(ctx, teacher.Email, "New Leave Request",
			fmt.Sprintf("A student has submitted a leave request with %s.", detail),
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("leave notification failed", zap.String("recipient", teacher.Email), zap.Error(err))
		}
	}
}
