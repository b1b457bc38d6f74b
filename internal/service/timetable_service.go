package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type timetableRepository interface {
	Create(ctx context.Context, timetable models.Timetable) error
	LatestByDepartment(ctx context.Context, department string) (*models.Timetable, error)
}

// UploadTimetableRequest publishes a department schedule.
type UploadTimetableRequest struct {
	TeacherEmail string `json:"teacher_email" validate:"required,email"`
	Department   string `json:"department" validate:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url,omitempty"`
}

// TimetableService publishes department timetables; only the latest upload
// per department is served.
type TimetableService struct {
	repo      timetableRepository
	users     departmentUserReader
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTimetableService constructs TimetableService.
func NewTimetableService(repo timetableRepository, users departmentUserReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		repo:      repo,
		users:     users,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upload stores the timetable and tells the department's students.
func (s *TimetableService) Upload(ctx context.Context, req UploadTimetableRequest) (*models.Timetable, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	timetable := models.Timetable{
		ID:           uuid.NewString(),
		TeacherEmail: req.TeacherEmail,
		Department:   req.Department,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		UploadedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, timetable); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store timetable")
	}

	students, err := s.users.ListByRoleAndDepartment(ctx, models.RoleStudent, req.Department)
	if err != nil {
		s.logger.Error("timetable fan-out listing failed", zap.Error(err))
		return &timetable, nil
	}
	for _, student := range students {
		if _, err := s.notifier.Notify(ctx, student.Email, "New Timetable Available",
			"A new timetable has been uploaded for your department.",
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("timetable notification failed", zap.String("recipient", student.Email), zap.Error(err))
		}
	}
	return &timetable, nil
}

// Latest returns the most recent upload for a department.
func (s *TimetableService) Latest(ctx context.Context, department string) (*models.Timetable, error) {
	timetable, err := s.repo.LatestByDepartment(ctx, department)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no timetable for this department")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	return timetable, nil
}
