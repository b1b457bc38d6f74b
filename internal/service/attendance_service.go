package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type attendanceRepository interface {
	Upsert(ctx context.Context, teacherEmail, studentEmail, course, date string, status models.AttendanceStatus, now time.Time) (bool, error)
	ListByStudent(ctx context.Context, studentEmail string) ([]models.AttendanceRecord, error)
}

// RecordAttendanceRequest marks one student for one class date.
type RecordAttendanceRequest struct {
	TeacherEmail string                  `json:"teacher_email" validate:"required,email"`
	StudentEmail string                  `json:"student_email" validate:"required,email"`
	Course       string                  `json:"course" validate:"required"`
	Date         string                  `json:"date" validate:"required"`
	Status       models.AttendanceStatus `json:"status" validate:"required,oneof=present absent"`
}

// AttendanceService records per-date attendance. The (student, course, date)
// key is unique; re-recording overwrites the status.
type AttendanceService struct {
	repo      attendanceRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAttendanceService constructs AttendanceService.
func NewAttendanceService(repo attendanceRepository, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Record upserts the attendance mark and reports whether an existing record
// was overwritten.
func (s *AttendanceService) Record(ctx context.Context, req RecordAttendanceRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	updated, err := s.repo.Upsert(ctx, req.TeacherEmail, req.StudentEmail, req.Course, req.Date, req.Status, s.now())
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record attendance")
	}
	return updated, nil
}

// ListForStudent returns the student's attendance records.
func (s *AttendanceService) ListForStudent(ctx context.Context, studentEmail string) ([]models.AttendanceRecord, error) {
	records, err := s.repo.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}
