package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// AttendanceRepository reads and writes attendance records.
type AttendanceRepository struct {
	attendance *store.Collection[models.AttendanceRecord]
}

// NewAttendanceRepository constructs AttendanceRepository.
func NewAttendanceRepository(s *store.Store) *AttendanceRepository {
	return &AttendanceRepository{attendance: s.Attendance}
}

// Upsert records status for the (student, course, date) key, overwriting the
// existing record's status when one exists. It reports whether an existing
// record was updated.
func (r *AttendanceRepository) Upsert(ctx context.Context, teacherEmail, studentEmail, course, date string, status models.AttendanceStatus, now time.Time) (bool, error) {
	updated := r.attendance.Upsert(
		func(rec models.AttendanceRecord) bool {
			return rec.Course == course && rec.Date == date && strings.EqualFold(rec.StudentEmail, studentEmail)
		},
		func(rec *models.AttendanceRecord) {
			rec.Status = status
			rec.UpdatedAt = &now
		},
		func() models.AttendanceRecord {
			return models.AttendanceRecord{
				ID:           uuid.NewString(),
				TeacherEmail: teacherEmail,
				StudentEmail: studentEmail,
				Course:       course,
				Date:         date,
				Status:       status,
				RecordedAt:   now,
			}
		},
	)
	return updated, nil
}

// ListByStudent returns a student's attendance records in store order.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentEmail string) ([]models.AttendanceRecord, error) {
	return r.attendance.Filter(func(rec models.AttendanceRecord) bool {
		return strings.EqualFold(rec.StudentEmail, studentEmail)
	}), nil
}
