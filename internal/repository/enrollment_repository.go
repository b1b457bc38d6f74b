package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// EnrollmentRepository reads and writes enrollments.
type EnrollmentRepository struct {
	enrollments *store.Collection[models.Enrollment]
}

// NewEnrollmentRepository constructs EnrollmentRepository.
func NewEnrollmentRepository(s *store.Store) *EnrollmentRepository {
	return &EnrollmentRepository{enrollments: s.Enrollments}
}

// Create appends an enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment models.Enrollment) error {
	r.enrollments.Append(enrollment)
	return nil
}

// Exists reports whether the (student, course) pair is already enrolled.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentEmail, courseID string) (bool, error) {
	_, ok := r.enrollments.Find(func(e models.Enrollment) bool {
		return e.CourseID == courseID && strings.EqualFold(e.StudentEmail, studentEmail)
	})
	return ok, nil
}

// ListByStudent returns a student's enrollments in store order.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentEmail string) ([]models.Enrollment, error) {
	return r.enrollments.Filter(func(e models.Enrollment) bool {
		return strings.EqualFold(e.StudentEmail, studentEmail)
	}), nil
}

// ListByCourse returns a course's enrollments in store order.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	return r.enrollments.Filter(func(e models.Enrollment) bool { return e.CourseID == courseID }), nil
}
