package service

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type mockEnrollmentRepo struct {
	enrollments []models.Enrollment
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment models.Enrollment) error {
	m.enrollments = append(m.enrollments, enrollment)
	return nil
}

func (m *mockEnrollmentRepo) Exists(ctx context.Context, studentEmail, courseID string) (bool, error) {
	for _, e := range m.enrollments {
		if e.CourseID == courseID && strings.EqualFold(e.StudentEmail, studentEmail) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEnrollmentRepo) ListByStudent(ctx context.Context, studentEmail string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range m.enrollments {
		if strings.EqualFold(e.StudentEmail, studentEmail) {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	catalog := &mockCourseCatalog{courses: []models.Course{
		{ID: "c1", Name: "Algorithms", Department: "CSE", TeacherEmail: "prof@campus.edu"},
	}}
	notifier := &capturingNotifier{}
	svc := NewEnrollmentService(repo, catalog, notifier, validator.New(), zap.NewNop())

	enrollment, err := svc.Enroll(context.Background(), EnrollRequest{StudentEmail: "s@campus.edu", CourseID: "c1"})
	require.NoError(t, err)
	assert.NotEmpty(t, enrollment.ID)

	require.Len(t, notifier.recipients, 1)
	assert.Equal(t, "prof@campus.edu", notifier.recipients[0])
	assert.Equal(t, "New Student Enrollment", notifier.titles[0])
}

func TestEnrollmentServiceEnrollTwiceIsConflict(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	catalog := &mockCourseCatalog{courses: []models.Course{{ID: "c1", Name: "Algorithms", TeacherEmail: "prof@campus.edu"}}}
	svc := NewEnrollmentService(repo, catalog, &capturingNotifier{}, validator.New(), zap.NewNop())

	_, err := svc.Enroll(context.Background(), EnrollRequest{StudentEmail: "s@campus.edu", CourseID: "c1"})
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), EnrollRequest{StudentEmail: "s@campus.edu", CourseID: "c1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrollUnknownCourse(t *testing.T) {
	svc := NewEnrollmentService(&mockEnrollmentRepo{}, &mockCourseCatalog{}, &capturingNotifier{}, validator.New(), zap.NewNop())

	_, err := svc.Enroll(context.Background(), EnrollRequest{StudentEmail: "s@campus.edu", CourseID: "missing"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrolledCoursesJoinsCatalog(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	catalog := &mockCourseCatalog{courses: []models.Course{
		{ID: "c1", Name: "Algorithms", TeacherEmail: "prof@campus.edu"},
		{ID: "c2", Name: "Databases", TeacherEmail: "prof@campus.edu"},
	}}
	svc := NewEnrollmentService(repo, catalog, &capturingNotifier{}, validator.New(), zap.NewNop())

	_, err := svc.Enroll(context.Background(), EnrollRequest{StudentEmail: "s@campus.edu", CourseID: "c1"})
	require.NoError(t, err)

	courses, err := svc.EnrolledCourses(context.Background(), "s@campus.edu")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Algorithms", courses[0].Name)
	assert.False(t, courses[0].EnrolledAt.IsZero())
}
