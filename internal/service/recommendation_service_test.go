package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
)

type mockGradeReader struct {
	grades []models.Grade
}

func (m *mockGradeReader) ListByStudent(ctx context.Context, studentEmail string) ([]models.Grade, error) {
	var out []models.Grade
	for _, g := range m.grades {
		if g.StudentEmail == studentEmail {
			out = append(out, g)
		}
	}
	return out, nil
}

type mockEnrollmentReader struct {
	enrollments []models.Enrollment
}

func (m *mockEnrollmentReader) ListByStudent(ctx context.Context, studentEmail string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range m.enrollments {
		if e.StudentEmail == studentEmail {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockCourseCatalog struct {
	courses []models.Course
}

func (m *mockCourseCatalog) FindByID(ctx context.Context, id string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, repository.ErrNoRecord
}

func (m *mockCourseCatalog) ListByDepartment(ctx context.Context, department string) ([]models.Course, error) {
	var out []models.Course
	for _, c := range m.courses {
		if c.Department == department {
			out = append(out, c)
		}
	}
	return out, nil
}

func recommendationFixture() (*mockCourseCatalog, *mockGradeReader, *mockEnrollmentReader, *mockUserDirectory, *RecommendationService) {
	catalog := &mockCourseCatalog{courses: []models.Course{
		{ID: "c1", Name: "Data Structures", Department: "CSE"},
		{ID: "c2", Name: "Advanced Algorithms", Department: "CSE"},
		{ID: "c3", Name: "Advanced Databases", Department: "CSE"},
		{ID: "c4", Name: "Operating Systems", Department: "CSE"},
		{ID: "c5", Name: "Computer Networks", Department: "CSE"},
		{ID: "c6", Name: "Compiler Design", Department: "CSE"},
		{ID: "c7", Name: "Thermodynamics", Department: "MECH"},
	}}
	grades := &mockGradeReader{}
	enrollments := &mockEnrollmentReader{}
	users := &mockUserDirectory{users: map[string]*models.User{
		"ace@campus.edu": {Role: models.RoleStudent, Email: "ace@campus.edu", Department: "CSE"},
	}}
	svc := NewRecommendationService(users, grades, enrollments, catalog, zap.NewNop())
	return catalog, grades, enrollments, users, svc
}

func TestRecommendStrongSubjectPullsAdvancedCoursesFirst(t *testing.T) {
	_, grades, _, _, svc := recommendationFixture()
	grades.grades = []models.Grade{
		{StudentEmail: "ace@campus.edu", Course: "Data Structures", Letter: "A"},
		{StudentEmail: "ace@campus.edu", Course: "Data Structures", Letter: "A-"},
	}

	recs, err := svc.Recommend(context.Background(), "ace@campus.edu")
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Advanced Algorithms", recs[0].Name)
	assert.Equal(t, "Advanced Databases", recs[1].Name)
}

func TestRecommendCapsAtFiveWithoutDuplicates(t *testing.T) {
	_, grades, _, _, svc := recommendationFixture()
	grades.grades = []models.Grade{
		{StudentEmail: "ace@campus.edu", Course: "Data Structures", Letter: "A"},
		{StudentEmail: "ace@campus.edu", Course: "Operating Systems", Letter: "A"},
	}

	recs, err := svc.Recommend(context.Background(), "ace@campus.edu")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(recs), 5)

	seen := make(map[string]bool)
	for _, course := range recs {
		assert.False(t, seen[course.ID], "duplicate recommendation %s", course.ID)
		seen[course.ID] = true
		assert.Equal(t, "CSE", course.Department)
	}
}

func TestRecommendExcludesEnrolledCourses(t *testing.T) {
	_, grades, enrollments, _, svc := recommendationFixture()
	grades.grades = []models.Grade{
		{StudentEmail: "ace@campus.edu", Course: "Data Structures", Letter: "A"},
	}
	enrollments.enrollments = []models.Enrollment{
		{StudentEmail: "ace@campus.edu", CourseID: "c2"},
	}

	recs, err := svc.Recommend(context.Background(), "ace@campus.edu")
	require.NoError(t, err)
	for _, course := range recs {
		assert.NotEqual(t, "c2", course.ID)
	}
}

func TestRecommendWeakGradesSkipAdvancedTrack(t *testing.T) {
	_, grades, _, _, svc := recommendationFixture()
	grades.grades = []models.Grade{
		{StudentEmail: "ace@campus.edu", Course: "Data Structures", Letter: "C"},
	}

	recs, err := svc.Recommend(context.Background(), "ace@campus.edu")
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	// Complementary fill starts from store order, so the first entry is the
	// first department course, not an advanced one.
	assert.Equal(t, "Data Structures", recs[0].Name)
	assert.LessOrEqual(t, len(recs), 3)
}

func TestRecommendUnknownStudentIsEmpty(t *testing.T) {
	_, _, _, _, svc := recommendationFixture()

	recs, err := svc.Recommend(context.Background(), "ghost@campus.edu")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendAdvancedCapHoldsAcrossStrongSubjects(t *testing.T) {
	catalog := &mockCourseCatalog{courses: []models.Course{
		{ID: "a1", Name: "Advanced Algorithms", Department: "CSE"},
		{ID: "a2", Name: "Advanced Databases", Department: "CSE"},
		{ID: "c1", Name: "Operating Systems", Department: "CSE"},
		{ID: "c2", Name: "Software Engineering", Department: "CSE"},
		{ID: "c3", Name: "Computer Graphics", Department: "CSE"},
		{ID: "a3", Name: "Advanced Networks", Department: "CSE"},
		{ID: "a4", Name: "Advanced Compilers", Department: "CSE"},
	}}
	grades := &mockGradeReader{grades: []models.Grade{
		{StudentEmail: "ace@campus.edu", Course: "Data Structures", Letter: "A"},
		{StudentEmail: "ace@campus.edu", Course: "Operating Systems", Letter: "A"},
	}}
	users := &mockUserDirectory{users: map[string]*models.User{
		"ace@campus.edu": {Role: models.RoleStudent, Email: "ace@campus.edu", Department: "CSE"},
	}}
	svc := NewRecommendationService(users, grades, &mockEnrollmentReader{}, catalog, zap.NewNop())

	recs, err := svc.Recommend(context.Background(), "ace@campus.edu")
	require.NoError(t, err)
	require.Len(t, recs, 5)

	// Two strong subjects still pull in only the first two advanced courses;
	// the remaining slots are complementary fill in store order, not more
	// advanced picks from later in the catalog.
	names := make([]string, 0, len(recs))
	for _, course := range recs {
		names = append(names, course.Name)
	}
	assert.Equal(t, []string{
		"Advanced Algorithms",
		"Advanced Databases",
		"Operating Systems",
		"Software Engineering",
		"Computer Graphics",
	}, names)
}
