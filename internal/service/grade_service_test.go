package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
)

type mockGradeRepo struct {
	grades []models.Grade
}

func (m *mockGradeRepo) Upsert(ctx context.Context, teacherEmail, studentEmail, course, letter, semester, assignmentID string, now time.Time) (bool, error) {
	for i, g := range m.grades {
		if g.Course == course && g.Semester == semester && g.AssignmentID == assignmentID &&
			strings.EqualFold(g.StudentEmail, studentEmail) {
			m.grades[i].Letter = letter
			m.grades[i].UpdatedAt = &now
			return true, nil
		}
	}
	m.grades = append(m.grades, models.Grade{
		TeacherEmail: teacherEmail,
		StudentEmail: studentEmail,
		Course:       course,
		Letter:       letter,
		Semester:     semester,
		AssignmentID: assignmentID,
		UploadedAt:   now,
	})
	return false, nil
}

func (m *mockGradeRepo) ListByStudent(ctx context.Context, studentEmail string) ([]models.Grade, error) {
	var out []models.Grade
	for _, g := range m.grades {
		if strings.EqualFold(g.StudentEmail, studentEmail) {
			out = append(out, g)
		}
	}
	return out, nil
}

func TestGradeServiceUploadOverwritesSameKey(t *testing.T) {
	repo := &mockGradeRepo{}
	notifier := &capturingNotifier{}
	svc := NewGradeService(repo, notifier, validator.New(), zap.NewNop())

	req := UploadGradeRequest{
		TeacherEmail: "prof@campus.edu",
		StudentEmail: "s@campus.edu",
		Course:       "Algorithms",
		Letter:       "B",
		Semester:     "Fall 2024",
	}
	updated, err := svc.Upload(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, updated)

	req.Letter = "A"
	updated, err = svc.Upload(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, updated)

	grades, err := svc.ListForStudent(context.Background(), "s@campus.edu")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, "A", grades[0].Letter)
}

func TestGradeServiceUploadWordsNotificationByOutcome(t *testing.T) {
	repo := &mockGradeRepo{}
	notifier := &capturingNotifier{}
	svc := NewGradeService(repo, notifier, validator.New(), zap.NewNop())

	req := UploadGradeRequest{
		TeacherEmail: "prof@campus.edu",
		StudentEmail: "s@campus.edu",
		Course:       "Algorithms",
		Letter:       "B",
		Semester:     "Fall 2024",
	}
	_, err := svc.Upload(context.Background(), req)
	require.NoError(t, err)

	req.Letter = "A"
	_, err = svc.Upload(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, notifier.titles, 2)
	assert.Equal(t, "New Grade Available", notifier.titles[0])
	assert.Equal(t, "Grade Updated", notifier.titles[1])
	assert.Contains(t, notifier.messages[1], "updated to A")
}

func TestGradeServiceDifferentSemestersKeepSeparateRecords(t *testing.T) {
	repo := &mockGradeRepo{}
	svc := NewGradeService(repo, &capturingNotifier{}, validator.New(), zap.NewNop())

	base := UploadGradeRequest{
		TeacherEmail: "prof@campus.edu",
		StudentEmail: "s@campus.edu",
		Course:       "Algorithms",
		Letter:       "B",
		Semester:     "Fall 2024",
	}
	_, err := svc.Upload(context.Background(), base)
	require.NoError(t, err)

	base.Semester = "Spring 2025"
	updated, err := svc.Upload(context.Background(), base)
	require.NoError(t, err)
	assert.False(t, updated)

	grades, err := svc.ListForStudent(context.Background(), "s@campus.edu")
	require.NoError(t, err)
	assert.Len(t, grades, 2)
}
