package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// GradeRepository reads and writes grade records.
type GradeRepository struct {
	grades *store.Collection[models.Grade]
}

// NewGradeRepository constructs GradeRepository.
func NewGradeRepository(s *store.Store) *GradeRepository {
	return &GradeRepository{grades: s.Grades}
}

// Upsert stores letter for the (student, course, semester, assignment) key,
// overwriting the grade value when the key already exists. It reports
// whether an existing record was updated.
func (r *GradeRepository) Upsert(ctx context.Context, teacherEmail, studentEmail, course, letter, semester, assignmentID string, now time.Time) (bool, error) {
	updated := r.grades.Upsert(
		func(g models.Grade) bool {
			return g.Course == course && g.Semester == semester && g.AssignmentID == assignmentID &&
				strings.EqualFold(g.StudentEmail, studentEmail)
		},
		func(g *models.Grade) {
			g.Letter = letter
			g.UpdatedAt = &now
		},
		func() models.Grade {
			return models.Grade{
				ID:           uuid.NewString(),
				TeacherEmail: teacherEmail,
				StudentEmail: studentEmail,
				Course:       course,
				Letter:       letter,
				Semester:     semester,
				AssignmentID: assignmentID,
				UploadedAt:   now,
			}
		},
	)
	return updated, nil
}

// ListByStudent returns a student's grades in store order.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentEmail string) ([]models.Grade, error) {
	return r.grades.Filter(func(g models.Grade) bool {
		return strings.EqualFold(g.StudentEmail, studentEmail)
	}), nil
}
