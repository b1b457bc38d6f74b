package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// AssignmentRepository reads and writes assignments and their submissions.
type AssignmentRepository struct {
	assignments *store.Collection[models.Assignment]
	submissions *store.Collection[models.Submission]
}

// NewAssignmentRepository constructs AssignmentRepository.
func NewAssignmentRepository(s *store.Store) *AssignmentRepository {
	return &AssignmentRepository{assignments: s.Assignments, submissions: s.Submissions}
}

// Create appends an assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment models.Assignment) error {
	r.assignments.Append(assignment)
	return nil
}

// FindByID returns the assignment with id.
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	assignment, ok := r.assignments.Find(func(a models.Assignment) bool { return a.ID == id })
	if !ok {
		return nil, ErrNoRecord
	}
	return &assignment, nil
}

// ListByDepartment returns assignments for a department in store order.
func (r *AssignmentRepository) ListByDepartment(ctx context.Context, department string) ([]models.Assignment, error) {
	return r.assignments.Filter(func(a models.Assignment) bool { return a.Department == department }), nil
}

// CreateSubmission appends a submission.
func (r *AssignmentRepository) CreateSubmission(ctx context.Context, submission models.Submission) error {
	r.submissions.Append(submission)
	return nil
}

// ListSubmissions returns submissions for one assignment in store order.
func (r *AssignmentRepository) ListSubmissions(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	return r.submissions.Filter(func(s models.Submission) bool { return s.AssignmentID == assignmentID }), nil
}

// ListSubmissionsByStudent returns a student's submissions in store order.
func (r *AssignmentRepository) ListSubmissionsByStudent(ctx context.Context, studentEmail string) ([]models.Submission, error) {
	return r.submissions.Filter(func(s models.Submission) bool {
		return strings.EqualFold(s.StudentEmail, studentEmail)
	}), nil
}
