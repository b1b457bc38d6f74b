package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// MockTestRepository reads and writes mock-test attempts.
type MockTestRepository struct {
	tests *store.Collection[models.MockTest]
}

// NewMockTestRepository constructs MockTestRepository.
func NewMockTestRepository(s *store.Store) *MockTestRepository {
	return &MockTestRepository{tests: s.MockTests}
}

// Create appends a mock-test attempt.
func (r *MockTestRepository) Create(ctx context.Context, test models.MockTest) error {
	r.tests.Append(test)
	return nil
}

// ListByStudent returns a student's attempts in store order.
func (r *MockTestRepository) ListByStudent(ctx context.Context, studentEmail string) ([]models.MockTest, error) {
	return r.tests.Filter(func(t models.MockTest) bool {
		return strings.EqualFold(t.StudentEmail, studentEmail)
	}), nil
}
