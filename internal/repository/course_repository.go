package repository

import (
	"context"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// CourseRepository reads and writes courses.
type CourseRepository struct {
	courses *store.Collection[models.Course]
}

// NewCourseRepository constructs CourseRepository.
func NewCourseRepository(s *store.Store) *CourseRepository {
	return &CourseRepository{courses: s.Courses}
}

// Create appends a new course.
func (r *CourseRepository) Create(ctx context.Context, course models.Course) error {
	r.courses.Append(course)
	return nil
}

// FindByID returns the course with id.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	course, ok := r.courses.Find(func(c models.Course) bool { return c.ID == id })
	if !ok {
		return nil, ErrNoRecord
	}
	return &course, nil
}

// FindByName returns the first course named name.
func (r *CourseRepository) FindByName(ctx context.Context, name string) (*models.Course, error) {
	course, ok := r.courses.Find(func(c models.Course) bool { return c.Name == name })
	if !ok {
		return nil, ErrNoRecord
	}
	return &course, nil
}

// ListByDepartment returns courses for a department in store order.
func (r *CourseRepository) ListByDepartment(ctx context.Context, department string) ([]models.Course, error) {
	return r.courses.Filter(func(c models.Course) bool { return c.Department == department }), nil
}

// ListAll returns every course in store order.
func (r *CourseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	return r.courses.All(), nil
}
