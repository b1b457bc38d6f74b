package repository

import (
	"context"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// ConceptMapRepository caches generated concept maps.
type ConceptMapRepository struct {
	maps *store.Collection[models.ConceptMap]
}

// NewConceptMapRepository constructs ConceptMapRepository.
func NewConceptMapRepository(s *store.Store) *ConceptMapRepository {
	return &ConceptMapRepository{maps: s.ConceptMaps}
}

// Create caches a generated map.
func (r *ConceptMapRepository) Create(ctx context.Context, conceptMap models.ConceptMap) error {
	r.maps.Append(conceptMap)
	return nil
}

// FindByCourse returns the cached map for a course.
func (r *ConceptMapRepository) FindByCourse(ctx context.Context, courseID string) (*models.ConceptMap, error) {
	conceptMap, ok := r.maps.Find(func(m models.ConceptMap) bool { return m.CourseID == courseID })
	if !ok {
		return nil, ErrNoRecord
	}
	return &conceptMap, nil
}
