package repository

import (
	"context"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// TimetableRepository reads and writes timetables.
type TimetableRepository struct {
	timetables *store.Collection[models.Timetable]
}

// NewTimetableRepository constructs TimetableRepository.
func NewTimetableRepository(s *store.Store) *TimetableRepository {
	return &TimetableRepository{timetables: s.Timetables}
}

// Create appends a timetable upload.
func (r *TimetableRepository) Create(ctx context.Context, timetable models.Timetable) error {
	r.timetables.Append(timetable)
	return nil
}

// LatestByDepartment returns the most recent upload for a department.
func (r *TimetableRepository) LatestByDepartment(ctx context.Context, department string) (*models.Timetable, error) {
	uploads := r.timetables.Filter(func(t models.Timetable) bool { return t.Department == department })
	if len(uploads) == 0 {
		return nil, ErrNoRecord
	}
	latest := uploads[0]
	for _, t := range uploads[1:] {
		if t.UploadedAt.After(latest.UploadedAt) {
			latest = t
		}
	}
	return &latest, nil
}
