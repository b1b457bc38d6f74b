package repository

import (
	"context"
	"strings"
	"time"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// ComplaintRepository reads and writes complaints.
type ComplaintRepository struct {
	complaints *store.Collection[models.Complaint]
}

// NewComplaintRepository constructs ComplaintRepository.
func NewComplaintRepository(s *store.Store) *ComplaintRepository {
	return &ComplaintRepository{complaints: s.Complaints}
}

// Create appends a complaint.
func (r *ComplaintRepository) Create(ctx context.Context, complaint models.Complaint) error {
	r.complaints.Append(complaint)
	return nil
}

// UpdateStatus transitions a complaint and returns the updated record.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id, status string, now time.Time) (*models.Complaint, error) {
	var updated models.Complaint
	found := r.complaints.Update(
		func(c models.Complaint) bool { return c.ID == id },
		func(c *models.Complaint) {
			c.Status = status
			c.UpdatedAt = &now
			updated = *c
		},
	)
	if !found {
		return nil, ErrNoRecord
	}
	return &updated, nil
}

// ListByEmails returns complaints raised by any of the given emails.
func (r *ComplaintRepository) ListByEmails(ctx context.Context, emails []string) ([]models.Complaint, error) {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[strings.ToLower(e)] = struct{}{}
	}
	return r.complaints.Filter(func(c models.Complaint) bool {
		_, ok := set[strings.ToLower(c.StudentEmail)]
		return ok
	}), nil
}
