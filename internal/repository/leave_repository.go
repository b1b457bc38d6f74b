package repository

import (
	"context"
	"strings"
	"time"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// LeaveRepository reads and writes leave requests.
type LeaveRepository struct {
	leaves *store.Collection[models.LeaveRequest]
}

// NewLeaveRepository constructs LeaveRepository.
func NewLeaveRepository(s *store.Store) *LeaveRepository {
	return &LeaveRepository{leaves: s.LeaveRequests}
}

// Create appends a leave request.
func (r *LeaveRepository) Create(ctx context.Context, leave models.LeaveRequest) error {
	r.leaves.Append(leave)
	return nil
}

// UpdateStatus transitions a request and returns the updated record.
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status models.LeaveStatus, now time.Time) (*models.LeaveRequest, error) {
	var updated models.LeaveRequest
	found := r.leaves.Update(
		func(l models.LeaveRequest) bool { return l.ID == id },
		func(l *models.LeaveRequest) {
			l.Status = status
			l.ProcessedAt = &now
			updated = *l
		},
	)
	if !found {
		return nil, ErrNoRecord
	}
	return &updated, nil
}

// ListPendingByEmails returns pending requests from any of the given emails.
func (r *LeaveRepository) ListPendingByEmails(ctx context.Context, emails []string) ([]models.LeaveRequest, error) {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[strings.ToLower(e)] = struct{}{}
	}
	return r.leaves.Filter(func(l models.LeaveRequest) bool {
		if l.Status != models.LeavePending {
			return false
		}
		_, ok := set[strings.ToLower(l.UserEmail)]
		return ok
	}), nil
}
