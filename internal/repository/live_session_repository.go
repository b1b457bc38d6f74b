package repository

import (
	"context"
	"sort"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// LiveSessionRepository reads and writes live sessions.
type LiveSessionRepository struct {
	sessions *store.Collection[models.LiveSession]
}

// NewLiveSessionRepository constructs LiveSessionRepository.
func NewLiveSessionRepository(s *store.Store) *LiveSessionRepository {
	return &LiveSessionRepository{sessions: s.LiveSessions}
}

// Create appends a live session.
func (r *LiveSessionRepository) Create(ctx context.Context, session models.LiveSession) error {
	r.sessions.Append(session)
	return nil
}

// ListAll returns sessions, most recent start time first.
func (r *LiveSessionRepository) ListAll(ctx context.Context) ([]models.LiveSession, error) {
	sessions := r.sessions.All()
	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].StartsAt.After(sessions[j].StartsAt) })
	return sessions, nil
}

// Delete removes the session with id.
func (r *LiveSessionRepository) Delete(ctx context.Context, id string) error {
	if !r.sessions.Delete(func(s models.LiveSession) bool { return s.ID == id }) {
		return ErrNoRecord
	}
	return nil
}
