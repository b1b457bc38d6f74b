package repository

import (
	"context"
	"sort"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// EventRepository reads and writes campus events.
type EventRepository struct {
	events *store.Collection[models.Event]
}

// NewEventRepository constructs EventRepository.
func NewEventRepository(s *store.Store) *EventRepository {
	return &EventRepository{events: s.Events}
}

// Create appends an event.
func (r *EventRepository) Create(ctx context.Context, event models.Event) error {
	r.events.Append(event)
	return nil
}

// ListAll returns events, most recent event date first.
func (r *EventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	events := r.events.All()
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date > events[j].Date })
	return events, nil
}

// Delete removes the event with id.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if !r.events.Delete(func(e models.Event) bool { return e.ID == id }) {
		return ErrNoRecord
	}
	return nil
}
