// Package store holds every entity collection for the lifetime of the
// process. Collections are append-mostly ordered slices guarded by a
// read-write mutex each; lookups are linear scans. There is no persistence
// behind them, so the repositories in internal/repository form the only
// surface the rest of the code touches.
package store

import (
	"sync"
	"time"

	"github.com/noah-isme/campus-api/internal/models"
)

// Observer receives timing for every collection operation. Wired to the
// Prometheus store histogram; nil disables observation.
type Observer func(entity, op string, duration time.Duration)

// Collection is an ordered, mutex-guarded slice of records.
type Collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	name     string
	observer Observer
}

func newCollection[T any](name string, observer Observer) *Collection[T] {
	return &Collection[T]{name: name, observer: observer}
}

func (c *Collection[T]) observe(op string, start time.Time) {
	if c.observer != nil {
		c.observer(c.name, op, time.Since(start))
	}
}

// Append adds item at the end of the collection.
func (c *Collection[T]) Append(item T) {
	defer c.observe("append", time.Now())
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// All returns a snapshot copy in insertion order.
func (c *Collection[T]) All() []T {
	defer c.observe("all", time.Now())
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the first item matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	defer c.observe("find", time.Now())
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindClone returns the first item matching pred, passed through clone while
// still under the read lock. Record types holding reference fields that
// Update or Upsert mutate in place need this; the plain Find snapshot would
// alias that storage.
func (c *Collection[T]) FindClone(pred func(T) bool, clone func(T) T) (T, bool) {
	defer c.observe("find", time.Now())
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return clone(item), true
		}
	}
	var zero T
	return zero, false
}

// AllClone returns a snapshot in insertion order with every element passed
// through clone under the read lock.
func (c *Collection[T]) AllClone(clone func(T) T) []T {
	defer c.observe("all", time.Now())
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, clone(item))
	}
	return out
}

// Filter returns every item matching pred, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	defer c.observe("filter", time.Now())
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Update mutates the first item matching pred under the write lock and
// reports whether a match was found.
func (c *Collection[T]) Update(pred func(T) bool, mutate func(*T)) bool {
	defer c.observe("update", time.Now())
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if pred(c.items[i]) {
			mutate(&c.items[i])
			return true
		}
	}
	return false
}

// Upsert mutates the first item matching pred, or appends create() when no
// match exists. The whole find-then-mutate runs under one write lock so
// composite-key upserts stay atomic under concurrent requests. It reports
// whether an existing item was updated.
func (c *Collection[T]) Upsert(pred func(T) bool, mutate func(*T), create func() T) bool {
	defer c.observe("upsert", time.Now())
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if pred(c.items[i]) {
			mutate(&c.items[i])
			return true
		}
	}
	c.items = append(c.items, create())
	return false
}

// Delete removes the first item matching pred and reports whether one was
// removed.
func (c *Collection[T]) Delete(pred func(T) bool) bool {
	defer c.observe("delete", time.Now())
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if pred(c.items[i]) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of items matching pred.
func (c *Collection[T]) Count(pred func(T) bool) int {
	defer c.observe("count", time.Now())
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, item := range c.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Len returns the collection size.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Store owns one collection per entity kind.
type Store struct {
	Users          *Collection[models.User]
	Courses        *Collection[models.Course]
	Enrollments    *Collection[models.Enrollment]
	Attendance     *Collection[models.AttendanceRecord]
	Grades         *Collection[models.Grade]
	Assignments    *Collection[models.Assignment]
	Submissions    *Collection[models.Submission]
	LeaveRequests  *Collection[models.LeaveRequest]
	Complaints     *Collection[models.Complaint]
	ForumPosts     *Collection[models.ForumPost]
	Notifications  *Collection[models.Notification]
	Timetables     *Collection[models.Timetable]
	Events         *Collection[models.Event]
	LiveSessions   *Collection[models.LiveSession]
	QuestionPapers *Collection[models.QuestionPaper]
	Leaderboards   *Collection[models.LeaderboardSnapshot]
	CreditLedgers  *Collection[models.CreditLedger]
	ChatMessages   *Collection[models.ChatMessage]
	MockTests      *Collection[models.MockTest]
	ConceptMaps    *Collection[models.ConceptMap]
}

// New builds an empty store. observer may be nil.
func New(observer Observer) *Store {
	return &Store{
		Users:          newCollection[models.User]("users", observer),
		Courses:        newCollection[models.Course]("courses", observer),
		Enrollments:    newCollection[models.Enrollment]("enrollments", observer),
		Attendance:     newCollection[models.AttendanceRecord]("attendance", observer),
		Grades:         newCollection[models.Grade]("grades", observer),
		Assignments:    newCollection[models.Assignment]("assignments", observer),
		Submissions:    newCollection[models.Submission]("submissions", observer),
		LeaveRequests:  newCollection[models.LeaveRequest]("leave_requests", observer),
		Complaints:     newCollection[models.Complaint]("complaints", observer),
		ForumPosts:     newCollection[models.ForumPost]("forum_posts", observer),
		Notifications:  newCollection[models.Notification]("notifications", observer),
		Timetables:     newCollection[models.Timetable]("timetables", observer),
		Events:         newCollection[models.Event]("events", observer),
		LiveSessions:   newCollection[models.LiveSession]("live_sessions", observer),
		QuestionPapers: newCollection[models.QuestionPaper]("question_papers", observer),
		Leaderboards:   newCollection[models.LeaderboardSnapshot]("leaderboards", observer),
		CreditLedgers:  newCollection[models.CreditLedger]("credit_ledgers", observer),
		ChatMessages:   newCollection[models.ChatMessage]("chat_messages", observer),
		MockTests:      newCollection[models.MockTest]("mock_tests", observer),
		ConceptMaps:    newCollection[models.ConceptMap]("concept_maps", observer),
	}
}
