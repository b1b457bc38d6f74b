package models

import "time"

// LiveSession is a scheduled online class for a course.
type LiveSession struct {
	ID              string    `json:"id"`
	TeacherEmail    string    `json:"teacher_email"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Course          string    `json:"course"`
	Link            string    `json:"link"`
	CreatedAt       time.Time `json:"created_at"`
}
